package handlers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/internal/ai"
	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AIHandler struct {
	DB      *gorm.DB
	Gateway *ai.Gateway
}

func NewAIHandler(db *gorm.DB, gateway *ai.Gateway) *AIHandler {
	return &AIHandler{
		DB:      db,
		Gateway: gateway,
	}
}

// DraftJobDescription turns a buyer's brief into a posting-ready description
func (h *AIHandler) DraftJobDescription(c *fiber.Ctx) error {
	var req struct {
		Brief string `json:"brief"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	description, err := h.Gateway.DraftJobDescription(c.Context(), req.Brief)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"description": description})
}

// AnalyzeBid reviews one proposal against a project description
func (h *AIHandler) AnalyzeBid(c *fiber.Ctx) error {
	var req struct {
		ProjectDescription string `json:"project_description"`
		Proposal           string `json:"proposal"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	analysis, err := h.Gateway.AnalyzeBid(c.Context(), req.ProjectDescription, req.Proposal)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"analysis": analysis})
}

// Matchmaking asks the model to rank every registered consultant for a
// project. The project must exist before the provider is ever contacted.
func (h *AIHandler) Matchmaking(c *fiber.Ctx) error {
	projectID, _ := c.ParamsInt("id")

	var project models.Project
	if err := h.DB.First(&project, projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Project not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var sellers []models.User
	if err := h.DB.Where("role = ?", "seller").Find(&sellers).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var list strings.Builder
	for i, seller := range sellers {
		fmt.Fprintf(&list, "%d. %s: %s\n", i+1, seller.Name, seller.Bio)
	}

	advice, err := h.Gateway.MatchmakingAdvice(c.Context(), project.Title, project.Description, list.String())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"advice": advice})
}
