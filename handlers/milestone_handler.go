package handlers

import (
	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type MilestoneHandler struct {
	DB *gorm.DB
}

func NewMilestoneHandler(db *gorm.DB) *MilestoneHandler {
	return &MilestoneHandler{DB: db}
}

// GetProjectMilestones lists a project's payment milestones
func (h *MilestoneHandler) GetProjectMilestones(c *fiber.Ctx) error {
	projectID, _ := c.ParamsInt("id")

	var milestones []models.Milestone
	if err := h.DB.Where("project_id = ?", projectID).Find(&milestones).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(milestones)
}

// CreateMilestone appends one milestone to a project's schedule
func (h *MilestoneHandler) CreateMilestone(c *fiber.Ctx) error {
	projectID, _ := c.ParamsInt("id")

	var milestone models.Milestone
	if err := c.BodyParser(&milestone); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	milestone.ProjectID = uint(projectID)

	if err := h.DB.Create(&milestone).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": milestone.ID})
}
