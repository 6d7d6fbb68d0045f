package handlers

import (
	"time"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	DB *gorm.DB
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{DB: db}
}

// GetProjects returns every project with its buyer's display name, newest first
func (h *ProjectHandler) GetProjects(c *fiber.Ctx) error {
	type ProjectResult struct {
		ID          uint      `json:"id"`
		BuyerID     string    `json:"buyer_id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		BudgetMin   float64   `json:"budget_min"`
		BudgetMax   float64   `json:"budget_max"`
		Status      string    `json:"status"`
		CreatedAt   time.Time `json:"created_at"`
		BuyerName   string    `json:"buyer_name"`
	}

	var results []ProjectResult

	query := `
		SELECT
			p.id, p.buyer_id, p.title, p.description,
			p.budget_min, p.budget_max, p.status, p.created_at,
			u.name as buyer_name
		FROM projects p
		LEFT JOIN users u ON p.buyer_id = u.id
		ORDER BY p.created_at DESC
	`

	if err := h.DB.Raw(query).Scan(&results).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(results)
}

// CreateProject inserts a project and then its default milestone schedule.
// The two inserts are independent statements, so a failure between them
// leaves a project without milestones.
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var project models.Project
	if err := c.BodyParser(&project); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.DB.Create(&project).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	milestones := models.ProjectMilestones(project.ID, project.BudgetMin)
	if err := h.DB.Create(&milestones).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": project.ID})
}
