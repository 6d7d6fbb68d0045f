package handlers

import (
	"time"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type BidHandler struct {
	DB *gorm.DB
}

func NewBidHandler(db *gorm.DB) *BidHandler {
	return &BidHandler{DB: db}
}

// CreateBid submits a consultant's bid on a project
func (h *BidHandler) CreateBid(c *fiber.Ctx) error {
	var bid models.Bid
	if err := c.BodyParser(&bid); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if err := h.DB.Create(&bid).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": bid.ID})
}

// GetProjectBids lists a project's bids with each seller's display name
func (h *BidHandler) GetProjectBids(c *fiber.Ctx) error {
	projectID, _ := c.ParamsInt("id")

	type BidResult struct {
		ID         uint      `json:"id"`
		ProjectID  uint      `json:"project_id"`
		SellerID   string    `json:"seller_id"`
		Amount     float64   `json:"amount"`
		Proposal   string    `json:"proposal"`
		Status     string    `json:"status"`
		CreatedAt  time.Time `json:"created_at"`
		SellerName string    `json:"seller_name"`
	}

	var results []BidResult

	query := `
		SELECT
			b.id, b.project_id, b.seller_id, b.amount,
			b.proposal, b.status, b.created_at,
			u.name as seller_name
		FROM bids b
		LEFT JOIN users u ON b.seller_id = u.id
		WHERE b.project_id = ?
		ORDER BY b.created_at DESC
	`

	if err := h.DB.Raw(query, projectID).Scan(&results).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(results)
}
