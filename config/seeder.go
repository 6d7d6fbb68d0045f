package config

import (
	"log"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func SeedUsers(db *gorm.DB) {
	log.Println("🌱 Seeding users...")

	users := []models.User{
		{
			ID:    "buyer_1",
			Name:  "Sarah Chen",
			Email: "sarah.chen@example.com",
			Role:  "buyer",
			Bio:   "Head of People Operations at a mid-size fintech. Posting projects for the HR initiatives my own team can't staff.",
		},
		{
			ID:    "seller_1",
			Name:  "Marcus Webb",
			Email: "marcus.webb@example.com",
			Role:  "seller",
			Bio:   "Independent HR consultant with 12 years in onboarding design and compensation strategy.",
		},
	}

	// Insert-or-ignore keeps seeding idempotent across restarts
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&users).Error; err != nil {
		log.Printf("Failed to seed users: %v", err)
		return
	}

	log.Println("✅ User seeding complete.")
}

func SeedProjects(db *gorm.DB) {
	log.Println("🌱 Seeding projects...")

	projects := []models.Project{
		{
			ID:          1,
			BuyerID:     "buyer_1",
			Title:       "Revamp Employee Onboarding Program",
			Description: "Our 90-day onboarding is a patchwork of outdated docs and tribal knowledge. We need a consultant to redesign the full journey: pre-boarding, week-one schedule, 30/60/90 checkpoints and manager enablement materials.",
			BudgetMin:   3000,
			BudgetMax:   5000,
			Status:      "open",
		},
		{
			ID:          2,
			BuyerID:     "buyer_1",
			Title:       "Compensation Benchmarking Study",
			Description: "We are a 120-person company and suspect our engineering salary bands have drifted below market. Looking for a benchmarking study across our main metros plus a recommendation on band structure.",
			BudgetMin:   2500,
			BudgetMax:   4000,
			Status:      "open",
		},
	}

	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&projects).Error; err != nil {
		log.Printf("Failed to seed projects: %v", err)
		return
	}

	log.Println("✅ Project seeding complete.")
}
