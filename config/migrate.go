package config

import (
	"log"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Bid{},
		&models.Milestone{},
		&models.Message{},
	)

	if err != nil {
		log.Printf("Failed to migrate database schema: %v", err)
		return err
	}

	log.Println("Database Migrations completed succesfully...")

	// Ensure the demo accounts and projects exist even on normal migration
	SeedUsers(db)
	SeedProjects(db)

	return err
}
