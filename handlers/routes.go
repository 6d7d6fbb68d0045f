package handlers

import (
	"github.com/ajmallk/HR-Nexus-AI-Marketplace/internal/ai"
	"github.com/ajmallk/HR-Nexus-AI-Marketplace/internal/ws"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// RegisterRoutes wires every handler onto the app
func RegisterRoutes(app *fiber.App, db *gorm.DB, hub *ws.Hub, gateway *ai.Gateway) {
	projectHandler := NewProjectHandler(db)
	bidHandler := NewBidHandler(db)
	milestoneHandler := NewMilestoneHandler(db)
	userHandler := NewUserHandler(db)
	aiHandler := NewAIHandler(db, gateway)
	chatHandler := NewChatHandler(hub, db)

	api := app.Group("/api")

	// Projects
	api.Get("/projects", projectHandler.GetProjects)
	api.Post("/projects", projectHandler.CreateProject)
	api.Get("/projects/:id/bids", bidHandler.GetProjectBids)
	api.Get("/projects/:id/milestones", milestoneHandler.GetProjectMilestones)
	api.Post("/projects/:id/milestones", milestoneHandler.CreateMilestone)
	api.Get("/projects/:id/matchmaking", aiHandler.Matchmaking)

	// Users
	api.Get("/users/:id", userHandler.GetUser)
	api.Put("/users/:id", userHandler.UpsertUser)

	// Bids
	api.Post("/bids", bidHandler.CreateBid)

	// AI assistant
	api.Post("/ai/job-description", aiHandler.DraftJobDescription)
	api.Post("/ai/bid-analysis", aiHandler.AnalyzeBid)

	// Chat relay
	app.Use("/ws", chatHandler.WebSocketUpgradeMiddleware)
	app.Get("/ws", chatHandler.Handler())
}
