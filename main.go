package main

import (
	"log"

	"github.com/ajmallk/HR-Nexus-AI-Marketplace/config"
	"github.com/ajmallk/HR-Nexus-AI-Marketplace/handlers"
	"github.com/ajmallk/HR-Nexus-AI-Marketplace/internal/ai"
	"github.com/ajmallk/HR-Nexus-AI-Marketplace/internal/ws"
	"github.com/ajmallk/HR-Nexus-AI-Marketplace/middleware"

	"github.com/gofiber/fiber/v2"
)

func main() {
	cfg := config.LoadConfig()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := config.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      "HR Nexus Backend",
		ServerHeader: "HR Nexus Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			// Send custom error page
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": msg,
			})
		},
	})

	middleware.SetupMiddleware(app)

	hub := ws.NewHub()
	go hub.Run()

	gateway := ai.NewGateway(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiBaseURL)

	handlers.RegisterRoutes(app, db, hub, gateway)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "success",
			"message": "API is healthy",
		})
	})

	middleware.SetupErrorHandler(app)

	log.Printf("🚀 Server starting on host %s in port %s mode", cfg.HOST, cfg.AppPort)

	if err := app.Listen(cfg.HOST + ":" + cfg.AppPort); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
