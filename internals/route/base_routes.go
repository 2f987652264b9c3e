package routes

import (
	"time"

	database "bethesda_backend/internals/databases"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BaseRoutes registers /api/health.
func BaseRoutes(api fiber.Router, db *gorm.DB, environment string) {
	adapter := database.NewAdapter(db)

	api.Get("/health", func(c *fiber.Ctx) error {
		dbStatus := "Connected"
		serverStatus := "OK"
		httpStatus := fiber.StatusOK

		if err := adapter.Ping(); err != nil {
			dbStatus = "Database connection error"
			serverStatus = "DOWN"
			httpStatus = fiber.StatusServiceUnavailable
		}

		return c.Status(httpStatus).JSON(fiber.Map{
			"status":         serverStatus,
			"timestamp":      time.Now().UTC().Format(time.RFC3339),
			"environment":    environment,
			"database":       dbStatus,
			"uptime_seconds": int(time.Since(startTime).Seconds()),
		})
	})
}
