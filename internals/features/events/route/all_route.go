package route

import (
	"bethesda_backend/internals/features/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public, read-only.
func AllEventRoutes(api fiber.Router, db *gorm.DB) {
	RegisterEventRoutes(api, controller.NewEventController(db))
}

// RegisterEventRoutes mounts an already-built controller (tests swap its clock).
func RegisterEventRoutes(api fiber.Router, ctrl *controller.EventController) {
	events := api.Group("/events")
	events.Get("/", ctrl.GetEvents)                          // 📅 list (upcoming|past|all)
	events.Get("/upcoming/featured", ctrl.GetFeaturedEvents) // ⭐ next 3
	events.Get("/categories/list", ctrl.GetCategoriesList)   // 🏷️ categories + counts
	events.Get("/:id", ctrl.GetEventByID)                    // 🔍 detail
}
