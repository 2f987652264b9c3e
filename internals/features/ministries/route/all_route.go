package route

import (
	"bethesda_backend/internals/features/ministries/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AllMinistryRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMinistryController(db)
	ministries := api.Group("/ministries")
	ministries.Get("/", ctrl.GetMinistries)      // 🤝 active ministries
	ministries.Get("/:id", ctrl.GetMinistryByID) // 🔍 detail
}
