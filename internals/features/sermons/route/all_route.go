package route

import (
	"bethesda_backend/internals/features/sermons/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Public, read-only. Static segments are registered before /:id.
func AllSermonRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewSermonController(db)

	sermons := api.Group("/sermons")
	sermons.Get("/", ctrl.GetSermons)                     // 📄 list + series/speaker filter
	sermons.Get("/featured/latest", ctrl.GetLatestSermon) // ⭐ latest
	sermons.Get("/series/list", ctrl.GetSeriesList)       // 📚 series + counts
	sermons.Get("/speakers/list", ctrl.GetSpeakersList)   // 🎤 speakers + counts
	sermons.Get("/:id", ctrl.GetSermonByID)               // 🔍 detail (+1 view)
}
