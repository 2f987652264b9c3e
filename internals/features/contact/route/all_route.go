package route

import (
	"bethesda_backend/internals/features/contact/controller"
	"bethesda_backend/internals/mailer"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AllContactRoutes mounts the form endpoints. guards (e.g. a rate limiter) run before every handler.
func AllContactRoutes(api fiber.Router, db *gorm.DB, mail *mailer.Dispatcher, compose *mailer.Composer, guards ...fiber.Handler) {
	RegisterContactRoutes(api, controller.NewContactController(db, mail, compose), guards...)
}

func RegisterContactRoutes(api fiber.Router, ctrl *controller.ContactController, guards ...fiber.Handler) {
	contact := api.Group("/contact", guards...)
	contact.Post("/", ctrl.SubmitContact)                                  // ✉️ contact form
	contact.Post("/newsletter", ctrl.Subscribe)                            // 📰 subscribe / resubscribe
	contact.Post("/newsletter/unsubscribe", ctrl.UnsubscribeByEmail)       // 🚪 unsubscribe by email
	contact.Get("/newsletter/unsubscribe/:token", ctrl.UnsubscribeByToken) // 🔗 unsubscribe link
}
