// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	contactRoute "bethesda_backend/internals/features/contact/route"
	eventRoute "bethesda_backend/internals/features/events/route"
	ministryRoute "bethesda_backend/internals/features/ministries/route"
	sermonRoute "bethesda_backend/internals/features/sermons/route"
	"bethesda_backend/internals/mailer"
	"bethesda_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

// Deps carries what the API routes need besides the database.
type Deps struct {
	Environment      string
	Mail             *mailer.Dispatcher
	Compose          *mailer.Composer
	ContactRateLimit int
}

// SetupRoutes mounts every /api route. The static site is registered separately, after this.
func SetupRoutes(app *fiber.App, db *gorm.DB, deps Deps) {
	startTime = time.Now()

	api := app.Group("/api")

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(api, db, deps.Environment)

	// ===================== PUBLIC (read-only) =====================
	log.Println("[INFO] Mounting Sermon routes...")
	sermonRoute.AllSermonRoutes(api, db)

	log.Println("[INFO] Mounting Event routes...")
	eventRoute.AllEventRoutes(api, db)

	log.Println("[INFO] Mounting Ministry routes...")
	ministryRoute.AllMinistryRoutes(api, db)

	// ===================== FORMS (rate limited) =====================
	log.Println("[INFO] Mounting Contact routes...")
	contactRoute.AllContactRoutes(api, db, deps.Mail, deps.Compose,
		middlewares.ContactRateLimiter(deps.ContactRateLimit),
	)
}
