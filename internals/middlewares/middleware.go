package middlewares

import (
	"context"
	"log"
	"time"

	"bethesda_backend/internals/configs"
	"bethesda_backend/internals/middlewares/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/utils"
)

// RequestTimeout bounds the user context handed to database calls.
const RequestTimeout = 5 * time.Second

// SetupMiddlewares installs the shared chain: recover, request-ID, access log, security headers, CORS and the global limiter.
func SetupMiddlewares(app *fiber.App, cfg *configs.AppConfig) {
	app.Use(RecoveryMiddleware(!cfg.IsProduction()))
	app.Use(RequestContext(RequestTimeout))
	app.Use(logger.LoggerMiddleware())
	app.Use(helmet.New(helmet.Config{
		// sermon videos and maps are embedded from third-party hosts
		CrossOriginEmbedderPolicy: "unsafe-none",
		CrossOriginResourcePolicy: "cross-origin",
	}))
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(GlobalRateLimiter(cfg.GlobalRateLimit))
}

// RequestContext tags each request with an X-Request-ID and a bounded user context.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = utils.UUID()
		}
		c.Set(fiber.HeaderXRequestID, id)
		c.Locals("reqid", id)

		start := time.Now()
		ctx, cancel := context.WithTimeout(c.Context(), timeout)
		defer cancel()
		c.SetUserContext(ctx)

		err := c.Next()
		if dur := time.Since(start); dur > time.Second {
			log.Printf("[REQ] slow id=%s %s %s dur=%s", id, c.Method(), c.OriginalURL(), dur)
		}
		return err
	}
}
