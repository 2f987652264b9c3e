// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CorsMiddleware allows the configured origins; "*" (or nothing) opens the API to everyone.
func CorsMiddleware(origins []string) fiber.Handler {
	cleaned := make([]string, 0, len(origins))
	wildcard := false
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o == "" {
			continue
		}
		if o == "*" {
			wildcard = true
		}
		cleaned = append(cleaned, o)
	}

	allow := strings.Join(cleaned, ", ")
	if wildcard || allow == "" {
		wildcard = true
		allow = "*"
	}

	return cors.New(cors.Config{
		AllowOrigins: allow,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
		// credentials cannot be combined with a wildcard origin
		AllowCredentials: !wildcard,
	})
}
