package middlewares

import (
	"time"

	helper "bethesda_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// GlobalRateLimiter caps every client IP at max requests per minute. max <= 0 disables it.
func GlobalRateLimiter(max int) fiber.Handler {
	return ipLimiter(max, time.Minute, "Too many requests. Please try again later.")
}

// ContactRateLimiter guards the contact and newsletter forms.
func ContactRateLimiter(max int) fiber.Handler {
	return ipLimiter(max, time.Minute, "Too many submissions. Please wait a minute and try again.")
}

func ipLimiter(max int, window time.Duration, message string) fiber.Handler {
	if max <= 0 {
		return func(c *fiber.Ctx) error { return c.Next() }
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return helper.JsonError(c, fiber.StatusTooManyRequests, message)
		},
	})
}
