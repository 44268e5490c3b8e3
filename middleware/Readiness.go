package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// RequireStore short-circuits with 503 when the record store is not
// configured. It runs before authentication so a misconfigured deployment is
// distinguishable from bad credentials.
func RequireStore(ready func() bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !ready() {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error":   "database not configured",
				"message": "set DATABASE_URL (or DB_HOST and friends) and restart the server",
			})
		}
		return c.Next()
	}
}
