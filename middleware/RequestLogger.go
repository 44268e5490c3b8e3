package middleware

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs every /api request with its status and duration.
func RequestLogger(c *fiber.Ctx) error {
	startTime := time.Now()

	err := c.Next()

	path := c.Path()
	if !strings.HasPrefix(path, "/api") {
		return err
	}

	duration := time.Since(startTime)
	log.Printf("%s %s %d in %dms",
		c.Method(), path, c.Response().StatusCode(), duration.Milliseconds())

	return err
}
