package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"eibs-cms/util"
)

// parseIDParam reads the :id route parameter as a UUID.
func parseIDParam(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
}

// validationFailure returns a 400 listing every violated field.
func validationFailure(c *fiber.Ctx, message string, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   message,
		"details": util.ValidationDetails(err),
	})
}

// internalError logs the real cause and answers with a generic 500. Store
// and driver errors never reach clients verbatim.
func internalError(c *fiber.Ctx, context string, err error) error {
	log.Printf("%s: %v", context, err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": context})
}
