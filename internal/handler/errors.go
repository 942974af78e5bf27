package handler

import (
	"errors"
	"log"

	"go-stockroom/internal/service"

	"github.com/gofiber/fiber/v2"
)

// serviceError maps service failures onto the REST error contract:
// 400 validation (with field list), 404 not found, 409 conflicts,
// 500 generic with details only logged.
func serviceError(c *fiber.Ctx, err error) error {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(400).JSON(fiber.Map{
			"error":  "Validation failed",
			"fields": validationErr.Fields,
		})
	}

	switch {
	case errors.Is(err, service.ErrItemNotFound),
		errors.Is(err, service.ErrOrderNotFound):
		return c.Status(404).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrDuplicateSKU),
		errors.Is(err, service.ErrDuplicateName),
		errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrOrderNotOpen):
		return c.Status(409).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, service.ErrInsufficientStock):
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	log.Printf("internal error on %s %s: %v", c.Method(), c.Path(), err)
	return c.Status(500).JSON(fiber.Map{"error": "Internal Server Error"})
}
