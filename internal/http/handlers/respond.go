package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"hemline/internal/domain"
	applog "hemline/internal/log"
)

// fail maps the service error taxonomy onto HTTP: invalid input -> 400,
// not found -> 404, everything else (including transaction failures) -> 500.
// The response always carries a human-readable cause and nothing else.
func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		applog.Warn(c, action, map[string]any{"reason": err.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	default:
		applog.Error(c, action, err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
