package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"ok":   true,
		"time": time.Now().UTC().Format(time.RFC3339),
	})
}

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	return apiError(c, fiber.StatusNotFound, "Not found")
}
