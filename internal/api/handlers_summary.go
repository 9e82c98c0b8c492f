package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetSummary(c *fiber.Ctx) error {
	summary, err := handler.summaryService.Build()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build summary")
	}
	return c.JSON(summary)
}

func (handler *Handler) Export(c *fiber.Ctx) error {
	data, err := handler.exportService.Build()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to export entries")
	}
	return c.JSON(data)
}
