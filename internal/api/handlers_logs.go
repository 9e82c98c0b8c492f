package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/db"
)

// The three log resources share one listing/update/delete path; only
// creation needs a typed payload per kind.

func listLogRecords[T any](c *fiber.Ctx, repo *db.LogRepository[T]) error {
	filter := db.ListFilter{
		Date: c.Query("date"),
		From: c.Query("from"),
		To:   c.Query("to"),
	}
	records, err := repo.List(filter)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch records")
	}
	return c.JSON(records)
}

func updateLogRecord[T any](c *fiber.Ctx, repo *db.LogRepository[T]) error {
	payload := map[string]any{}
	if err := decodeJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	id, ok := payloadID(payload)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Missing id")
	}

	if err := repo.UpdateFields(id, payload); err != nil {
		if errors.Is(err, db.ErrNoUpdatableFields) {
			return apiError(c, fiber.StatusBadRequest, "No fields to update")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to update record")
	}
	return sendOK(c, fiber.StatusOK)
}

func deleteLogRecord[T any](c *fiber.Ctx, repo *db.LogRepository[T]) error {
	id, ok := queryID(c)
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "Missing id")
	}
	if err := repo.Delete(id); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to delete record")
	}
	return sendOK(c, fiber.StatusOK)
}
