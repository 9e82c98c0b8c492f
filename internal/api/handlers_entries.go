package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/models"
)

func (handler *Handler) GetEntries(c *fiber.Ctx) error {
	return listLogRecords(c, handler.repositories.Entries)
}

type entryPayload struct {
	Date       *string  `json:"date"`
	Steps      *int64   `json:"steps"`
	WaterML    *int64   `json:"water_ml"`
	SleepHours *float64 `json:"sleep_hours"`
	Notes      *string  `json:"notes"`
}

func (handler *Handler) CreateEntry(c *fiber.Ctx) error {
	payload := entryPayload{}
	if err := decodeJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	date := todayUTC()
	if payload.Date != nil && *payload.Date != "" {
		date = *payload.Date
	}

	entry := models.Entry{
		Date:       date,
		Steps:      payload.Steps,
		WaterML:    payload.WaterML,
		SleepHours: payload.SleepHours,
		Notes:      payload.Notes,
		CreatedAt:  time.Now().UTC(),
	}
	if err := handler.repositories.Entries.Create(&entry); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create entry")
	}
	return sendOK(c, fiber.StatusCreated)
}

func (handler *Handler) UpdateEntry(c *fiber.Ctx) error {
	return updateLogRecord(c, handler.repositories.Entries)
}

func (handler *Handler) DeleteEntry(c *fiber.Ctx) error {
	return deleteLogRecord(c, handler.repositories.Entries)
}
