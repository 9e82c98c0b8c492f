package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/models"
)

func (handler *Handler) GetMoods(c *fiber.Ctx) error {
	return listLogRecords(c, handler.repositories.Moods)
}

type moodPayload struct {
	Date   *string `json:"date"`
	Mood   *int64  `json:"mood"`
	Stress *int64  `json:"stress"`
	Energy *int64  `json:"energy"`
	Notes  *string `json:"notes"`
}

func (handler *Handler) CreateMood(c *fiber.Ctx) error {
	payload := moodPayload{}
	if err := decodeJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	date := todayUTC()
	if payload.Date != nil && *payload.Date != "" {
		date = *payload.Date
	}

	mood := models.Mood{
		Date:      date,
		Mood:      payload.Mood,
		Stress:    payload.Stress,
		Energy:    payload.Energy,
		Notes:     payload.Notes,
		CreatedAt: time.Now().UTC(),
	}
	if err := handler.repositories.Moods.Create(&mood); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create mood")
	}
	return sendOK(c, fiber.StatusCreated)
}

func (handler *Handler) UpdateMood(c *fiber.Ctx) error {
	return updateLogRecord(c, handler.repositories.Moods)
}

func (handler *Handler) DeleteMood(c *fiber.Ctx) error {
	return deleteLogRecord(c, handler.repositories.Moods)
}
