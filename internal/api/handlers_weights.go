package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/models"
)

func (handler *Handler) GetWeights(c *fiber.Ctx) error {
	return listLogRecords(c, handler.repositories.Weights)
}

type weightPayload struct {
	Date     *string  `json:"date"`
	WeightKG *float64 `json:"weight_kg"`
}

func (handler *Handler) CreateWeight(c *fiber.Ctx) error {
	payload := weightPayload{}
	if err := decodeJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	date := todayUTC()
	if payload.Date != nil && *payload.Date != "" {
		date = *payload.Date
	}

	weight := models.Weight{
		Date:      date,
		WeightKG:  payload.WeightKG,
		CreatedAt: time.Now().UTC(),
	}
	if err := handler.repositories.Weights.Create(&weight); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to create weight")
	}
	return sendOK(c, fiber.StatusCreated)
}

func (handler *Handler) UpdateWeight(c *fiber.Ctx) error {
	return updateLogRecord(c, handler.repositories.Weights)
}

func (handler *Handler) DeleteWeight(c *fiber.Ctx) error {
	return deleteLogRecord(c, handler.repositories.Weights)
}
