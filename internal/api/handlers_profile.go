package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/models"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	profile, found, err := handler.repositories.Profile.Read()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch profile")
	}
	if !found {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(profile)
}

type profilePayload struct {
	Name     *string  `json:"name"`
	Age      *int64   `json:"age"`
	HeightCM *float64 `json:"height_cm"`
	WeightKG *float64 `json:"weight_kg"`
}

func (handler *Handler) UpsertProfile(c *fiber.Ctx) error {
	payload := profilePayload{}
	if err := decodeJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	profile := models.Profile{
		Name:     payload.Name,
		Age:      payload.Age,
		HeightCM: payload.HeightCM,
		WeightKG: payload.WeightKG,
	}
	if err := handler.repositories.Profile.Upsert(profile); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save profile")
	}
	return sendOK(c, fiber.StatusOK)
}
