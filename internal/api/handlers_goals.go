package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/vital/internal/models"
)

func (handler *Handler) GetGoals(c *fiber.Ctx) error {
	goals, found, err := handler.repositories.Goals.Read()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch goals")
	}
	if !found {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(goals)
}

type goalsPayload struct {
	StepsGoal *int64   `json:"steps_goal"`
	WaterGoal *int64   `json:"water_goal"`
	SleepGoal *float64 `json:"sleep_goal"`
}

func (handler *Handler) UpsertGoals(c *fiber.Ctx) error {
	payload := goalsPayload{}
	if err := decodeJSONBody(c, &payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid JSON")
	}

	goals := models.Goals{
		StepsGoal: payload.StepsGoal,
		WaterGoal: payload.WaterGoal,
		SleepGoal: payload.SleepGoal,
	}
	if err := handler.repositories.Goals.Upsert(goals); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save goals")
	}
	return sendOK(c, fiber.StatusOK)
}
