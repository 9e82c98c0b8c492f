package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/health", handler.Health)

	api.Get("/profile", handler.GetProfile)
	api.Post("/profile", handler.UpsertProfile)

	api.Get("/goals", handler.GetGoals)
	api.Post("/goals", handler.UpsertGoals)

	api.Get("/entries", handler.GetEntries)
	api.Post("/today", handler.CreateEntry)
	api.Put("/entries", handler.UpdateEntry)
	api.Delete("/entries", handler.DeleteEntry)

	api.Get("/weights", handler.GetWeights)
	api.Post("/weights", handler.CreateWeight)
	api.Put("/weights", handler.UpdateWeight)
	api.Delete("/weights", handler.DeleteWeight)

	api.Get("/moods", handler.GetMoods)
	api.Post("/moods", handler.CreateMood)
	api.Put("/moods", handler.UpdateMood)
	api.Delete("/moods", handler.DeleteMood)

	api.Get("/summary", handler.GetSummary)
	api.Get("/export", handler.Export)

	app.Use(handler.NotFound)
}
