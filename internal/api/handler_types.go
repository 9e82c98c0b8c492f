package api

import (
	"github.com/terraincognita07/vital/internal/db"
	"github.com/terraincognita07/vital/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db             *gorm.DB
	repositories   *db.Repositories
	summaryService *services.SummaryService
	exportService  *services.ExportService
}

func NewHandler(database *gorm.DB) *Handler {
	repositories := db.NewRepositories(database)
	return &Handler{
		db:           database,
		repositories: repositories,
		summaryService: services.NewSummaryService(
			repositories.Entries,
			repositories.Weights,
			repositories.Moods,
			repositories.Profile,
			repositories.Goals,
		),
		exportService: services.NewExportService(repositories.Entries),
	}
}
