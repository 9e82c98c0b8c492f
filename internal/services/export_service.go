package services

import "github.com/terraincognita07/vital/internal/models"

type ExportEntryReader interface {
	ListAll() ([]models.Entry, error)
}

type ExportService struct {
	entries ExportEntryReader
}

func NewExportService(entries ExportEntryReader) *ExportService {
	return &ExportService{entries: entries}
}

type ExportData struct {
	Entries []models.Entry `json:"entries"`
}

// Build returns the full entry history, newest first, with no row cap.
func (service *ExportService) Build() (ExportData, error) {
	entries, err := service.entries.ListAll()
	if err != nil {
		return ExportData{}, err
	}
	return ExportData{Entries: entries}, nil
}
