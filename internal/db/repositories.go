package db

import (
	"github.com/terraincognita07/vital/internal/models"
	"gorm.io/gorm"
)

type Repositories struct {
	Entries *LogRepository[models.Entry]
	Weights *LogRepository[models.Weight]
	Moods   *LogRepository[models.Mood]
	Profile *ProfileRepository
	Goals   *GoalsRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Entries: NewLogRepository[models.Entry](database, models.EntryMutableColumns),
		Weights: NewLogRepository[models.Weight](database, models.WeightMutableColumns),
		Moods:   NewLogRepository[models.Mood](database, models.MoodMutableColumns),
		Profile: NewProfileRepository(database),
		Goals:   NewGoalsRepository(database),
	}
}
