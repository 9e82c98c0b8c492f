package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/vital/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalsRepository struct {
	database *gorm.DB
}

func NewGoalsRepository(database *gorm.DB) *GoalsRepository {
	return &GoalsRepository{database: database}
}

func (repo *GoalsRepository) Upsert(goals models.Goals) error {
	goals.ID = models.SingletonID
	goals.UpdatedAt = time.Now().UTC()
	return repo.database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&goals).Error
}

func (repo *GoalsRepository) Read() (models.Goals, bool, error) {
	goals := models.Goals{}
	err := repo.database.First(&goals, models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Goals{}, false, nil
	}
	if err != nil {
		return models.Goals{}, false, err
	}
	return goals, true, nil
}
