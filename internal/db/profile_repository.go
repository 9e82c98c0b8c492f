package db

import (
	"errors"
	"time"

	"github.com/terraincognita07/vital/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository struct {
	database *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{database: database}
}

// Upsert replaces every field of the singleton row, creating it on first
// write, and stamps updated_at.
func (repo *ProfileRepository) Upsert(profile models.Profile) error {
	profile.ID = models.SingletonID
	profile.UpdatedAt = time.Now().UTC()
	return repo.database.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&profile).Error
}

func (repo *ProfileRepository) Read() (models.Profile, bool, error) {
	profile := models.Profile{}
	err := repo.database.First(&profile, models.SingletonID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Profile{}, false, nil
	}
	if err != nil {
		return models.Profile{}, false, err
	}
	return profile, true, nil
}
