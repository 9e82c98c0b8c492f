package models

import "time"

// Mood is one logged mood check-in. Mood, stress and energy are free-form
// integer scales; the backend stores whatever the client sends.
type Mood struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"column:date;not null;index" json:"date"`
	Mood      *int64    `gorm:"column:mood" json:"mood"`
	Stress    *int64    `gorm:"column:stress" json:"stress"`
	Energy    *int64    `gorm:"column:energy" json:"energy"`
	Notes     *string   `gorm:"column:notes" json:"notes"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Mood) TableName() string { return "moods" }

var MoodMutableColumns = []string{"date", "mood", "stress", "energy", "notes"}
