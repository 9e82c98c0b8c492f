package models

import "time"

// Entry is one daily activity log row. Several entries may share a date.
// Domain fields are pointers so an absent value stays NULL in storage and
// null in JSON instead of collapsing to zero.
type Entry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Date       string    `gorm:"column:date;not null;index" json:"date"`
	Steps      *int64    `gorm:"column:steps" json:"steps"`
	WaterML    *int64    `gorm:"column:water_ml" json:"water_ml"`
	SleepHours *float64  `gorm:"column:sleep_hours" json:"sleep_hours"`
	Notes      *string   `gorm:"column:notes" json:"notes"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Entry) TableName() string { return "entries" }

// EntryMutableColumns are the columns a partial update may touch.
// id and created_at are immutable after insert.
var EntryMutableColumns = []string{"date", "steps", "water_ml", "sleep_hours", "notes"}
