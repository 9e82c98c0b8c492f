package models

import "time"

// Weight is one logged body-weight measurement.
type Weight struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"column:date;not null;index" json:"date"`
	WeightKG  *float64  `gorm:"column:weight_kg" json:"weight_kg"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Weight) TableName() string { return "weights" }

var WeightMutableColumns = []string{"date", "weight_kg"}
