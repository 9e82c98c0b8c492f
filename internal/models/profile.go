package models

import "time"

// SingletonID is the fixed primary key of the profile and goals rows.
const SingletonID uint = 1

// Profile is the single user profile row. Upserts replace every field.
type Profile struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      *string   `gorm:"column:name" json:"name"`
	Age       *int64    `gorm:"column:age" json:"age"`
	HeightCM  *float64  `gorm:"column:height_cm" json:"height_cm"`
	WeightKG  *float64  `gorm:"column:weight_kg" json:"weight_kg"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Profile) TableName() string { return "profile" }
