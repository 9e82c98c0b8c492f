package models

import "time"

// Goals is the single daily-targets row. A nil or zero goal is unset and
// never gates the adherence streak.
type Goals struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StepsGoal *int64    `gorm:"column:steps_goal" json:"steps_goal"`
	WaterGoal *int64    `gorm:"column:water_goal" json:"water_goal"`
	SleepGoal *float64  `gorm:"column:sleep_goal" json:"sleep_goal"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Goals) TableName() string { return "goals" }
