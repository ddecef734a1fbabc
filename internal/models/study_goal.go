package models

import "time"

type StudyGoal struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"not null;index" json:"user_id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	TargetHours  int       `gorm:"not null" json:"target_hours"`
	PeriodType   string    `gorm:"size:20;not null" json:"period_type"` // "weekly", "monthly", "semester"
	CurrentHours int       `gorm:"default:0" json:"current_hours"`
	CreatedAt    time.Time `json:"created_at"`
}
