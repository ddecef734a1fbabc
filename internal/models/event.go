package models

import (
	"time"

	"gorm.io/datatypes"
)

type Event struct {
	ID                uint           `gorm:"primaryKey" json:"id"`
	UserID            string         `gorm:"not null;index" json:"user_id"`
	DisciplineID      *uint          `gorm:"index" json:"discipline_id"`
	Title             string         `gorm:"size:255;not null" json:"title"`
	Description       string         `gorm:"type:text" json:"description"`
	EventType         string         `gorm:"size:50;not null" json:"event_type"` // "class", "exam", "deadline", etc.
	StartDate         time.Time      `gorm:"type:date;not null" json:"start_date"`
	StartTime         *string        `gorm:"size:8" json:"start_time"`
	EndTime           *string        `gorm:"size:8" json:"end_time"`
	Location          string         `gorm:"size:255" json:"location"`
	IsRecurring       bool           `gorm:"default:false" json:"is_recurring"`
	RecurrencePattern string         `gorm:"size:50" json:"recurrence_pattern"`
	RecurrenceDays    datatypes.JSON `gorm:"type:jsonb" json:"recurrence_days"`
	RecurrenceEndDate *time.Time     `gorm:"type:date" json:"recurrence_end_date"`
	CreatedAt         time.Time      `json:"created_at"`
}
