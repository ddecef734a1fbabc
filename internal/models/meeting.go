package models

import "time"

type Meeting struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"not null;index" json:"user_id"`
	DisciplineID *uint     `gorm:"index" json:"discipline_id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	MeetingDate  time.Time `gorm:"type:date;not null" json:"meeting_date"`
	StartTime    *string   `gorm:"size:8" json:"start_time"`
	EndTime      *string   `gorm:"size:8" json:"end_time"`
	Location     string    `gorm:"size:255" json:"location"`
	MeetingURL   string    `gorm:"size:255" json:"meeting_url"`
	CreatedAt    time.Time `json:"created_at"`
}
