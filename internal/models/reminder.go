package models

import "time"

type Reminder struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"not null;index" json:"user_id"`
	DisciplineID *uint     `gorm:"index" json:"discipline_id"`
	Title        string    `gorm:"size:255;not null" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	RemindAt     time.Time `gorm:"not null" json:"remind_at"`
	CreatedAt    time.Time `json:"created_at"`
}
