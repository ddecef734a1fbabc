package models

import "time"

type Task struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	UserID       string     `gorm:"not null;index" json:"user_id"`
	DisciplineID *uint      `gorm:"index" json:"discipline_id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Priority     string     `gorm:"size:20;default:medium" json:"priority"` // "low", "medium", "high"
	Status       string     `gorm:"size:20;default:todo" json:"status"`     // "todo", "in_progress", "done"
	DueDate      *time.Time `gorm:"type:date" json:"due_date"`
	CompletedAt  *time.Time `json:"completed_at"`
	CreatedAt    time.Time  `json:"created_at"`
}
