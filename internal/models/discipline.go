package models

import "time"

type Discipline struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Code      string    `gorm:"size:50" json:"code"`
	Professor string    `gorm:"size:255" json:"professor"`
	Semester  string    `gorm:"size:50" json:"semester"`
	Color     string    `gorm:"size:7;default:#3B82F6" json:"color"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Events    []Event    `gorm:"foreignKey:DisciplineID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	Tasks     []Task     `gorm:"foreignKey:DisciplineID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	Reminders []Reminder `gorm:"foreignKey:DisciplineID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
	Meetings  []Meeting  `gorm:"foreignKey:DisciplineID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}
