package models

import "time"

type Task struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Content   string    `gorm:"type:text" json:"content"`
	Priority  int       `gorm:"not null;default:0" json:"priority"`
	Slug      string    `gorm:"type:varchar(255);index" json:"slug"`
	UserID    uint64    `gorm:"not null" json:"user_id"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
