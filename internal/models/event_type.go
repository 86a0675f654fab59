package models

import "time"

type EventType struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"unique;not null" json:"nome"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
