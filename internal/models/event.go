package models

import "time"

// SystemOrganizerID marks events seeded by the application itself rather
// than submitted by a registered user.
const SystemOrganizerID uint = 0

type Event struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Title       string  `gorm:"not null" json:"titulo"`
	Description string  `json:"descricao"`
	Date        string  `gorm:"not null;index" json:"data"`
	StartTime   string  `json:"duracao"`
	Location    string  `gorm:"not null" json:"local"`
	Audience    string  `json:"publicoAlvo"`
	Type        string  `gorm:"not null" json:"tipo"`
	OrganizerID uint    `gorm:"not null;index" json:"organizadorId"`
	Approved    bool    `gorm:"not null;default:false" json:"aprovado"`
	Image       *string `json:"imagem"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
