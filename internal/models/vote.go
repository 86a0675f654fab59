package models

import "time"

const (
	VotePositive = "positivo"
	VoteNegative = "negativo"
)

// Vote holds one user's opinion on one event. The composite unique index is
// what guarantees at most one row per (user, event) pair, even under
// concurrent submissions.
type Vote struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_votes_user_event" json:"usuarioId"`
	EventID   uint   `gorm:"not null;uniqueIndex:idx_votes_user_event" json:"eventoId"`
	Kind      string `gorm:"not null" json:"tipoVoto"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
