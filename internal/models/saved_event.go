package models

import "time"

// SavedEvent bookmarks an event on a user's personal list. At most one row
// per (user, event) pair.
type SavedEvent struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_saved_user_event" json:"usuarioId"`
	EventID   uint `gorm:"not null;uniqueIndex:idx_saved_user_event" json:"eventoId"`
	CreatedAt time.Time
}
