package stores

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/rmacedo/hoje-e-onde/internal/models"
)

// VoteCounts are the aggregate totals for one event.
type VoteCounts struct {
	TotalPositive int64 `json:"totalPositivo"`
	TotalNegative int64 `json:"totalNegativo"`
}

// CastVote records a two-sided vote as a single upsert: insert when the pair
// has no vote, switch the kind when it differs, leave the row untouched when
// the user resubmits the same kind. The conflict target is the unique
// (user_id, event_id) index, so concurrent submissions serialize inside the
// database and exactly one row survives. The returned flag reports whether
// anything actually changed.
func CastVote(db *gorm.DB, userID, eventID uint, kind string) (bool, VoteCounts, error) {
	vote := models.Vote{UserID: userID, EventID: eventID, Kind: kind}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"kind": kind}),
		Where:     clause.Where{Exprs: []clause.Expression{gorm.Expr("votes.kind <> ?", kind)}},
	}).Create(&vote)
	if result.Error != nil {
		return false, VoteCounts{}, result.Error
	}

	counts, err := CountVotes(db, eventID)
	if err != nil {
		return false, VoteCounts{}, err
	}
	return result.RowsAffected > 0, counts, nil
}

func CountVotes(db *gorm.DB, eventID uint) (VoteCounts, error) {
	var counts VoteCounts
	err := db.Model(&models.Vote{}).
		Select("COALESCE(SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END), 0) AS total_positive, "+
			"COALESCE(SUM(CASE WHEN kind = ? THEN 1 ELSE 0 END), 0) AS total_negative",
			models.VotePositive, models.VoteNegative).
		Where("event_id = ?", eventID).
		Scan(&counts).Error
	return counts, err
}

// UserVote returns the kind of the caller's vote on an event, or "" when
// they have not voted.
func UserVote(db *gorm.DB, userID, eventID uint) (string, error) {
	var vote models.Vote
	err := db.Where("user_id = ? AND event_id = ?", userID, eventID).First(&vote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return vote.Kind, nil
}

// SaveEvent bookmarks an event. Saving an already-saved event is a no-op;
// the returned flag is false in that case.
func SaveEvent(db *gorm.DB, userID, eventID uint) (bool, error) {
	saved := models.SavedEvent{UserID: userID, EventID: eventID}
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "event_id"}},
		DoNothing: true,
	}).Create(&saved)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UnsaveEvent removes a bookmark and reports whether a row was actually
// deleted.
func UnsaveEvent(db *gorm.DB, userID, eventID uint) (bool, error) {
	result := db.Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&models.SavedEvent{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func IsSaved(db *gorm.DB, userID, eventID uint) (bool, error) {
	var count int64
	err := db.Model(&models.SavedEvent{}).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Count(&count).Error
	return count > 0, err
}

// ListSaved returns the events on a user's personal list, newest date first.
func ListSaved(db *gorm.DB, userID uint) ([]models.Event, error) {
	var events []models.Event
	err := db.Model(&models.Event{}).
		Joins("JOIN saved_events ON saved_events.event_id = events.id").
		Where("saved_events.user_id = ?", userID).
		Order("events.date DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}
