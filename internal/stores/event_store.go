package stores

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/rmacedo/hoje-e-onde/internal/models"
)

// AllTypes is the sentinel type filter meaning "no category constraint".
const AllTypes = "todos"

// Filter selects approved events. Search takes precedence over Date: a
// non-empty search term matches title or description case-insensitively and
// ignores the date entirely. An empty Type (or AllTypes) skips the category
// clause.
type Filter struct {
	Date   string
	Search string
	Type   string
}

func applyFilter(query *gorm.DB, f Filter) *gorm.DB {
	query = query.Where("events.approved = ?", true)
	if s := strings.TrimSpace(f.Search); s != "" {
		pattern := "%" + strings.ToLower(s) + "%"
		query = query.Where("LOWER(events.title) LIKE ? OR LOWER(events.description) LIKE ?", pattern, pattern)
	} else if f.Date != "" {
		query = query.Where("events.date = ?", f.Date)
	}
	if f.Type != "" && f.Type != AllTypes {
		query = query.Where("events.type = ?", f.Type)
	}
	return query
}

// ListApproved returns approved events matching the filter, ordered by date
// and time of day. An empty filter lists every approved event, which is what
// the calendar view consumes.
func ListApproved(db *gorm.DB, f Filter) ([]models.Event, error) {
	var events []models.Event
	err := applyFilter(db.Model(&models.Event{}), f).
		Order("events.date ASC, events.start_time ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetApproved returns the approved event with the given id, or nil when the
// id is unknown or the event is still pending approval.
func GetApproved(db *gorm.DB, id uint) (*models.Event, error) {
	var event models.Event
	err := db.Where("id = ? AND approved = ?", id, true).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func Create(db *gorm.DB, event *models.Event) error {
	return db.Create(event).Error
}

// ListByOrganizer returns every event a user submitted, newest date first,
// regardless of approval state.
func ListByOrganizer(db *gorm.DB, organizerID uint) ([]models.Event, error) {
	var events []models.Event
	err := db.Where("organizer_id = ?", organizerID).
		Order("date DESC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// PendingEvent is a pending submission joined with its organizer's name for
// the review screen.
type PendingEvent struct {
	models.Event
	OrganizerName string `json:"organizadorNome"`
}

func ListPending(db *gorm.DB) ([]PendingEvent, error) {
	var pending []PendingEvent
	err := db.Model(&models.Event{}).
		Select("events.*, users.full_name AS organizer_name").
		Joins("JOIN users ON users.id = events.organizer_id").
		Where("events.approved = ?", false).
		Scan(&pending).Error
	if err != nil {
		return nil, err
	}
	return pending, nil
}

func Approve(db *gorm.DB, id uint) error {
	result := db.Model(&models.Event{}).Where("id = ?", id).Update("approved", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Reject deletes an event together with its votes and saved-list rows.
// Engagement rows reference events by id only, so the cascade keeps the
// (user, event) unique indexes from pinning stale pairs.
func Reject(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).Delete(&models.Vote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.SavedEvent{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Event{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func ListEventTypes(db *gorm.DB) ([]models.EventType, error) {
	var types []models.EventType
	if err := db.Order("name ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

var seedEvents = []models.Event{
	{
		Title:     "Quintaneja",
		Location:  "Salão Parthenon",
		StartTime: "21:00",
		Type:      "Festa",
		Image:     strPtr("quintaneja.jpg"),
	},
	{
		Title:     "NOISE Fest",
		Location:  "McBee Music Bar",
		StartTime: "20:00",
		Type:      "Festa",
		Image:     strPtr("noisefest.jpeg"),
	},
	{
		Title:     "Encontro de Motociclistas",
		Location:  "Espaço de eventos - UFV",
		StartTime: "11:00",
		Type:      "Evento Cultural/Social",
		Image:     strPtr("motos.jpeg"),
	},
}

func strPtr(s string) *string { return &s }

// ReconcileSeeds makes sure the system-authored events exist exactly once
// and always carry the current date. Existing seed rows (detected by the
// organizer sentinel plus title) have their date refreshed in place;
// missing ones are inserted pre-approved. Safe to run on every boot.
func ReconcileSeeds(db *gorm.DB, today string) error {
	for _, seed := range seedEvents {
		var existing models.Event
		err := db.Where("organizer_id = ? AND title = ?", models.SystemOrganizerID, seed.Title).
			First(&existing).Error
		switch {
		case err == nil:
			if err := db.Model(&existing).Update("date", today).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			event := seed
			event.Date = today
			event.Description = "Descrição detalhada do evento inicial."
			event.Audience = "Público em geral"
			event.OrganizerID = models.SystemOrganizerID
			event.Approved = true
			if err := db.Create(&event).Error; err != nil {
				return err
			}
		default:
			return err
		}
	}
	return nil
}
