package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rmacedo/hoje-e-onde/internal/models"
)

func TestReconcileSeedsDoesNotDuplicate(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, ReconcileSeeds(db, "2026-08-31"))
	require.NoError(t, ReconcileSeeds(db, "2026-09-01"))

	var seeds []models.Event
	require.NoError(t, db.Where("organizer_id = ?", models.SystemOrganizerID).Find(&seeds).Error)
	require.Len(t, seeds, 3)

	for _, seed := range seeds {
		assert.True(t, seed.Approved)
		assert.Equal(t, "2026-09-01", seed.Date, "seed dates must follow the latest restart")
	}
}

func TestReconcileSeedsRefreshesOnlySeedRows(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "ana@example.com")
	submitted := createEvent(t, db, models.Event{
		Title: "Feira", Date: "2026-08-20", OrganizerID: user.ID, Approved: true,
	})

	require.NoError(t, ReconcileSeeds(db, "2026-09-01"))

	var reloaded models.Event
	require.NoError(t, db.First(&reloaded, submitted.ID).Error)
	assert.Equal(t, "2026-08-20", reloaded.Date)
}

func TestGetApprovedHidesPendingEvents(t *testing.T) {
	db := newTestDB(t)
	pending := createEvent(t, db, models.Event{Title: "Pendente", Date: "2026-09-01"})
	approved := createEvent(t, db, models.Event{Title: "Aprovado", Date: "2026-09-01", Approved: true})

	event, err := GetApproved(db, pending.ID)
	require.NoError(t, err)
	assert.Nil(t, event)

	event, err = GetApproved(db, approved.ID)
	require.NoError(t, err)
	require.NotNil(t, event)
	assert.Equal(t, "Aprovado", event.Title)

	event, err = GetApproved(db, 9999)
	require.NoError(t, err)
	assert.Nil(t, event)
}

func TestApproveMovesEventIntoFeed(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "ana@example.com")
	pending := createEvent(t, db, models.Event{Title: "Pendente", Date: "2026-09-01", OrganizerID: user.ID})

	page, err := BuildFeed(db, FeedQuery{Date: "2026-09-01"})
	require.NoError(t, err)
	assert.Empty(t, page.Events)

	require.NoError(t, Approve(db, pending.ID))

	page, err = BuildFeed(db, FeedQuery{Date: "2026-09-01"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Pendente"}, feedTitles(page.Events))

	list, err := ListPending(db)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestApproveUnknownEvent(t *testing.T) {
	db := newTestDB(t)
	assert.ErrorIs(t, Approve(db, 42), gorm.ErrRecordNotFound)
}

func TestRejectCascadesEngagement(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "ana@example.com")
	event := createEvent(t, db, models.Event{Title: "Polêmico", Date: "2026-09-01", OrganizerID: user.ID, Approved: true})

	_, _, err := CastVote(db, user.ID, event.ID, models.VotePositive)
	require.NoError(t, err)
	_, err = SaveEvent(db, user.ID, event.ID)
	require.NoError(t, err)

	require.NoError(t, Reject(db, event.ID))

	var events, votes, saved int64
	require.NoError(t, db.Model(&models.Event{}).Where("id = ?", event.ID).Count(&events).Error)
	require.NoError(t, db.Model(&models.Vote{}).Where("event_id = ?", event.ID).Count(&votes).Error)
	require.NoError(t, db.Model(&models.SavedEvent{}).Where("event_id = ?", event.ID).Count(&saved).Error)
	assert.Zero(t, events)
	assert.Zero(t, votes)
	assert.Zero(t, saved)

	page, err := BuildFeed(db, FeedQuery{Date: "2026-09-01"})
	require.NoError(t, err)
	assert.Empty(t, page.Events)
}

func TestRejectRemovesFromPendingList(t *testing.T) {
	db := newTestDB(t)
	user := createUser(t, db, "ana@example.com")
	pending := createEvent(t, db, models.Event{Title: "Recusado", Date: "2026-09-01", OrganizerID: user.ID})

	list, err := ListPending(db)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Usuário de Teste", list[0].OrganizerName)

	require.NoError(t, Reject(db, pending.ID))

	list, err = ListPending(db)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListApprovedSearchPrecedence(t *testing.T) {
	db := newTestDB(t)
	createEvent(t, db, models.Event{Title: "Festival de Inverno", Date: "2026-07-10", Approved: true})
	createEvent(t, db, models.Event{Title: "Corrida", Description: "festival de rua", Date: "2026-09-01", Approved: true})
	createEvent(t, db, models.Event{Title: "Feira Livre", Date: "2026-09-01", Approved: true})

	events, err := ListApproved(db, Filter{Date: "2026-09-01", Search: "festival"})
	require.NoError(t, err)
	require.Len(t, events, 2, "search must match both dates, ignoring the date selector")

	events, err = ListApproved(db, Filter{Date: "2026-09-01"})
	require.NoError(t, err)
	require.Len(t, events, 2)
}

func TestListEventTypes(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.EventType{Name: "Festa"}).Error)
	require.NoError(t, db.Create(&models.EventType{Name: "Outro"}).Error)

	types, err := ListEventTypes(db)
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, "Festa", types[0].Name)
}
