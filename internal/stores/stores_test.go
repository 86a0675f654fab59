package stores

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rmacedo/hoje-e-onde/internal/models"
)

var testDBSeq int64

// newTestDB opens a fresh in-memory sqlite database. cache=shared keeps the
// same database visible across the pool's connections.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:storetest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.Vote{},
		&models.SavedEvent{},
		&models.EventType{},
	))
	return db
}

func createEvent(t *testing.T, db *gorm.DB, event models.Event) models.Event {
	t.Helper()
	if event.Location == "" {
		event.Location = "Praça Central"
	}
	if event.Type == "" {
		event.Type = "Festa"
	}
	require.NoError(t, db.Create(&event).Error)
	return event
}

func createUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{
		FullName: "Usuário de Teste",
		Email:    email,
		Document: email,
		Password: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}
