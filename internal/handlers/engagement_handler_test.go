package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rmacedo/hoje-e-onde/internal/middleware"
	"github.com/rmacedo/hoje-e-onde/internal/models"
)

var testDBSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:handlertest%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
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

// newEngagementRouter wires the engagement endpoints behind a stub identity,
// standing in for the JWT middleware.
func newEngagementRouter(db *gorm.DB, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	})
	r.POST("/votar", Vote)
	r.POST("/salvar-evento", SaveEvent)
	r.POST("/remover-salvo", UnsaveEvent)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	return w, decoded
}

func TestVoteRejectsInvalidEventID(t *testing.T) {
	db := newTestDB(t)
	r := newEngagementRouter(db, 1)

	for _, body := range []string{
		`{"tipoVoto":"positivo"}`,
		`{"eventoId":0,"tipoVoto":"positivo"}`,
		`{"eventoId":-3,"tipoVoto":"positivo"}`,
	} {
		w, decoded := postJSON(t, r, "/votar", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, false, decoded["success"])
	}

	var votes int64
	require.NoError(t, db.Model(&models.Vote{}).Count(&votes).Error)
	assert.Zero(t, votes, "invalid ids must be rejected before touching storage")
}

func TestVoteRejectsUnknownKind(t *testing.T) {
	db := newTestDB(t)
	r := newEngagementRouter(db, 1)

	w, decoded := postJSON(t, r, "/votar", `{"eventoId":1,"tipoVoto":"talvez"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decoded["success"])
}

func TestVoteOnMissingEvent(t *testing.T) {
	db := newTestDB(t)
	r := newEngagementRouter(db, 1)

	w, decoded := postJSON(t, r, "/votar", `{"eventoId":42,"tipoVoto":"positivo"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, false, decoded["success"])
}

func TestVoteLifecycleOverHTTP(t *testing.T) {
	db := newTestDB(t)
	event := models.Event{Title: "Feira", Date: "2026-09-01", Location: "Praça", Type: "Festa", Approved: true}
	require.NoError(t, db.Create(&event).Error)
	r := newEngagementRouter(db, 7)

	body := fmt.Sprintf(`{"eventoId":%d,"tipoVoto":"positivo"}`, event.ID)
	w, decoded := postJSON(t, r, "/votar", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decoded["success"])
	counts := decoded["counts"].(map[string]interface{})
	assert.Equal(t, float64(1), counts["totalPositivo"])

	// Same kind again: reported as no change, counts untouched.
	w, decoded = postJSON(t, r, "/votar", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decoded["success"])
	counts = decoded["counts"].(map[string]interface{})
	assert.Equal(t, float64(1), counts["totalPositivo"])

	// Switching sides updates the single row.
	w, decoded = postJSON(t, r, "/votar", fmt.Sprintf(`{"eventoId":%d,"tipoVoto":"negativo"}`, event.ID))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decoded["success"])
	counts = decoded["counts"].(map[string]interface{})
	assert.Equal(t, float64(0), counts["totalPositivo"])
	assert.Equal(t, float64(1), counts["totalNegativo"])

	var votes int64
	require.NoError(t, db.Model(&models.Vote{}).Count(&votes).Error)
	assert.Equal(t, int64(1), votes)
}

func TestSaveAndUnsaveOverHTTP(t *testing.T) {
	db := newTestDB(t)
	event := models.Event{Title: "Feira", Date: "2026-09-01", Location: "Praça", Type: "Festa", Approved: true}
	require.NoError(t, db.Create(&event).Error)
	r := newEngagementRouter(db, 7)

	body := fmt.Sprintf(`{"eventoId":%d}`, event.ID)

	w, decoded := postJSON(t, r, "/salvar-evento", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decoded["success"])

	w, decoded = postJSON(t, r, "/salvar-evento", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decoded["success"])
	assert.Equal(t, "Evento já estava salvo.", decoded["message"])

	w, decoded = postJSON(t, r, "/remover-salvo", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decoded["success"])

	w, decoded = postJSON(t, r, "/remover-salvo", body)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decoded["success"])
}
