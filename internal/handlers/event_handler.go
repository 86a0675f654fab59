package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rmacedo/hoje-e-onde/internal/helpers"
	"github.com/rmacedo/hoje-e-onde/internal/logging"
	"github.com/rmacedo/hoje-e-onde/internal/middleware"
	"github.com/rmacedo/hoje-e-onde/internal/models"
	"github.com/rmacedo/hoje-e-onde/internal/stores"
)

// SubmitEvent accepts a multipart event submission with an optional banner
// image. Submissions start unapproved and only reach the feed after an
// administrator approves them.
func SubmitEvent(c *gin.Context) {
	title := c.PostForm("titulo")
	description := c.PostForm("descricao")
	date := c.PostForm("data")
	startTime := c.PostForm("duracao")
	location := c.PostForm("local")
	audience := c.PostForm("publicoAlvo")
	eventType := c.PostForm("tipo")

	if title == "" || date == "" || location == "" || eventType == "" {
		helpers.RespondWithError(c, http.StatusBadRequest, "Missing required fields.")
		return
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid date format. Expected YYYY-MM-DD.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	event := models.Event{
		Title:       title,
		Description: description,
		Date:        date,
		StartTime:   startTime,
		Location:    location,
		Audience:    audience,
		Type:        eventType,
		OrganizerID: c.GetUint("user_id"),
	}

	bannerFile, err := c.FormFile("banner")
	if err == nil {
		filename, err := helpers.UploadBanner(c, bannerFile)
		if err != nil {
			helpers.RespondWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		event.Image = &filename
	}

	if err := stores.Create(gormDB, &event); err != nil {
		logging.L().Error("event submission failed", zap.Error(err))
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Evento submetido com sucesso! Ele passará por aprovação administrativa antes de ser publicado.",
		"event_id": event.ID,
	})
}

// GetEvent returns an approved event with its vote totals. When the caller
// carries a valid token the response also includes their own vote and
// whether the event is on their saved list.
func GetEvent(c *gin.Context) {
	id, err := helpers.StringToInt(c.Param("id"))
	if err != nil || id <= 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "ID de evento inválido.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	event, err := stores.GetApproved(gormDB, uint(id))
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}
	if event == nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}

	counts, err := stores.CountVotes(gormDB, event.ID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	response := gin.H{
		"evento": event,
		"counts": counts,
	}

	if identity, ok := middleware.ParseIdentity(c); ok {
		userVote, err := stores.UserVote(gormDB, identity.UserID, event.ID)
		if err == nil {
			response["usuarioVoto"] = userVote
		}
		saved, err := stores.IsSaved(gormDB, identity.UserID, event.ID)
		if err == nil {
			response["estaSalvo"] = saved
		}
	}

	c.JSON(http.StatusOK, response)
}

// Calendar lists every approved event ordered by date and time, for the
// monthly calendar view.
func Calendar(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	events, err := stores.ListApproved(gormDB, stores.Filter{})
	if err != nil {
		logging.L().Error("calendar query failed", zap.Error(err))
		events = []models.Event{}
	}

	c.JSON(http.StatusOK, gin.H{
		"eventos":  events,
		"mesAtivo": c.DefaultQuery("mes", stores.CurrentDate()[:7]),
	})
}

// UserArea returns the caller's submitted events and their saved list.
func UserArea(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)
	userID := c.GetUint("user_id")

	published, err := stores.ListByOrganizer(gormDB, userID)
	if err != nil {
		logging.L().Error("listing published events failed", zap.Error(err))
		published = []models.Event{}
	}

	saved, err := stores.ListSaved(gormDB, userID)
	if err != nil {
		logging.L().Error("listing saved events failed", zap.Error(err))
		saved = []models.Event{}
	}

	c.JSON(http.StatusOK, gin.H{
		"eventosPublicados": published,
		"eventosSalvos":     saved,
	})
}
