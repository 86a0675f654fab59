package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/rmacedo/hoje-e-onde/internal/helpers"
	"github.com/rmacedo/hoje-e-onde/internal/models"
	"github.com/rmacedo/hoje-e-onde/internal/stores"
)

type ReviewRequest struct {
	EventID int    `json:"eventoId" binding:"required"`
	Action  string `json:"acao" binding:"required,oneof=aprovar recusar"`
}

// PendingEvents lists submissions awaiting review, joined with the
// organizer's name.
func PendingEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	pending, err := stores.ListPending(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving pending events.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"eventos": pending})
}

// ReviewEvent approves a submission or rejects it. Rejection deletes the
// event and its engagement rows.
func ReviewEvent(c *gin.Context) {
	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EventID <= 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var err error
	var message string
	if req.Action == "aprovar" {
		err = stores.Approve(gormDB, uint(req.EventID))
		message = "Evento aprovado."
	} else {
		err = stores.Reject(gormDB, uint(req.EventID))
		message = "Evento recusado e removido."
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found.")
		return
	}
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to review event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// CreateAdmin lets an administrator register another admin account.
func CreateAdmin(c *gin.Context) {
	createUser(c, models.RoleAdmin)
}
