package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/rmacedo/hoje-e-onde/internal/helpers"
	"github.com/rmacedo/hoje-e-onde/internal/logging"
	"github.com/rmacedo/hoje-e-onde/internal/metrics"
	"github.com/rmacedo/hoje-e-onde/internal/stores"
)

// Engagement endpoints always answer with a structured success/message body
// instead of bare error statuses; redundant calls are reported, not failed.

type VoteRequest struct {
	EventID int    `json:"eventoId" binding:"required"`
	Kind    string `json:"tipoVoto" binding:"required,oneof=positivo negativo"`
}

type SaveRequest struct {
	EventID int `json:"eventoId" binding:"required"`
}

func Vote(c *gin.Context) {
	var req VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EventID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "ID de evento inválido. Apenas eventos reais podem receber votos.",
		})
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	event, err := stores.GetApproved(gormDB, uint(req.EventID))
	if err == nil && event == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"success": false,
			"message": "Evento não encontrado.",
		})
		return
	}
	if err != nil {
		logging.L().Error("vote lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erro ao registrar o voto.",
		})
		return
	}

	changed, counts, err := stores.CastVote(gormDB, c.GetUint("user_id"), event.ID, req.Kind)
	if err != nil {
		logging.L().Error("vote failed",
			zap.Uint("event_id", event.ID),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erro ao registrar o voto.",
		})
		return
	}

	if !changed {
		metrics.VotesCast.WithLabelValues("repetido").Inc()
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Você já tinha votado dessa forma neste evento.",
			"counts":  counts,
		})
		return
	}

	metrics.VotesCast.WithLabelValues("registrado").Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Voto registrado com sucesso!",
		"counts":  counts,
	})
}

func SaveEvent(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EventID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "ID de evento inválido. Apenas eventos reais podem ser salvos.",
		})
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	added, err := stores.SaveEvent(gormDB, c.GetUint("user_id"), uint(req.EventID))
	if err != nil {
		logging.L().Error("save failed", zap.Int("event_id", req.EventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erro ao salvar o evento.",
		})
		return
	}

	if !added {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Evento já estava salvo.",
		})
		return
	}

	metrics.EventsSaved.Inc()
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Evento salvo com sucesso!",
	})
}

func UnsaveEvent(c *gin.Context) {
	var req SaveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.EventID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "ID de evento inválido.",
		})
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	removed, err := stores.UnsaveEvent(gormDB, c.GetUint("user_id"), uint(req.EventID))
	if err != nil {
		logging.L().Error("unsave failed", zap.Int("event_id", req.EventID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Erro interno ao remover o evento da sua lista.",
		})
		return
	}

	if !removed {
		c.JSON(http.StatusOK, gin.H{
			"success": false,
			"message": "Evento não encontrado na sua lista.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Evento removido da sua lista com sucesso!",
	})
}
