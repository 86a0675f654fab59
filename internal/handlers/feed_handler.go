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

// GetFeed serves the home feed. Storage failures never surface to the
// caller: the feed degrades to an empty list and the error is logged.
func GetFeed(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := stores.FeedQuery{
		Date:   c.Query("data"),
		Search: c.Query("busca"),
		Sort:   stores.SortKey(c.DefaultQuery("ordenar", string(stores.SortTime))),
		Type:   c.DefaultQuery("tipo", stores.AllTypes),
	}

	typeNames := []string{}
	types, err := stores.ListEventTypes(gormDB)
	if err != nil {
		logging.L().Error("listing event types failed", zap.Error(err))
	} else {
		for _, t := range types {
			typeNames = append(typeNames, t.Name)
		}
	}

	page, err := stores.BuildFeed(gormDB, query)
	if err != nil {
		logging.L().Error("feed query failed",
			zap.String("date", query.Date),
			zap.String("search", query.Search),
			zap.Error(err))
		page = &stores.FeedPage{Events: []stores.FeedEvent{}, Date: query.Date}
	}
	metrics.FeedQueries.Inc()

	c.JSON(http.StatusOK, gin.H{
		"eventos":          page.Events,
		"dataBuscaAtiva":   page.Date,
		"dataExibicao":     page.Display,
		"anterior":         page.Previous,
		"posterior":        page.Next,
		"tiposDisponiveis": typeNames,
		"ordenarAtivo":     query.Sort,
		"filtroAtivo":      query.Type,
	})
}
