package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack-app/internal/analytics"
	"logitrack-app/pkg/datastore"
)

type DashboardHandler struct {
	Store *datastore.Store
}

func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary := analytics.Summarize(
		h.Store.Trips.List(),
		h.Store.Trucks.List(),
		h.Store.Fuels.List(),
	)
	c.JSON(http.StatusOK, summary)
}
