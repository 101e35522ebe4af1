package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack-app/pkg/datastore"
)

// DirectoryHandler serves the read-only reference collections.
type DirectoryHandler struct {
	Store *datastore.Store
}

func (h *DirectoryHandler) ListCustomers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Customers.List())
}

func (h *DirectoryHandler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Locations.List())
}

func (h *DirectoryHandler) ListFuels(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Fuels.List())
}
