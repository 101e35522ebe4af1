package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack-app/internal/models"
)

// HubHandler maps permissions onto the module launcher. No business logic:
// it only reports which screens a user may open and what views they contain.
type HubHandler struct{}

// moduleViews lists the inner views of each module, in sidebar order.
var moduleViews = map[models.AppModule][]string{
	models.ModuleInventory:      {"dashboard"},
	models.ModuleTripScheduling: {"dashboard", "trip-management", "trips", "trucks", "employees", "settings"},
	models.ModuleBilling:        {"dashboard"},
}

type moduleEntry struct {
	Module  models.AppModule `json:"module"`
	Views   []string         `json:"views"`
	Allowed bool             `json:"allowed"`
}

func (h *HubHandler) ListModules(c *gin.Context) {
	role, _ := c.Get("role")
	permsVal, _ := c.Get("permissions")
	perms, _ := permsVal.([]models.AppModule)

	user := models.SystemUser{Permissions: perms}
	isSuperAdmin := role == models.RoleSuperAdmin

	entries := make([]moduleEntry, 0, len(models.KnownModules))
	for _, m := range models.KnownModules {
		entries = append(entries, moduleEntry{
			Module:  m,
			Views:   moduleViews[m],
			Allowed: isSuperAdmin || user.HasPermission(m),
		})
	}

	c.JSON(http.StatusOK, gin.H{"modules": entries})
}

// InventoryStatus and BillingStatus are the gated placeholder surfaces for
// the modules that have no screens yet.
func (h *HubHandler) InventoryStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"module":  models.ModuleInventory,
		"status":  "under_development",
		"message": "Stock tracking and warehouse operations are coming in a later release.",
	})
}

func (h *HubHandler) BillingStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"module":  models.ModuleBilling,
		"status":  "under_development",
		"message": "Financial modules, invoicing, and cost tracking are coming in the next release.",
	})
}
