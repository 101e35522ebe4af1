package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"logitrack-app/internal/models"
	"logitrack-app/pkg/datastore"
)

type TruckHandler struct {
	Store *datastore.Store
}

type TruckRequest struct {
	LicensePlate   string             `json:"license_plate" binding:"required"`
	VIN            string             `json:"vin" binding:"required"`
	TonnerCapacity float64            `json:"tonner_capacity" binding:"required"`
	Status         models.TruckStatus `json:"status" binding:"required"`
}

func (h *TruckHandler) ListTrucks(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Trucks.List())
}

func (h *TruckHandler) CreateTruck(c *gin.Context) {
	var req TruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	truck := models.Truck{
		LicensePlate:   req.LicensePlate,
		VIN:            req.VIN,
		TonnerCapacity: req.TonnerCapacity,
		Status:         req.Status,
	}
	if err := truck.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	truck = h.Store.Trucks.Add(truck)
	c.JSON(http.StatusCreated, truck)
}

func (h *TruckHandler) UpdateTruck(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var req TruckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	truck := models.Truck{
		TruckID:        id,
		LicensePlate:   req.LicensePlate,
		VIN:            req.VIN,
		TonnerCapacity: req.TonnerCapacity,
		Status:         req.Status,
	}
	if err := truck.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Store.Trucks.Update(truck) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}
	c.JSON(http.StatusOK, truck)
}

// DeleteTruck removes the truck without touching trips that reference it;
// those trips keep a dangling truck_id and resolve with a blank plate.
func (h *TruckHandler) DeleteTruck(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if !h.Store.Trucks.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Truck not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Truck deleted"})
}
