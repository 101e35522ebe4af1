package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"logitrack-app/internal/advisory"
	"logitrack-app/internal/models"
	"logitrack-app/internal/resolver"
	"logitrack-app/internal/ws"
	"logitrack-app/pkg/datastore"
)

type TripHandler struct {
	Store    *datastore.Store
	Hub      *ws.Hub
	Analyzer advisory.Analyzer
}

type TripRequest struct {
	TripCode              string            `json:"trip_code" binding:"required"`
	CustomerID            int               `json:"customer_id" binding:"required"`
	TruckID               int               `json:"truck_id" binding:"required"`
	DriverID              int               `json:"driver_id" binding:"required"`
	Helper1ID             *int              `json:"helper1_id"`
	Helper2ID             *int              `json:"helper2_id"`
	OriginLocationID      int               `json:"origin_location_id" binding:"required"`
	DestinationLocationID int               `json:"destination_location_id" binding:"required"`
	ScheduledStartTime    time.Time         `json:"scheduled_start_time" binding:"required"`
	Status                models.TripStatus `json:"status"`
	LoadType              models.LoadType   `json:"load_type" binding:"required"`
	NetWeight             float64           `json:"net_weight"`
	LoadingRefNo          string            `json:"loading_ref_no"`
}

func (r TripRequest) toTrip() models.Trip {
	status := r.Status
	if status == "" {
		status = models.TripScheduled
	}
	return models.Trip{
		TripCode:              r.TripCode,
		CustomerID:            r.CustomerID,
		TruckID:               r.TruckID,
		DriverID:              r.DriverID,
		Helper1ID:             r.Helper1ID,
		Helper2ID:             r.Helper2ID,
		OriginLocationID:      r.OriginLocationID,
		DestinationLocationID: r.DestinationLocationID,
		ScheduledStartTime:    r.ScheduledStartTime,
		Status:                status,
		LoadType:              r.LoadType,
		NetWeight:             r.NetWeight,
		LoadingRefNo:          r.LoadingRefNo,
	}
}

func (r TripRequest) validate() string {
	if r.Status != "" && !models.ValidTripStatus(r.Status) {
		return "Invalid trip status"
	}
	if !models.ValidLoadType(r.LoadType) {
		return "Invalid load type"
	}
	return ""
}

// ListTrips returns the enriched view of every trip. Dangling references
// (a deleted truck, driver, customer or location) come back with the
// matching display fields blank.
func (h *TripHandler) ListTrips(c *gin.Context) {
	enriched := resolver.ResolveAll(
		h.Store.Trips.List(),
		h.Store.Employees.List(),
		h.Store.Customers.List(),
		h.Store.Locations.List(),
		h.Store.Trucks.List(),
	)
	c.JSON(http.StatusOK, enriched)
}

func (h *TripHandler) GetTrip(c *gin.Context) {
	trip, ok := h.tripByParam(c)
	if !ok {
		return
	}

	enriched := resolver.Resolve(
		trip,
		h.Store.Employees.List(),
		h.Store.Customers.List(),
		h.Store.Locations.List(),
		h.Store.Trucks.List(),
	)
	c.JSON(http.StatusOK, enriched)
}

func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	trip := req.toTrip()
	trip.CreatedAt = time.Now().UTC()
	trip = h.Store.Trips.Add(trip)

	c.JSON(http.StatusCreated, trip)
}

func (h *TripHandler) UpdateTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	existing, found := h.Store.Trips.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}

	var req TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if msg := req.validate(); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": msg})
		return
	}

	trip := req.toTrip()
	trip.TripID = id
	trip.CreatedAt = existing.CreatedAt
	trip.ActualStartTime = existing.ActualStartTime
	trip.ActualEndTime = existing.ActualEndTime
	h.Store.Trips.Update(trip)

	c.JSON(http.StatusOK, trip)
}

func (h *TripHandler) DeleteTrip(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if !h.Store.Trips.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Trip deleted"})
}

type SetStatusRequest struct {
	Status models.TripStatus `json:"status" binding:"required"`
}

// SetStatus updates a trip's status and pushes the change to the trip's
// websocket group. The first transition to In Transit stamps the actual
// start time; Completed stamps the end time.
func (h *TripHandler) SetStatus(c *gin.Context) {
	trip, ok := h.tripByParam(c)
	if !ok {
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !models.ValidTripStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid trip status"})
		return
	}

	now := time.Now().UTC()
	trip.Status = req.Status
	if req.Status == models.TripInTransit && trip.ActualStartTime == nil {
		trip.ActualStartTime = &now
	}
	if req.Status == models.TripCompleted && trip.ActualEndTime == nil {
		trip.ActualEndTime = &now
	}
	h.Store.Trips.Update(trip)

	if h.Hub != nil {
		h.Hub.Publish(ws.TripUpdate{TripID: trip.TripID, Status: trip.Status, Timestamp: now})
	}

	c.JSON(http.StatusOK, trip)
}

func (h *TripHandler) ListTripEvents(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	events := h.Store.TripEvents.Filter(func(e models.TripEvent) bool {
		return e.TripID == id
	})
	if events == nil {
		events = []models.TripEvent{}
	}
	c.JSON(http.StatusOK, events)
}

// Analyze asks the advisory generator for an operational read on the trip.
// The generator never fails; an unreachable backend yields its fallback
// text with a 200.
func (h *TripHandler) Analyze(c *gin.Context) {
	trip, ok := h.tripByParam(c)
	if !ok {
		return
	}

	enriched := resolver.Resolve(
		trip,
		h.Store.Employees.List(),
		h.Store.Customers.List(),
		h.Store.Locations.List(),
		h.Store.Trucks.List(),
	)

	analysis := h.Analyzer.AnalyzeTrip(c.Request.Context(), advisory.AnalysisRequest{
		Trip:          trip,
		OriginName:    enriched.OriginName,
		DestName:      enriched.DestinationName,
		TruckCapacity: enriched.TruckCapacity,
	})

	c.JSON(http.StatusOK, gin.H{"trip_id": trip.TripID, "analysis": analysis})
}

func (h *TripHandler) tripByParam(c *gin.Context) (models.Trip, bool) {
	id, ok := paramID(c)
	if !ok {
		return models.Trip{}, false
	}
	trip, found := h.Store.Trips.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Trip not found"})
		return models.Trip{}, false
	}
	return trip, true
}

func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}
