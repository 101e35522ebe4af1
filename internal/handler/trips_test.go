package handler

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logitrack-app/internal/advisory"
	"logitrack-app/internal/models"
	"logitrack-app/pkg/datastore"
)

type stubAnalyzer struct {
	lastReq advisory.AnalysisRequest
	reply   string
}

func (s *stubAnalyzer) AnalyzeTrip(_ context.Context, req advisory.AnalysisRequest) string {
	s.lastReq = req
	return s.reply
}

func tripRouter(store *datastore.Store, analyzer advisory.Analyzer) *gin.Engine {
	h := &TripHandler{Store: store, Analyzer: analyzer}
	r := gin.New()
	r.GET("/trips", h.ListTrips)
	r.POST("/trips", h.CreateTrip)
	r.GET("/trips/:id", h.GetTrip)
	r.PUT("/trips/:id", h.UpdateTrip)
	r.DELETE("/trips/:id", h.DeleteTrip)
	r.PATCH("/trips/:id/status", h.SetStatus)
	r.GET("/trips/:id/events", h.ListTripEvents)
	r.POST("/trips/:id/analysis", h.Analyze)
	return r
}

func TestListTripsEnriched(t *testing.T) {
	store := newTestStore(t)
	r := tripRouter(store, nil)

	w := doJSON(t, r, http.MethodGet, "/trips", nil)
	requireStatus(t, w, http.StatusOK)

	trips := decodeBody[[]models.EnrichedTrip](t, w)
	require.Len(t, trips, 1)
	assert.Equal(t, "Acme Logistics", trips[0].CustomerName)
	assert.Equal(t, "John Doe", trips[0].DriverName)
	assert.Equal(t, "ABC-1234", trips[0].TruckPlate)
	assert.Equal(t, "Manila Hub", trips[0].OriginName)
	assert.Equal(t, "Batangas Port", trips[0].DestinationName)
}

func TestListTripsToleratesDeletedTruck(t *testing.T) {
	store := newTestStore(t)
	require.True(t, store.Trucks.Delete(1))
	r := tripRouter(store, nil)

	w := doJSON(t, r, http.MethodGet, "/trips", nil)
	requireStatus(t, w, http.StatusOK)

	trips := decodeBody[[]models.EnrichedTrip](t, w)
	require.Len(t, trips, 1)
	assert.Empty(t, trips[0].TruckPlate, "deleted truck resolves blank, not an error")
	assert.Equal(t, "John Doe", trips[0].DriverName, "other joins unaffected")
}

func TestCreateTripAssignsSequentialID(t *testing.T) {
	store := newTestStore(t)
	r := tripRouter(store, nil)

	body := gin.H{
		"trip_code":               "TRIP-2023-002",
		"customer_id":             1,
		"truck_id":                1,
		"driver_id":               1,
		"origin_location_id":      2,
		"destination_location_id": 1,
		"scheduled_start_time":    time.Now().UTC().Format(time.RFC3339),
		"load_type":               "Chilled",
	}
	w := doJSON(t, r, http.MethodPost, "/trips", body)
	requireStatus(t, w, http.StatusCreated)

	trip := decodeBody[models.Trip](t, w)
	assert.Equal(t, 2, trip.TripID, "deterministic max+1, never random")
	assert.Equal(t, models.TripScheduled, trip.Status, "defaults to Scheduled")
	assert.False(t, trip.CreatedAt.IsZero())
}

func TestCreateTripRejectsUnknownLoadType(t *testing.T) {
	store := newTestStore(t)
	r := tripRouter(store, nil)

	body := gin.H{
		"trip_code":               "TRIP-X",
		"customer_id":             1,
		"truck_id":                1,
		"driver_id":               1,
		"origin_location_id":      1,
		"destination_location_id": 2,
		"scheduled_start_time":    time.Now().UTC().Format(time.RFC3339),
		"load_type":               "Liquid",
	}
	w := doJSON(t, r, http.MethodPost, "/trips", body)
	requireStatus(t, w, http.StatusBadRequest)
}

func TestUpdateTripMissingIDIs404(t *testing.T) {
	store := newTestStore(t)
	r := tripRouter(store, nil)

	body := gin.H{
		"trip_code":               "TRIP-GHOST",
		"customer_id":             1,
		"truck_id":                1,
		"driver_id":               1,
		"origin_location_id":      1,
		"destination_location_id": 2,
		"scheduled_start_time":    time.Now().UTC().Format(time.RFC3339),
		"load_type":               "Dry",
	}
	w := doJSON(t, r, http.MethodPut, "/trips/999", body)
	requireStatus(t, w, http.StatusNotFound)
	assert.Equal(t, 1, store.Trips.Len(), "no insert on missing id")
}

func TestSetStatusStampsActualStart(t *testing.T) {
	store := newTestStore(t)
	trip := store.Trips.Add(models.Trip{
		TripCode:           "TRIP-2023-002",
		Status:             models.TripScheduled,
		LoadType:           models.LoadDry,
		CustomerID:         1,
		TruckID:            1,
		DriverID:           1,
		ScheduledStartTime: time.Now().UTC(),
	})
	r := tripRouter(store, nil)

	w := doJSON(t, r, http.MethodPatch, "/trips/2/status", gin.H{"status": "In Transit"})
	requireStatus(t, w, http.StatusOK)

	got, ok := store.Trips.Get(trip.TripID)
	require.True(t, ok)
	assert.Equal(t, models.TripInTransit, got.Status)
	require.NotNil(t, got.ActualStartTime)

	first := *got.ActualStartTime

	// A later repeat does not move the recorded start.
	w = doJSON(t, r, http.MethodPatch, "/trips/2/status", gin.H{"status": "In Transit"})
	requireStatus(t, w, http.StatusOK)
	got, _ = store.Trips.Get(trip.TripID)
	assert.Equal(t, first, *got.ActualStartTime)
}

// No transition graph is enforced: a completed trip can go straight back to
// Scheduled, and exceptional states are reachable from anywhere.
func TestSetStatusUnconstrainedTransitions(t *testing.T) {
	store := newTestStore(t)
	r := tripRouter(store, nil)

	for _, status := range []string{"Completed", "Scheduled", "Backload", "Rescue", "Cancelled"} {
		w := doJSON(t, r, http.MethodPatch, "/trips/1/status", gin.H{"status": status})
		requireStatus(t, w, http.StatusOK)
	}

	w := doJSON(t, r, http.MethodPatch, "/trips/1/status", gin.H{"status": "Teleporting"})
	requireStatus(t, w, http.StatusBadRequest)
}

func TestDeleteTrip(t *testing.T) {
	store := newTestStore(t)
	r := tripRouter(store, nil)

	requireStatus(t, doJSON(t, r, http.MethodDelete, "/trips/1", nil), http.StatusOK)
	requireStatus(t, doJSON(t, r, http.MethodDelete, "/trips/1", nil), http.StatusNotFound)
	assert.Equal(t, 0, store.Trips.Len())
}

func TestAnalyzePassesResolvedContext(t *testing.T) {
	store := newTestStore(t)
	stub := &stubAnalyzer{reply: "Route looks fine."}
	r := tripRouter(store, stub)

	w := doJSON(t, r, http.MethodPost, "/trips/1/analysis", nil)
	requireStatus(t, w, http.StatusOK)

	resp := decodeBody[map[string]any](t, w)
	assert.Equal(t, "Route looks fine.", resp["analysis"])
	assert.Equal(t, "Manila Hub", stub.lastReq.OriginName)
	assert.Equal(t, "Batangas Port", stub.lastReq.DestName)
	assert.Equal(t, 10.0, stub.lastReq.TruckCapacity)
}

func TestListTripEventsEmpty(t *testing.T) {
	store := newTestStore(t)
	r := tripRouter(store, nil)

	w := doJSON(t, r, http.MethodGet, "/trips/1/events", nil)
	requireStatus(t, w, http.StatusOK)
	assert.Equal(t, "[]", w.Body.String())
}
