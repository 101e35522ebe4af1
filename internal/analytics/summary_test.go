package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"logitrack-app/internal/models"
)

func TestSummarizeBaseline(t *testing.T) {
	trips := []models.Trip{
		{TripID: 101, Status: models.TripInTransit},
		{TripID: 102, Status: models.TripScheduled},
	}
	fuels := []models.TripFuel{{FuelID: 1, TotalAmount: 8500.00}}

	got := Summarize(trips, nil, fuels)

	assert.Equal(t, 8500.00, got.TotalFuelCost)
	assert.Equal(t, 1, got.ActiveTrips)
	assert.Equal(t, 1, got.ScheduledTrips)
	assert.Equal(t, 0, got.MaintenanceTrucks)
}

func TestSummarizeOrderIndependent(t *testing.T) {
	trips := []models.Trip{
		{TripID: 1, Status: models.TripInTransit},
		{TripID: 2, Status: models.TripScheduled},
		{TripID: 3, Status: models.TripCompleted},
		{TripID: 4, Status: models.TripRescue},
	}
	trucks := []models.Truck{
		{TruckID: 1, Status: models.TruckMaintenance},
		{TruckID: 2, Status: models.TruckAvailable},
	}
	fuels := []models.TripFuel{
		{FuelID: 1, TotalAmount: 100},
		{FuelID: 2, TotalAmount: 250.5},
	}

	forward := Summarize(trips, trucks, fuels)

	reversed := func() Summary {
		rt := []models.Trip{trips[3], trips[2], trips[1], trips[0]}
		rk := []models.Truck{trucks[1], trucks[0]}
		rf := []models.TripFuel{fuels[1], fuels[0]}
		return Summarize(rt, rk, rf)
	}()

	assert.Equal(t, forward, reversed)
}

func TestSummarizeHistogramBuckets(t *testing.T) {
	trips := []models.Trip{
		{TripID: 1, Status: models.TripInTransit},
		{TripID: 2, Status: models.TripCompleted},
		{TripID: 3, Status: models.TripCompleted},
		{TripID: 4, Status: models.TripRescue},
		// Cancelled and Backload are intentionally absent from the histogram.
		{TripID: 5, Status: models.TripCancelled},
		{TripID: 6, Status: models.TripBackload},
	}

	got := Summarize(trips, nil, nil)

	assert.Equal(t, []StatusBucket{
		{Name: "Transit", Count: 1},
		{Name: "Sched", Count: 0},
		{Name: "Done", Count: 2},
		{Name: "Rescue", Count: 1},
	}, got.StatusHistogram)
}

func TestSummarizeEmptyInputs(t *testing.T) {
	got := Summarize(nil, nil, nil)

	assert.Zero(t, got.TotalFuelCost)
	assert.Zero(t, got.ActiveTrips)
	assert.Zero(t, got.ScheduledTrips)
	assert.Zero(t, got.MaintenanceTrucks)
	assert.Len(t, got.StatusHistogram, 4)
}
