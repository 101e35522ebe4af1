// Package analytics derives the dashboard aggregates. Pure reductions over
// the entity collections, no side effects.
package analytics

import "logitrack-app/internal/models"

type Summary struct {
	TotalFuelCost     float64        `json:"total_fuel_cost"`
	ActiveTrips       int            `json:"active_trips"`
	ScheduledTrips    int            `json:"scheduled_trips"`
	MaintenanceTrucks int            `json:"maintenance_trucks"`
	StatusHistogram   []StatusBucket `json:"status_histogram"`
}

type StatusBucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Summarize reduces the collections to the dashboard KPIs. The histogram
// buckets Transit/Sched/Done/Rescue only; Cancelled and Backload trips are
// deliberately absent from it (a display simplification, not data loss).
// The result is independent of input ordering.
func Summarize(trips []models.Trip, trucks []models.Truck, fuels []models.TripFuel) Summary {
	s := Summary{}

	for _, f := range fuels {
		s.TotalFuelCost += f.TotalAmount
	}

	var completed, rescue int
	for _, t := range trips {
		switch t.Status {
		case models.TripInTransit:
			s.ActiveTrips++
		case models.TripScheduled:
			s.ScheduledTrips++
		case models.TripCompleted:
			completed++
		case models.TripRescue:
			rescue++
		}
	}

	for _, t := range trucks {
		if t.Status == models.TruckMaintenance {
			s.MaintenanceTrucks++
		}
	}

	s.StatusHistogram = []StatusBucket{
		{Name: "Transit", Count: s.ActiveTrips},
		{Name: "Sched", Count: s.ScheduledTrips},
		{Name: "Done", Count: completed},
		{Name: "Rescue", Count: rescue},
	}

	return s
}
