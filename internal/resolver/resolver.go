// Package resolver joins trips against the entity collections for display.
// Every foreign key is resolved independently; a dangling reference leaves
// that field blank instead of failing the whole trip.
package resolver

import "logitrack-app/internal/models"

// Resolve produces the display-ready view of a trip. It never mutates its
// inputs and never fails: any subset of the foreign keys may be unresolved
// (for example after the referenced truck was deleted) and the rest of the
// fields are still populated.
func Resolve(
	trip models.Trip,
	employees []models.Employee,
	customers []models.Customer,
	locations []models.Location,
	trucks []models.Truck,
) models.EnrichedTrip {
	enriched := models.EnrichedTrip{Trip: trip}

	for _, c := range customers {
		if c.CustomerID == trip.CustomerID {
			enriched.CustomerName = c.Name
			break
		}
	}
	for _, e := range employees {
		if e.EmployeeID == trip.DriverID {
			enriched.DriverName = e.FullName()
			break
		}
	}
	for _, t := range trucks {
		if t.TruckID == trip.TruckID {
			enriched.TruckPlate = t.LicensePlate
			enriched.TruckCapacity = t.TonnerCapacity
			break
		}
	}
	for _, l := range locations {
		if l.LocationID == trip.OriginLocationID {
			enriched.OriginName = l.Name
			break
		}
	}
	for _, l := range locations {
		if l.LocationID == trip.DestinationLocationID {
			enriched.DestinationName = l.Name
			break
		}
	}

	return enriched
}

// ResolveAll enriches trips in order.
func ResolveAll(
	trips []models.Trip,
	employees []models.Employee,
	customers []models.Customer,
	locations []models.Location,
	trucks []models.Truck,
) []models.EnrichedTrip {
	out := make([]models.EnrichedTrip, 0, len(trips))
	for _, t := range trips {
		out = append(out, Resolve(t, employees, customers, locations, trucks))
	}
	return out
}

// SelectDrivers returns the employees eligible for trip assignment. This is
// the only place role constrains driver_id, and it is advisory: the store
// itself accepts any id.
func SelectDrivers(employees []models.Employee) []models.Employee {
	var drivers []models.Employee
	for _, e := range employees {
		if e.Role == models.RoleDriver {
			drivers = append(drivers, e)
		}
	}
	return drivers
}
