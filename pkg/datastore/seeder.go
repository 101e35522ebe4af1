package datastore

import (
	"time"

	"go.uber.org/zap"

	"logitrack-app/config"
	"logitrack-app/internal/models"
	"logitrack-app/internal/utils"
)

// Seed populates the store with the baseline operating data: the two system
// accounts plus the current fleet, customer and trip records. Passwords are
// hashed before they ever reach the store.
func Seed(store *Store, log *zap.SugaredLogger) {
	seedUsers(store, log)

	store.Employees.load(
		models.Employee{EmployeeID: 1, FirstName: "John", LastName: "Doe", Role: models.RoleDriver, LicenseNumber: "L123456"},
		models.Employee{EmployeeID: 2, FirstName: "Jane", LastName: "Smith", Role: models.RoleDriver, LicenseNumber: "L987654"},
		models.Employee{EmployeeID: 3, FirstName: "Bob", LastName: "Johnson", Role: models.RoleHelper},
		models.Employee{EmployeeID: 4, FirstName: "Alice", LastName: "Williams", Role: models.RoleEncoder},
	)

	store.Customers.load(
		models.Customer{CustomerID: 1, Name: "Acme Logistics", ContactName: "Mike Ross", ContactPhone: "555-0100"},
		models.Customer{CustomerID: 2, Name: "Global Foods Inc", ContactName: "Rachel Zane", ContactPhone: "555-0101"},
	)

	store.Locations.load(
		models.Location{LocationID: 1, Name: "Manila Hub", AddressLine1: "Port Area", City: "Manila", Latitude: 14.5995, Longitude: 120.9842, IsHub: true},
		models.Location{LocationID: 2, Name: "Quezon City Warehouse", AddressLine1: "Araneta Ave", City: "Quezon City", Latitude: 14.6760, Longitude: 121.0437},
		models.Location{LocationID: 3, Name: "Batangas Port", AddressLine1: "Sta Clara", City: "Batangas", Latitude: 13.7565, Longitude: 121.0583},
		models.Location{LocationID: 4, Name: "Cebu Distribution Center", AddressLine1: "Mandaue", City: "Cebu", Latitude: 10.3157, Longitude: 123.8854, IsHub: true},
	)

	store.Trucks.load(
		models.Truck{TruckID: 1, LicensePlate: "ABC-1234", VIN: "VN1001", TonnerCapacity: 10, Status: models.TruckInUse},
		models.Truck{TruckID: 2, LicensePlate: "XYZ-5678", VIN: "VN1002", TonnerCapacity: 6, Status: models.TruckAvailable},
		models.Truck{TruckID: 3, LicensePlate: "RST-9012", VIN: "VN1003", TonnerCapacity: 12, Status: models.TruckMaintenance},
	)

	now := time.Now().UTC()
	store.Trips.load(
		models.Trip{
			TripID:                101,
			TripCode:              "TRIP-2023-001",
			CustomerID:            1,
			TruckID:               1,
			DriverID:              1,
			OriginLocationID:      1,
			DestinationLocationID: 3,
			ScheduledStartTime:    time.Date(2023, 10, 25, 8, 0, 0, 0, time.UTC),
			Status:                models.TripInTransit,
			LoadType:              models.LoadDry,
			NetWeight:             8500,
			LoadingRefNo:          "REF-1001",
			CreatedAt:             now,
		},
		models.Trip{
			TripID:                102,
			TripCode:              "TRIP-2023-002",
			CustomerID:            2,
			TruckID:               2,
			DriverID:              2,
			OriginLocationID:      4,
			DestinationLocationID: 2,
			ScheduledStartTime:    time.Date(2023, 10, 26, 14, 0, 0, 0, time.UTC),
			Status:                models.TripScheduled,
			LoadType:              models.LoadChilled,
			NetWeight:             5000,
			LoadingRefNo:          "REF-1002",
			CreatedAt:             now,
		},
	)

	store.Fuels.load(
		models.TripFuel{FuelID: 1, TripID: 101, EncoderID: 4, FuelRefNo: "F-555", Liters: 150.5, TotalAmount: 8500.00},
	)

	log.Infow("seed data loaded",
		"users", store.Users.Len(),
		"employees", store.Employees.Len(),
		"customers", store.Customers.Len(),
		"locations", store.Locations.Len(),
		"trucks", store.Trucks.Len(),
		"trips", store.Trips.Len(),
		"fuels", store.Fuels.Len(),
	)
}

func seedUsers(store *Store, log *zap.SugaredLogger) {
	adminHash, err := utils.HashPassword(config.AppConfig.Defaults.AdminPassword)
	if err != nil {
		log.Errorw("failed to hash admin seed password", "error", err)
		return
	}
	dispatcherHash, err := utils.HashPassword(config.AppConfig.Defaults.DispatcherPassword)
	if err != nil {
		log.Errorw("failed to hash dispatcher seed password", "error", err)
		return
	}

	store.Users.load(
		models.SystemUser{
			ID:           1,
			Username:     "SuperAdmin",
			PasswordHash: adminHash,
			Role:         models.RoleSuperAdmin,
			Permissions:  []models.AppModule{models.ModuleInventory, models.ModuleTripScheduling, models.ModuleBilling},
		},
		models.SystemUser{
			ID:           2,
			Username:     "Dispatcher",
			PasswordHash: dispatcherHash,
			Role:         models.RoleUser,
			Permissions:  []models.AppModule{models.ModuleTripScheduling},
		},
	)
}
