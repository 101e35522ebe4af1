package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"logitrack-app/internal/models"
	"logitrack-app/pkg/datastore"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestStore builds a store with a fleet small enough to reason about:
// one driver, one helper, one customer, two locations, one truck and one
// trip referencing all of them.
func newTestStore(t *testing.T) *datastore.Store {
	t.Helper()
	store := datastore.New()

	store.Employees.Add(models.Employee{FirstName: "John", LastName: "Doe", Role: models.RoleDriver, LicenseNumber: "L123456"})
	store.Employees.Add(models.Employee{FirstName: "Bob", LastName: "Johnson", Role: models.RoleHelper})
	store.Customers.Add(models.Customer{Name: "Acme Logistics"})
	store.Locations.Add(models.Location{Name: "Manila Hub", IsHub: true})
	store.Locations.Add(models.Location{Name: "Batangas Port"})
	store.Trucks.Add(models.Truck{LicensePlate: "ABC-1234", VIN: "VN1001", TonnerCapacity: 10, Status: models.TruckInUse})

	trip := store.Trips.Add(models.Trip{
		TripCode:              "TRIP-2023-001",
		CustomerID:            1,
		TruckID:               1,
		DriverID:              1,
		OriginLocationID:      1,
		DestinationLocationID: 2,
		Status:                models.TripInTransit,
		LoadType:              models.LoadDry,
		NetWeight:             8500,
	})
	require.Equal(t, 1, trip.TripID)

	store.Fuels.Add(models.TripFuel{TripID: trip.TripID, EncoderID: 2, FuelRefNo: "F-555", Liters: 150.5, TotalAmount: 8500.00})

	return store
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, "body: %s", w.Body.String())
}
