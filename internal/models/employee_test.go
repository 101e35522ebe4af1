package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClearsLicenseForNonDrivers(t *testing.T) {
	emp := Employee{FirstName: "Bob", Role: RoleHelper, LicenseNumber: "L999999"}

	got := emp.Normalize()
	assert.Empty(t, got.LicenseNumber, "license is meaningful only for drivers")

	driver := Employee{FirstName: "John", Role: RoleDriver, LicenseNumber: "L123456"}
	assert.Equal(t, "L123456", driver.Normalize().LicenseNumber)
}

func TestValidateRequiresDriverLicense(t *testing.T) {
	err := Employee{FirstName: "John", Role: RoleDriver}.Validate()
	assert.ErrorIs(t, err, ErrDriverLicenseRequired)

	assert.NoError(t, Employee{FirstName: "John", Role: RoleDriver, LicenseNumber: "L1"}.Validate())
	assert.NoError(t, Employee{FirstName: "Bob", Role: RoleHelper}.Validate())
	assert.Error(t, Employee{FirstName: "X", Role: "Pilot"}.Validate())
}

// A helper promoted to driver without a license fails boundary validation.
// The store itself accepts the write (covered in the datastore tests); this
// rule only exists where requests are validated.
func TestPromotionToDriverWithoutLicense(t *testing.T) {
	emp := Employee{EmployeeID: 1, FirstName: "Bob", Role: RoleHelper}.Normalize()
	assert.NoError(t, emp.Validate())

	emp.Role = RoleDriver
	emp = emp.Normalize()
	assert.ErrorIs(t, emp.Validate(), ErrDriverLicenseRequired)
}

func TestValidModule(t *testing.T) {
	assert.True(t, ValidModule(ModuleInventory))
	assert.True(t, ValidModule(ModuleTripScheduling))
	assert.True(t, ValidModule(ModuleBilling))
	assert.False(t, ValidModule("payroll"))
}

func TestValidTripStatusAcceptsAllSix(t *testing.T) {
	for _, s := range []TripStatus{TripScheduled, TripInTransit, TripCompleted, TripCancelled, TripRescue, TripBackload} {
		assert.True(t, ValidTripStatus(s), string(s))
	}
	assert.False(t, ValidTripStatus("Paused"))
}
