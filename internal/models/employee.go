package models

import "errors"

type EmployeeRole string

const (
	RoleDriver  EmployeeRole = "Driver"
	RoleHelper  EmployeeRole = "Helper"
	RoleEncoder EmployeeRole = "Encoder"
)

var ErrDriverLicenseRequired = errors.New("license number is required for drivers")

type Employee struct {
	EmployeeID    int          `json:"employee_id"`
	FirstName     string       `json:"first_name"`
	LastName      string       `json:"last_name"`
	Role          EmployeeRole `json:"role"`
	LicenseNumber string       `json:"license_number,omitempty"`
}

func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

func ValidEmployeeRole(r EmployeeRole) bool {
	switch r {
	case RoleDriver, RoleHelper, RoleEncoder:
		return true
	}
	return false
}

// Validate checks the role-conditional license rule: a driver must carry a
// license number. Callers are expected to Normalize first so a non-driver
// never reaches the store with a stale license.
func (e Employee) Validate() error {
	if !ValidEmployeeRole(e.Role) {
		return errors.New("unknown employee role")
	}
	if e.Role == RoleDriver && e.LicenseNumber == "" {
		return ErrDriverLicenseRequired
	}
	return nil
}

// Normalize clears the license number for any non-driver role. The license
// field is meaningful only while Role == Driver.
func (e Employee) Normalize() Employee {
	if e.Role != RoleDriver {
		e.LicenseNumber = ""
	}
	return e
}
