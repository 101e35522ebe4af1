package models

// UserRole is the system-level role of a back-office account.
type UserRole string

const (
	RoleSuperAdmin UserRole = "SuperAdmin"
	RoleAdmin      UserRole = "Admin"
	RoleUser       UserRole = "User"
)

// AppModule identifies one of the permission-gated application areas
// reachable from the Hub.
type AppModule string

const (
	ModuleInventory      AppModule = "inventory"
	ModuleTripScheduling AppModule = "trip_scheduling"
	ModuleBilling        AppModule = "billing"
)

// KnownModules lists every module the Hub can launch, in display order.
var KnownModules = []AppModule{ModuleInventory, ModuleTripScheduling, ModuleBilling}

// ValidModule reports whether m names a known application module.
func ValidModule(m AppModule) bool {
	for _, k := range KnownModules {
		if k == m {
			return true
		}
	}
	return false
}

type SystemUser struct {
	ID           int         `json:"id"`
	Username     string      `json:"username"`
	PasswordHash string      `json:"-"`
	Role         UserRole    `json:"role"`
	Permissions  []AppModule `json:"permissions"`
}

// HasPermission reports whether the user may open the given module.
func (u SystemUser) HasPermission(module AppModule) bool {
	for _, p := range u.Permissions {
		if p == module {
			return true
		}
	}
	return false
}

func ValidUserRole(r UserRole) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}
