package models

// Customer is read-only in this system: seeded at startup, no CRUD surface.
type Customer struct {
	CustomerID   int    `json:"customer_id"`
	Name         string `json:"name"`
	ContactName  string `json:"contact_name"`
	ContactPhone string `json:"contact_phone"`
}
