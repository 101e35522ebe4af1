package models

// Location is read-only in this system: seeded at startup, no CRUD surface.
type Location struct {
	LocationID   int     `json:"location_id"`
	Name         string  `json:"name"`
	AddressLine1 string  `json:"address_line_1"`
	City         string  `json:"city"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	IsHub        bool    `json:"is_hub"`
}
