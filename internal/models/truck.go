package models

import "errors"

type TruckStatus string

const (
	TruckAvailable   TruckStatus = "Available"
	TruckInUse       TruckStatus = "In Use"
	TruckMaintenance TruckStatus = "Maintenance"
)

type Truck struct {
	TruckID        int         `json:"truck_id"`
	LicensePlate   string      `json:"license_plate"`
	VIN            string      `json:"vin"`
	TonnerCapacity float64     `json:"tonner_capacity"`
	Status         TruckStatus `json:"status"`
}

func ValidTruckStatus(s TruckStatus) bool {
	switch s {
	case TruckAvailable, TruckInUse, TruckMaintenance:
		return true
	}
	return false
}

func (t Truck) Validate() error {
	if !ValidTruckStatus(t.Status) {
		return errors.New("unknown truck status")
	}
	if t.TonnerCapacity <= 0 {
		return errors.New("tonner capacity must be positive")
	}
	return nil
}
