package models

import "time"

type TripStatus string

const (
	TripScheduled TripStatus = "Scheduled"
	TripInTransit TripStatus = "In Transit"
	TripCompleted TripStatus = "Completed"
	TripCancelled TripStatus = "Cancelled"
	TripRescue    TripStatus = "Rescue"
	TripBackload  TripStatus = "Backload"
)

// Trip status carries no enforced transition graph: any of the six values
// may be set at any time. Scheduled -> In Transit -> Completed is the
// nominal path; Cancelled, Rescue and Backload are exceptional states.
func ValidTripStatus(s TripStatus) bool {
	switch s {
	case TripScheduled, TripInTransit, TripCompleted, TripCancelled, TripRescue, TripBackload:
		return true
	}
	return false
}

type LoadType string

const (
	LoadDry     LoadType = "Dry"
	LoadChilled LoadType = "Chilled"
	LoadRef     LoadType = "Ref"
	LoadCombi   LoadType = "Combi"
)

func ValidLoadType(l LoadType) bool {
	switch l {
	case LoadDry, LoadChilled, LoadRef, LoadCombi:
		return true
	}
	return false
}

// Trip references its customer, truck, driver and locations by raw id.
// The references are soft: nothing prevents a referenced row from being
// deleted later, and read-side joins must tolerate the miss.
type Trip struct {
	TripID                int        `json:"trip_id"`
	TripCode              string     `json:"trip_code"`
	CustomerID            int        `json:"customer_id"`
	TruckID               int        `json:"truck_id"`
	DriverID              int        `json:"driver_id"`
	Helper1ID             *int       `json:"helper1_id,omitempty"`
	Helper2ID             *int       `json:"helper2_id,omitempty"`
	OriginLocationID      int        `json:"origin_location_id"`
	DestinationLocationID int        `json:"destination_location_id"`
	ScheduledStartTime    time.Time  `json:"scheduled_start_time"`
	ActualStartTime       *time.Time `json:"actual_start_time,omitempty"`
	ActualEndTime         *time.Time `json:"actual_end_time,omitempty"`
	Status                TripStatus `json:"status"`
	LoadType              LoadType   `json:"load_type"`
	NetWeight             float64    `json:"net_weight,omitempty"`
	LoadingRefNo          string     `json:"loading_ref_no,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`
}

// EnrichedTrip is a Trip plus its resolved display fields. An unresolved
// foreign key leaves the corresponding field at its zero value; resolution
// never fails as a whole.
type EnrichedTrip struct {
	Trip
	CustomerName    string  `json:"customer_name"`
	DriverName      string  `json:"driver_name"`
	TruckPlate      string  `json:"truck_plate"`
	TruckCapacity   float64 `json:"truck_capacity,omitempty"`
	OriginName      string  `json:"origin_name"`
	DestinationName string  `json:"destination_name"`
}

type EventType string

const (
	EventLoadingArrival  EventType = "Loading_Arrival"
	EventLoadingStart    EventType = "Loading_Start"
	EventUnloadingFinish EventType = "Unloading_Finish"
)

// TripEvent is an encoder-captured milestone on a trip. Read-only here.
type TripEvent struct {
	EventID        int       `json:"event_id"`
	TripID         int       `json:"trip_id"`
	EncoderID      int       `json:"encoder_id"`
	EventType      EventType `json:"event_type"`
	EventTimestamp time.Time `json:"event_timestamp"`
	DocumentNo     string    `json:"document_no,omitempty"`
}

// TripFuel is an encoder-captured fuel purchase on a trip. Read-only here.
type TripFuel struct {
	FuelID      int     `json:"fuel_id"`
	TripID      int     `json:"trip_id"`
	EncoderID   int     `json:"encoder_id"`
	FuelRefNo   string  `json:"fuel_ref_no"`
	Liters      float64 `json:"liters"`
	TotalAmount float64 `json:"total_amount"`
}
