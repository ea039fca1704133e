package models

import (
	"time"

	"github.com/google/uuid"
)

// RideStatus represents the lifecycle state of a ride
type RideStatus string

const (
	RideStatusOpen      RideStatus = "OPEN"
	RideStatusConfirmed RideStatus = "CONFIRMED"
	RideStatusCompleted RideStatus = "COMPLETED"
	RideStatusCancelled RideStatus = "CANCELLED"
)

// ValidRideStatus reports whether s is one of the known ride statuses.
func ValidRideStatus(s RideStatus) bool {
	switch s {
	case RideStatusOpen, RideStatusConfirmed, RideStatusCompleted, RideStatusCancelled:
		return true
	}
	return false
}

// Ride represents a ride request posted by a rider.
//
// DriverID is nil exactly while the ride is OPEN (or CANCELLED, which is only
// reachable from OPEN); it is set by a successful claim together with the
// transition to CONFIRMED.
type Ride struct {
	RideID             uuid.UUID  `json:"ride_id" db:"ride_id"`
	OwnerID            uuid.UUID  `json:"owner_id" db:"owner_id"`
	Destination        string     `json:"destination" db:"destination"`
	ScheduledAt        time.Time  `json:"scheduled_at" db:"scheduled_at"`
	OwnerPassengers    int        `json:"owner_passengers" db:"owner_passengers"`
	CanShared          bool       `json:"can_shared" db:"can_shared"`
	VehicleTypeRequest string     `json:"vehicle_type_request,omitempty" db:"vehicle_type_request"`
	SpecialRequest     string     `json:"special_request,omitempty" db:"special_request"`
	DriverID           *uuid.UUID `json:"driver_id,omitempty" db:"driver_id"`
	Status             RideStatus `json:"status" db:"status"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`

	// TotalPeople is owner_passengers plus the sum of all share passenger
	// counts. It is annotated by list/get queries, never stored.
	TotalPeople int `json:"total_people" db:"total_people"`
}

// RideShare represents a rider joining somebody else's ride. The store
// enforces at most one share per (ride, sharer) pair.
type RideShare struct {
	ShareID    uuid.UUID `json:"share_id" db:"share_id"`
	RideID     uuid.UUID `json:"ride_id" db:"ride_id"`
	SharerID   uuid.UUID `json:"sharer_id" db:"sharer_id"`
	Passengers int       `json:"passengers" db:"passengers"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// RideFields carries the caller-supplied fields for create and edit. Tags are
// optional; empty string means no request.
type RideFields struct {
	Destination        string    `json:"destination"`
	ScheduledAt        time.Time `json:"scheduled_at"`
	OwnerPassengers    int       `json:"owner_passengers"`
	CanShared          bool      `json:"can_shared"`
	VehicleTypeRequest string    `json:"vehicle_type_request"`
	SpecialRequest     string    `json:"special_request"`
}

// ClaimNotification is the payload handed to the notification gateway when a
// driver claims a ride.
type ClaimNotification struct {
	RideID      uuid.UUID `json:"ride_id"`
	Destination string    `json:"destination"`
	ScheduledAt time.Time `json:"scheduled_at"`

	OwnerName     string `json:"owner_name"`
	OwnerEmail    string `json:"owner_email"`
	OwnerPhone    string `json:"owner_phone"`
	DriverName    string `json:"driver_name"`
	DriverEmail   string `json:"driver_email"`
	DriverVehicle string `json:"driver_vehicle"`

	// PassengerRecipients is the owner plus every current sharer.
	PassengerRecipients []string `json:"passenger_recipients"`

	Subject       string `json:"subject"`
	PassengerBody string `json:"passenger_body"`
	DriverBody    string `json:"driver_body"`
}
