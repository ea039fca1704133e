package models

import (
	"time"

	"github.com/google/uuid"
)

// Principal is the authenticated identity attached to a request. It is
// threaded explicitly into every use case call; there is no ambient
// current-user lookup.
type Principal struct {
	UserID   uuid.UUID `json:"user_id"`
	IsDriver bool      `json:"is_driver"`
}

// RiderProfile represents a rider in the system
type RiderProfile struct {
	ID        uuid.UUID `json:"id" db:"id"`
	UserID    uuid.UUID `json:"user_id" db:"user_id"`
	FullName  string    `json:"full_name" db:"full_name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	IsDriver  bool      `json:"is_driver" db:"is_driver"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// DriverProfile represents the optional driver extension of a rider profile.
// Capacity counts every seat in the vehicle including the driver's own.
type DriverProfile struct {
	ProfileID   uuid.UUID `json:"profile_id" db:"profile_id"`
	Capacity    int       `json:"capacity" db:"capacity"`
	VehicleType string    `json:"vehicle_type" db:"vehicle_type"`
	SpecialInfo string    `json:"special_info" db:"special_info"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
