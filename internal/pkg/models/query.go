package models

import (
	"time"

	"github.com/google/uuid"
)

// RideOrder selects the sort column for ride listings. Both orders are
// descending (most recent first).
type RideOrder string

const (
	OrderByCreatedAt   RideOrder = "created_at"
	OrderByScheduledAt RideOrder = "scheduled_at"
)

// RideFilter is the repository-level specification for ride listings. It is
// assembled completely before the repository evaluates it once, so a listing
// is a pure function of (viewer, params, policy) and pagination offsets stay
// stable across pages.
type RideFilter struct {
	Statuses        []RideStatus
	OwnerID         *uuid.UUID
	ExcludeOwnerID  *uuid.UUID
	SharerID        *uuid.UUID
	ExcludeSharerID *uuid.UUID
	DriverID        *uuid.UUID
	ExcludeStatus   RideStatus

	DestinationLike string
	ScheduledFrom   *time.Time
	ScheduledTo     *time.Time
	SpecialRequest  string
	CanShared       *bool

	// MaxTotalPeople filters on the annotated total_people value; zero means
	// no seat filter.
	MaxTotalPeople int

	OrderBy RideOrder
	Limit   int
	Offset  int
}

// BoardQuery carries the caller-facing parameters of the public open-ride
// board. Zero values mean "no filter".
type BoardQuery struct {
	Destination    string
	ScheduledFrom  *time.Time
	ScheduledTo    *time.Time
	SpecialRequest string
	MaxTotalPeople int
	Page           int
}

// MyRidesQuery carries the my-rides dashboard parameters. A nil Status keeps
// the default behaviour of excluding COMPLETED rides.
type MyRidesQuery struct {
	Status *RideStatus
	Page   int
}

// DriverSearchQuery carries the driver search parameters.
type DriverSearchQuery struct {
	Destination string
	Page        int
}
