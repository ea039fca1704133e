package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridepool/ridepool/internal/pkg/models"
)

// RideRepo defines the interface for ride data access operations.
//
// The store is the sole arbiter of serialization: UpdateRide, UpdateRideStatus
// and AssignDriver are conditional writes guarded on the expected current
// status and return ErrRideState when the guard misses, and CreateRideShare
// relies on the (ride, sharer) uniqueness constraint, returning
// ErrDuplicateShare on violation.
//
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/ridepool/ridepool/services/rides RideRepo
type RideRepo interface {
	CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error)
	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	UpdateRide(ctx context.Context, ride *models.Ride) error
	UpdateRideStatus(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) error
	AssignDriver(ctx context.Context, rideID, driverID uuid.UUID) error
	ListRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, error)

	CreateRideShare(ctx context.Context, share *models.RideShare) (*models.RideShare, error)
	GetRideShare(ctx context.Context, rideID, sharerID uuid.UUID) (*models.RideShare, error)
	DeleteRideShare(ctx context.Context, rideID, sharerID uuid.UUID) error
	ListRideShares(ctx context.Context, rideID uuid.UUID) ([]*models.RideShare, error)
}

// ProfileRepo resolves authenticated principals to rider profiles and their
// optional driver extension. A missing driver profile is a normal outcome
// reported as ErrDriverProfileNotFound, not a failure.
//
// go:generate mockgen -destination=mocks/mock_profiles.go -package=mocks github.com/ridepool/ridepool/services/rides ProfileRepo
type ProfileRepo interface {
	GetRiderProfile(ctx context.Context, userID uuid.UUID) (*models.RiderProfile, error)
	GetRiderProfileByID(ctx context.Context, profileID uuid.UUID) (*models.RiderProfile, error)
	GetDriverProfile(ctx context.Context, profileID uuid.UUID) (*models.DriverProfile, error)
	ListSharerProfiles(ctx context.Context, rideID uuid.UUID) ([]*models.RiderProfile, error)
}
