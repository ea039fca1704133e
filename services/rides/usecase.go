package rides

import (
	"context"

	"github.com/google/uuid"
	"github.com/ridepool/ridepool/internal/pkg/models"
)

// RideUC defines the interface for ride business logic: the lifecycle
// operations (create/edit/cancel/join/quit/claim/complete) and the three
// listing audiences (open board, my rides, driver search).
//
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/ridepool/ridepool/services/rides RideUC
type RideUC interface {
	CreateRide(ctx context.Context, principal models.Principal, fields models.RideFields) (*models.Ride, error)
	UpdateRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, fields models.RideFields) (*models.Ride, error)
	CancelRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error)
	JoinRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, passengers int) (*models.RideShare, error)
	QuitRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) error
	ClaimRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error)
	CompleteRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error)

	GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error)
	OpenBoard(ctx context.Context, viewer *models.Principal, query models.BoardQuery) ([]*models.Ride, error)
	MyRides(ctx context.Context, principal models.Principal, query models.MyRidesQuery) ([]*models.Ride, error)
	DrivenRides(ctx context.Context, principal models.Principal, page int) ([]*models.Ride, error)
	DriverSearch(ctx context.Context, principal models.Principal, query models.DriverSearchQuery) ([]*models.Ride, error)
}
