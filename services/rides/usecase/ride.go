package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/rides"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg         *models.Config
	ridesRepo   rides.RideRepo
	profileRepo rides.ProfileRepo
	notifyGW    rides.NotifyGW
	boardCache  rides.BoardCache
}

// NewRideUC creates a new ride use case. boardCache may be nil to disable
// board page caching.
func NewRideUC(
	cfg *models.Config,
	rideRepo rides.RideRepo,
	profileRepo rides.ProfileRepo,
	notifyGW rides.NotifyGW,
	boardCache rides.BoardCache,
) (rides.RideUC, error) {
	return &rideUC{
		cfg:         cfg,
		ridesRepo:   rideRepo,
		profileRepo: profileRepo,
		notifyGW:    notifyGW,
		boardCache:  boardCache,
	}, nil
}

// validateRideFields checks the caller-supplied fields shared by create and
// edit. The whole edit is rejected on failure; nothing is partially applied.
func validateRideFields(fields models.RideFields) error {
	if strings.TrimSpace(fields.Destination) == "" {
		return fmt.Errorf("%w: destination is required", rides.ErrValidation)
	}
	if fields.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduled time is required", rides.ErrValidation)
	}
	if fields.OwnerPassengers < 1 {
		return fmt.Errorf("%w: owner passengers must be at least 1", rides.ErrValidation)
	}
	return nil
}

// CreateRide creates a new ride owned by the principal's rider profile. New
// rides always start OPEN; the shareability flag never affects the initial
// status.
func (uc *rideUC) CreateRide(ctx context.Context, principal models.Principal, fields models.RideFields) (*models.Ride, error) {
	profile, err := uc.profileRepo.GetRiderProfile(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	if err := validateRideFields(fields); err != nil {
		return nil, err
	}

	ride := &models.Ride{
		RideID:             uuid.New(),
		OwnerID:            profile.ID,
		Destination:        fields.Destination,
		ScheduledAt:        fields.ScheduledAt,
		OwnerPassengers:    fields.OwnerPassengers,
		CanShared:          fields.CanShared,
		VehicleTypeRequest: fields.VehicleTypeRequest,
		SpecialRequest:     fields.SpecialRequest,
		Status:             models.RideStatusOpen,
		TotalPeople:        fields.OwnerPassengers,
	}

	created, err := uc.ridesRepo.CreateRide(ctx, ride)
	if err != nil {
		return nil, fmt.Errorf("failed to create ride: %w", err)
	}

	logger.Info("Created ride",
		logger.String("ride_id", created.RideID.String()),
		logger.String("owner_id", created.OwnerID.String()),
		logger.String("destination", created.Destination))

	return created, nil
}

// UpdateRide applies an edit to a ride the principal owns. Edits are only
// allowed while the ride is OPEN.
func (uc *rideUC) UpdateRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, fields models.RideFields) (*models.Ride, error) {
	profile, err := uc.profileRepo.GetRiderProfile(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.OwnerID != profile.ID {
		return nil, rides.ErrNotOwner
	}
	if ride.Status != models.RideStatusOpen {
		return nil, fmt.Errorf("%w: cannot edit a %s ride", rides.ErrRideState, ride.Status)
	}

	if err := validateRideFields(fields); err != nil {
		return nil, err
	}

	ride.Destination = fields.Destination
	ride.ScheduledAt = fields.ScheduledAt
	ride.OwnerPassengers = fields.OwnerPassengers
	ride.CanShared = fields.CanShared
	ride.VehicleTypeRequest = fields.VehicleTypeRequest
	ride.SpecialRequest = fields.SpecialRequest

	// The write re-checks status OPEN against the stored row so a concurrent
	// claim cannot be overwritten.
	if err := uc.ridesRepo.UpdateRide(ctx, ride); err != nil {
		return nil, err
	}

	return ride, nil
}

// CancelRide cancels an OPEN ride the principal owns.
func (uc *rideUC) CancelRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error) {
	profile, err := uc.profileRepo.GetRiderProfile(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}

	if ride.OwnerID != profile.ID {
		return nil, rides.ErrNotOwner
	}
	if ride.Status != models.RideStatusOpen {
		return nil, fmt.Errorf("%w: cannot cancel a %s ride", rides.ErrRideState, ride.Status)
	}

	if err := uc.ridesRepo.UpdateRideStatus(ctx, rideID, models.RideStatusOpen, models.RideStatusCancelled); err != nil {
		return nil, err
	}

	ride.Status = models.RideStatusCancelled
	return ride, nil
}

// JoinRide creates a ride share for the principal on an open, shareable ride.
// The preconditions are checked in a fixed order and each failure
// short-circuits the rest; a duplicate-join race that passes the read check
// still resolves to exactly one share through the store's uniqueness
// constraint, reported as ErrDuplicateShare.
func (uc *rideUC) JoinRide(ctx context.Context, principal models.Principal, rideID uuid.UUID, passengers int) (*models.RideShare, error) {
	if passengers < 1 {
		return nil, fmt.Errorf("%w: passengers must be at least 1", rides.ErrValidation)
	}

	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusOpen || !ride.CanShared {
		return nil, fmt.Errorf("%w: ride is not open for sharing", rides.ErrRideState)
	}

	profile, err := uc.profileRepo.GetRiderProfile(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	if ride.OwnerID == profile.ID {
		return nil, rides.ErrSelfJoin
	}

	driver, err := uc.profileRepo.GetDriverProfile(ctx, profile.ID)
	switch {
	case err == nil:
		if ride.DriverID != nil && *ride.DriverID == driver.ProfileID {
			return nil, rides.ErrDriverJoin
		}
	case errors.Is(err, rides.ErrDriverProfileNotFound):
		// Not a driver; nothing to check.
	default:
		return nil, err
	}

	if _, err := uc.ridesRepo.GetRideShare(ctx, rideID, profile.ID); err == nil {
		return nil, rides.ErrDuplicateShare
	} else if !errors.Is(err, rides.ErrShareNotFound) {
		return nil, err
	}

	share := &models.RideShare{
		ShareID:    uuid.New(),
		RideID:     rideID,
		SharerID:   profile.ID,
		Passengers: passengers,
	}

	created, err := uc.ridesRepo.CreateRideShare(ctx, share)
	if err != nil {
		return nil, err
	}

	logger.Info("Rider joined ride",
		logger.String("ride_id", rideID.String()),
		logger.String("sharer_id", profile.ID.String()),
		logger.Int("passengers", passengers))

	return created, nil
}

// QuitRide deletes the principal's ride share for the given ride.
func (uc *rideUC) QuitRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) error {
	profile, err := uc.profileRepo.GetRiderProfile(ctx, principal.UserID)
	if err != nil {
		return err
	}

	return uc.ridesRepo.DeleteRideShare(ctx, rideID, profile.ID)
}

// ClaimRide assigns the principal's driver profile to an OPEN ride and
// confirms it. Checks run in order: driver role, ride state, capacity,
// vehicle type, special request. The final write is conditional on the ride
// still being OPEN, so of two concurrent claims exactly one wins and the
// loser observes ErrRideState.
func (uc *rideUC) ClaimRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error) {
	profile, err := uc.profileRepo.GetRiderProfile(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	driver, err := uc.profileRepo.GetDriverProfile(ctx, profile.ID)
	if err != nil {
		if errors.Is(err, rides.ErrDriverProfileNotFound) {
			return nil, rides.ErrNotDriver
		}
		return nil, err
	}

	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusOpen {
		return nil, fmt.Errorf("%w: cannot claim a %s ride", rides.ErrRideState, ride.Status)
	}

	if ride.TotalPeople > driver.Capacity {
		return nil, fmt.Errorf("%w: ride has %d passengers, capacity is %d",
			rides.ErrCapacityExceeded, ride.TotalPeople, driver.Capacity)
	}
	if ride.VehicleTypeRequest != "" && ride.VehicleTypeRequest != driver.VehicleType {
		return nil, rides.ErrVehicleMismatch
	}
	if ride.SpecialRequest != "" && ride.SpecialRequest != driver.SpecialInfo {
		return nil, rides.ErrSpecialRequestMismatch
	}

	if err := uc.ridesRepo.AssignDriver(ctx, rideID, driver.ProfileID); err != nil {
		return nil, err
	}

	driverID := driver.ProfileID
	ride.DriverID = &driverID
	ride.Status = models.RideStatusConfirmed

	logger.Info("Ride claimed",
		logger.String("ride_id", rideID.String()),
		logger.String("driver_id", driver.ProfileID.String()))

	// Notification is best-effort; a failed publish never rolls back the claim.
	if err := uc.notifyClaim(ctx, ride, profile, driver); err != nil {
		logger.Warn("Failed to publish claim notification",
			logger.String("ride_id", rideID.String()),
			logger.Err(err))
	}

	return ride, nil
}

// notifyClaim gathers the owner, sharer and driver contact details and hands
// them to the notification gateway.
func (uc *rideUC) notifyClaim(ctx context.Context, ride *models.Ride, driverProfile *models.RiderProfile, driver *models.DriverProfile) error {
	owner, err := uc.profileRepo.GetRiderProfileByID(ctx, ride.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to resolve ride owner: %w", err)
	}

	sharers, err := uc.profileRepo.ListSharerProfiles(ctx, ride.RideID)
	if err != nil {
		return fmt.Errorf("failed to resolve ride sharers: %w", err)
	}

	recipients := make([]string, 0, len(sharers)+1)
	recipients = append(recipients, owner.Email)
	for _, sharer := range sharers {
		recipients = append(recipients, sharer.Email)
	}

	notification := &models.ClaimNotification{
		RideID:              ride.RideID,
		Destination:         ride.Destination,
		ScheduledAt:         ride.ScheduledAt,
		OwnerName:           owner.FullName,
		OwnerEmail:          owner.Email,
		OwnerPhone:          owner.Phone,
		DriverName:          driverProfile.FullName,
		DriverEmail:         driverProfile.Email,
		DriverVehicle:       driver.VehicleType,
		PassengerRecipients: recipients,
	}

	return uc.notifyGW.PublishRideClaimed(ctx, notification)
}

// CompleteRide marks a CONFIRMED ride as COMPLETED. Only the assigned driver
// may complete it.
func (uc *rideUC) CompleteRide(ctx context.Context, principal models.Principal, rideID uuid.UUID) (*models.Ride, error) {
	profile, err := uc.profileRepo.GetRiderProfile(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}
	driver, err := uc.profileRepo.GetDriverProfile(ctx, profile.ID)
	if err != nil {
		if errors.Is(err, rides.ErrDriverProfileNotFound) {
			return nil, rides.ErrNotDriver
		}
		return nil, err
	}

	ride, err := uc.ridesRepo.GetRide(ctx, rideID)
	if err != nil {
		return nil, err
	}
	if ride.Status != models.RideStatusConfirmed {
		return nil, fmt.Errorf("%w: cannot complete a %s ride", rides.ErrRideState, ride.Status)
	}
	if ride.DriverID == nil || *ride.DriverID != driver.ProfileID {
		return nil, rides.ErrNotAssignedDriver
	}

	if err := uc.ridesRepo.UpdateRideStatus(ctx, rideID, models.RideStatusConfirmed, models.RideStatusCompleted); err != nil {
		return nil, err
	}

	ride.Status = models.RideStatusCompleted

	logger.Info("Ride completed",
		logger.String("ride_id", rideID.String()),
		logger.String("driver_id", driver.ProfileID.String()))

	return ride, nil
}

// GetRide returns a single ride with its annotated passenger total.
func (uc *rideUC) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	return uc.ridesRepo.GetRide(ctx, rideID)
}
