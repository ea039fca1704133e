package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/rides"
)

type ProfileRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewProfileRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *ProfileRepo {
	return &ProfileRepo{
		cfg: cfg,
		db:  db,
	}
}

const riderProfileColumns = `
	id, user_id, full_name, email, COALESCE(phone, '') AS phone,
	is_driver, created_at, updated_at`

// GetRiderProfile resolves an authenticated user to their rider profile.
func (r *ProfileRepo) GetRiderProfile(ctx context.Context, userID uuid.UUID) (*models.RiderProfile, error) {
	query := `SELECT` + riderProfileColumns + ` FROM rider_profiles WHERE user_id = $1`

	profile := &models.RiderProfile{}
	if err := r.db.GetContext(ctx, profile, query, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrProfileNotFound
		}
		return nil, err
	}

	return profile, nil
}

// GetRiderProfileByID retrieves a rider profile by its primary key, used to
// resolve ride owners and sharers for notifications.
func (r *ProfileRepo) GetRiderProfileByID(ctx context.Context, profileID uuid.UUID) (*models.RiderProfile, error) {
	query := `SELECT` + riderProfileColumns + ` FROM rider_profiles WHERE id = $1`

	profile := &models.RiderProfile{}
	if err := r.db.GetContext(ctx, profile, query, profileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrProfileNotFound
		}
		return nil, err
	}

	return profile, nil
}

// GetDriverProfile retrieves the driver extension of a rider profile. Most
// riders have none; that is reported as ErrDriverProfileNotFound for the
// caller to branch on.
func (r *ProfileRepo) GetDriverProfile(ctx context.Context, profileID uuid.UUID) (*models.DriverProfile, error) {
	query := `
		SELECT profile_id, capacity, COALESCE(vehicle_type, '') AS vehicle_type,
			COALESCE(special_info, '') AS special_info, created_at
		FROM driver_profiles
		WHERE profile_id = $1
	`

	driver := &models.DriverProfile{}
	if err := r.db.GetContext(ctx, driver, query, profileID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrDriverProfileNotFound
		}
		return nil, err
	}

	return driver, nil
}

// ListSharerProfiles lists the rider profiles of everyone sharing a ride,
// in join order.
func (r *ProfileRepo) ListSharerProfiles(ctx context.Context, rideID uuid.UUID) ([]*models.RiderProfile, error) {
	query := `
		SELECT p.id, p.user_id, p.full_name, p.email, COALESCE(p.phone, '') AS phone,
			p.is_driver, p.created_at, p.updated_at
		FROM rider_profiles p
		JOIN ride_shares s ON s.sharer_id = p.id
		WHERE s.ride_id = $1
		ORDER BY s.created_at
	`

	result := []*models.RiderProfile{}
	if err := r.db.SelectContext(ctx, &result, query, rideID); err != nil {
		return nil, err
	}

	return result, nil
}
