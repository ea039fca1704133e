package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/rides"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint
// violation, raised on a duplicate (ride, sharer) share insert.
const pgUniqueViolation = "23505"

// rideColumns is the annotated select list shared by every ride read.
// total_people is computed, never stored.
const rideColumns = `
	r.ride_id, r.owner_id, r.destination, r.scheduled_at,
	r.owner_passengers, r.can_shared,
	COALESCE(r.vehicle_type_request, '') AS vehicle_type_request,
	COALESCE(r.special_request, '') AS special_request,
	r.driver_id, r.status, r.created_at, r.updated_at,
	r.owner_passengers + COALESCE(SUM(s.passengers), 0) AS total_people`

const rideGroupBy = `
	GROUP BY r.ride_id, r.owner_id, r.destination, r.scheduled_at,
		r.owner_passengers, r.can_shared, r.vehicle_type_request,
		r.special_request, r.driver_id, r.status, r.created_at, r.updated_at`

type RideRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewRideRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *RideRepo {
	return &RideRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRide inserts a new ride and returns it with timestamps filled in.
func (r *RideRepo) CreateRide(ctx context.Context, ride *models.Ride) (*models.Ride, error) {
	query := `
		INSERT INTO rides (
			ride_id, owner_id, destination, scheduled_at,
			owner_passengers, can_shared, vehicle_type_request, special_request,
			status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), NULLIF($8, ''), $9, $10, $10)
	`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(
		ctx,
		query,
		ride.RideID,
		ride.OwnerID,
		ride.Destination,
		ride.ScheduledAt,
		ride.OwnerPassengers,
		ride.CanShared,
		ride.VehicleTypeRequest,
		ride.SpecialRequest,
		ride.Status,
		now,
	)
	if err != nil {
		return nil, err
	}

	ride.CreatedAt = now
	ride.UpdatedAt = now
	ride.TotalPeople = ride.OwnerPassengers
	return ride, nil
}

// GetRide retrieves a single ride with its annotated passenger total.
func (r *RideRepo) GetRide(ctx context.Context, rideID uuid.UUID) (*models.Ride, error) {
	query := `
		SELECT` + rideColumns + `
		FROM rides r
		LEFT JOIN ride_shares s ON s.ride_id = r.ride_id
		WHERE r.ride_id = $1` + rideGroupBy

	ride := &models.Ride{}
	if err := r.db.GetContext(ctx, ride, query, rideID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrRideNotFound
		}
		return nil, err
	}

	return ride, nil
}

// UpdateRide writes the editable ride fields, guarded on the ride still being
// OPEN so a concurrent claim or cancellation is never overwritten.
func (r *RideRepo) UpdateRide(ctx context.Context, ride *models.Ride) error {
	query := `
		UPDATE rides
		SET destination = $1, scheduled_at = $2, owner_passengers = $3,
			can_shared = $4, vehicle_type_request = NULLIF($5, ''),
			special_request = NULLIF($6, ''), updated_at = $7
		WHERE ride_id = $8 AND status = $9
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		ride.Destination,
		ride.ScheduledAt,
		ride.OwnerPassengers,
		ride.CanShared,
		ride.VehicleTypeRequest,
		ride.SpecialRequest,
		time.Now().UTC(),
		ride.RideID,
		models.RideStatusOpen,
	)
	if err != nil {
		return err
	}

	return r.checkGuardedWrite(ctx, result, ride.RideID)
}

// UpdateRideStatus transitions a ride from one status to another. The
// transition only applies when the stored status still matches from.
func (r *RideRepo) UpdateRideStatus(ctx context.Context, rideID uuid.UUID, from, to models.RideStatus) error {
	query := `UPDATE rides SET status = $1, updated_at = $2 WHERE ride_id = $3 AND status = $4`

	result, err := r.db.ExecContext(ctx, query, to, time.Now().UTC(), rideID, from)
	if err != nil {
		return err
	}

	return r.checkGuardedWrite(ctx, result, rideID)
}

// AssignDriver sets the driver and confirms the ride in a single conditional
// write. Of two racing claims exactly one matches the OPEN guard.
func (r *RideRepo) AssignDriver(ctx context.Context, rideID, driverID uuid.UUID) error {
	query := `
		UPDATE rides
		SET driver_id = $1, status = $2, updated_at = $3
		WHERE ride_id = $4 AND status = $5
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		driverID,
		models.RideStatusConfirmed,
		time.Now().UTC(),
		rideID,
		models.RideStatusOpen,
	)
	if err != nil {
		return err
	}

	return r.checkGuardedWrite(ctx, result, rideID)
}

// checkGuardedWrite distinguishes "ride missing" from "guard missed" after a
// conditional write touched zero rows.
func (r *RideRepo) checkGuardedWrite(ctx context.Context, result sql.Result, rideID uuid.UUID) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM rides WHERE ride_id = $1)`, rideID); err != nil {
		return err
	}
	if !exists {
		return rides.ErrRideNotFound
	}
	return rides.ErrRideState
}

// ListRides evaluates a fully assembled filter in a single query, so listings
// are pure functions of the filter and pagination offsets stay stable.
func (r *RideRepo) ListRides(ctx context.Context, filter models.RideFilter) ([]*models.Ride, error) {
	var conditions []string
	var having []string
	var args []interface{}

	arg := func(value interface{}) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(filter.Statuses) > 0 {
		placeholders := make([]string, 0, len(filter.Statuses))
		for _, status := range filter.Statuses {
			placeholders = append(placeholders, arg(status))
		}
		conditions = append(conditions, fmt.Sprintf("r.status IN (%s)", strings.Join(placeholders, ", ")))
	}
	if filter.ExcludeStatus != "" {
		conditions = append(conditions, fmt.Sprintf("r.status <> %s", arg(filter.ExcludeStatus)))
	}
	if filter.OwnerID != nil {
		conditions = append(conditions, fmt.Sprintf("r.owner_id = %s", arg(*filter.OwnerID)))
	}
	if filter.ExcludeOwnerID != nil {
		conditions = append(conditions, fmt.Sprintf("r.owner_id <> %s", arg(*filter.ExcludeOwnerID)))
	}
	if filter.SharerID != nil {
		conditions = append(conditions, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM ride_shares js WHERE js.ride_id = r.ride_id AND js.sharer_id = %s)",
			arg(*filter.SharerID)))
	}
	if filter.ExcludeSharerID != nil {
		conditions = append(conditions, fmt.Sprintf(
			"NOT EXISTS (SELECT 1 FROM ride_shares js WHERE js.ride_id = r.ride_id AND js.sharer_id = %s)",
			arg(*filter.ExcludeSharerID)))
	}
	if filter.DriverID != nil {
		conditions = append(conditions, fmt.Sprintf("r.driver_id = %s", arg(*filter.DriverID)))
	}
	if filter.DestinationLike != "" {
		conditions = append(conditions, fmt.Sprintf("r.destination ILIKE '%%' || %s || '%%'", arg(filter.DestinationLike)))
	}
	if filter.ScheduledFrom != nil {
		conditions = append(conditions, fmt.Sprintf("r.scheduled_at >= %s", arg(*filter.ScheduledFrom)))
	}
	if filter.ScheduledTo != nil {
		conditions = append(conditions, fmt.Sprintf("r.scheduled_at <= %s", arg(*filter.ScheduledTo)))
	}
	if filter.SpecialRequest != "" {
		conditions = append(conditions, fmt.Sprintf("r.special_request = %s", arg(filter.SpecialRequest)))
	}
	if filter.CanShared != nil {
		conditions = append(conditions, fmt.Sprintf("r.can_shared = %s", arg(*filter.CanShared)))
	}
	if filter.MaxTotalPeople > 0 {
		having = append(having, fmt.Sprintf(
			"r.owner_passengers + COALESCE(SUM(s.passengers), 0) <= %s", arg(filter.MaxTotalPeople)))
	}

	query := `SELECT` + rideColumns + `
		FROM rides r
		LEFT JOIN ride_shares s ON s.ride_id = r.ride_id`
	if len(conditions) > 0 {
		query += "\n\t\tWHERE " + strings.Join(conditions, " AND ")
	}
	query += rideGroupBy
	if len(having) > 0 {
		query += "\n\t\tHAVING " + strings.Join(having, " AND ")
	}

	switch filter.OrderBy {
	case models.OrderByScheduledAt:
		query += "\n\t\tORDER BY r.scheduled_at DESC, r.created_at DESC, r.ride_id"
	default:
		query += "\n\t\tORDER BY r.created_at DESC, r.ride_id"
	}

	if filter.Limit > 0 {
		query += fmt.Sprintf("\n\t\tLIMIT %s", arg(filter.Limit))
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf("\n\t\tOFFSET %s", arg(filter.Offset))
	}

	result := []*models.Ride{}
	if err := r.db.SelectContext(ctx, &result, query, args...); err != nil {
		return nil, err
	}

	return result, nil
}

// CreateRideShare inserts a share, translating the uniqueness violation on
// (ride, sharer) into ErrDuplicateShare.
func (r *RideRepo) CreateRideShare(ctx context.Context, share *models.RideShare) (*models.RideShare, error) {
	query := `
		INSERT INTO ride_shares (share_id, ride_id, sharer_id, passengers, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	now := time.Now().UTC()
	_, err := r.db.ExecContext(ctx, query, share.ShareID, share.RideID, share.SharerID, share.Passengers, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, rides.ErrDuplicateShare
		}
		return nil, err
	}

	share.CreatedAt = now
	return share, nil
}

// GetRideShare retrieves the share a rider holds on a ride, if any.
func (r *RideRepo) GetRideShare(ctx context.Context, rideID, sharerID uuid.UUID) (*models.RideShare, error) {
	query := `
		SELECT share_id, ride_id, sharer_id, passengers, created_at
		FROM ride_shares
		WHERE ride_id = $1 AND sharer_id = $2
	`

	share := &models.RideShare{}
	if err := r.db.GetContext(ctx, share, query, rideID, sharerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rides.ErrShareNotFound
		}
		return nil, err
	}

	return share, nil
}

// DeleteRideShare removes a rider's share from a ride.
func (r *RideRepo) DeleteRideShare(ctx context.Context, rideID, sharerID uuid.UUID) error {
	query := `DELETE FROM ride_shares WHERE ride_id = $1 AND sharer_id = $2`

	result, err := r.db.ExecContext(ctx, query, rideID, sharerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return rides.ErrShareNotFound
	}
	return nil
}

// ListRideShares lists all shares on a ride, oldest first.
func (r *RideRepo) ListRideShares(ctx context.Context, rideID uuid.UUID) ([]*models.RideShare, error) {
	query := `
		SELECT share_id, ride_id, sharer_id, passengers, created_at
		FROM ride_shares
		WHERE ride_id = $1
		ORDER BY created_at
	`

	result := []*models.RideShare{}
	if err := r.db.SelectContext(ctx, &result, query, rideID); err != nil {
		return nil, err
	}

	return result, nil
}
