package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/rides"
	"github.com/ridepool/ridepool/services/rides/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func rideRows(ride *models.Ride) *sqlmock.Rows {
	var driverID interface{}
	if ride.DriverID != nil {
		driverID = *ride.DriverID
	}
	return sqlmock.NewRows([]string{
		"ride_id", "owner_id", "destination", "scheduled_at",
		"owner_passengers", "can_shared", "vehicle_type_request", "special_request",
		"driver_id", "status", "created_at", "updated_at", "total_people",
	}).AddRow(
		ride.RideID, ride.OwnerID, ride.Destination, ride.ScheduledAt,
		ride.OwnerPassengers, ride.CanShared, ride.VehicleTypeRequest, ride.SpecialRequest,
		driverID, ride.Status, ride.CreatedAt, ride.UpdatedAt, ride.TotalPeople,
	)
}

func TestCreateRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	ride := &models.Ride{
		RideID:          uuid.New(),
		OwnerID:         uuid.New(),
		Destination:     "Bandung",
		ScheduledAt:     time.Date(2026, 9, 15, 8, 30, 0, 0, time.UTC),
		OwnerPassengers: 2,
		CanShared:       true,
		Status:          models.RideStatusOpen,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO rides")).
		WithArgs(ride.RideID, ride.OwnerID, ride.Destination, ride.ScheduledAt,
			ride.OwnerPassengers, ride.CanShared, "", "", ride.Status, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.CreateRide(context.Background(), ride)
	assert.NoError(t, err)
	assert.Equal(t, 2, created.TotalPeople)
	assert.False(t, created.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRide_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	want := &models.Ride{
		RideID:          uuid.New(),
		OwnerID:         uuid.New(),
		Destination:     "Surabaya",
		OwnerPassengers: 2,
		Status:          models.RideStatusOpen,
		TotalPeople:     6,
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM rides r")).
		WithArgs(want.RideID).
		WillReturnRows(rideRows(want))

	got, err := repo.GetRide(context.Background(), want.RideID)
	assert.NoError(t, err)
	assert.Equal(t, want.RideID, got.RideID)
	assert.Equal(t, 6, got.TotalPeople)
	assert.Nil(t, got.DriverID)
}

func TestGetRide_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM rides r")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id"}))

	_, err := repo.GetRide(context.Background(), rideID)
	assert.ErrorIs(t, err, rides.ErrRideNotFound)
}

func TestUpdateRide_GuardMissed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	ride := &models.Ride{RideID: uuid.New(), Destination: "Bandung"}

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// Ride exists but is no longer OPEN.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(ride.RideID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.UpdateRide(context.Background(), ride)
	assert.ErrorIs(t, err, rides.ErrRideState)
}

func TestUpdateRideStatus_RideMissing(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	err := repo.UpdateRideStatus(context.Background(), rideID, models.RideStatusOpen, models.RideStatusCancelled)
	assert.ErrorIs(t, err, rides.ErrRideNotFound)
}

func TestAssignDriver_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	driverID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WithArgs(driverID, models.RideStatusConfirmed, sqlmock.AnyArg(), rideID, models.RideStatusOpen).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.AssignDriver(context.Background(), rideID, driverID)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssignDriver_LostRace(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE rides")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(rideID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	err := repo.AssignDriver(context.Background(), rideID, uuid.New())
	assert.ErrorIs(t, err, rides.ErrRideState)
}

func TestListRides_StatusAndSharerExclusion(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	sharerID := uuid.New()
	want := &models.Ride{RideID: uuid.New(), OwnerID: uuid.New(), Status: models.RideStatusOpen, OwnerPassengers: 1, TotalPeople: 1}

	mock.ExpectQuery(regexp.QuoteMeta("NOT EXISTS")).
		WithArgs(models.RideStatusOpen, sharerID, 5).
		WillReturnRows(rideRows(want))

	filter := models.RideFilter{
		Statuses:        []models.RideStatus{models.RideStatusOpen},
		ExcludeSharerID: &sharerID,
		OrderBy:         models.OrderByCreatedAt,
		Limit:           5,
	}

	result, err := repo.ListRides(context.Background(), filter)
	assert.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, want.RideID, result[0].RideID)
}

func TestListRides_Empty(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM rides r")).
		WillReturnRows(sqlmock.NewRows([]string{"ride_id"}))

	result, err := repo.ListRides(context.Background(), models.RideFilter{})
	assert.NoError(t, err)
	assert.Empty(t, result)
}

func TestCreateRideShare_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	share := &models.RideShare{
		ShareID:    uuid.New(),
		RideID:     uuid.New(),
		SharerID:   uuid.New(),
		Passengers: 2,
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_shares")).
		WithArgs(share.ShareID, share.RideID, share.SharerID, share.Passengers, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	created, err := repo.CreateRideShare(context.Background(), share)
	assert.NoError(t, err)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateRideShare_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	share := &models.RideShare{ShareID: uuid.New(), RideID: uuid.New(), SharerID: uuid.New(), Passengers: 1}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ride_shares")).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "ride_shares_ride_id_sharer_id_key"})

	_, err := repo.CreateRideShare(context.Background(), share)
	assert.ErrorIs(t, err, rides.ErrDuplicateShare)
}

func TestGetRideShare_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	sharerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM ride_shares")).
		WithArgs(rideID, sharerID).
		WillReturnRows(sqlmock.NewRows([]string{"share_id"}))

	_, err := repo.GetRideShare(context.Background(), rideID, sharerID)
	assert.ErrorIs(t, err, rides.ErrShareNotFound)
}

func TestDeleteRideShare_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ride_shares")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteRideShare(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, rides.ErrShareNotFound)
}

func TestDeleteRideShare_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRideRepository(&models.Config{}, db)

	rideID := uuid.New()
	sharerID := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM ride_shares")).
		WithArgs(rideID, sharerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.DeleteRideShare(context.Background(), rideID, sharerID)
	assert.NoError(t, err)
}
