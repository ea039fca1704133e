package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/rides"
	"github.com/ridepool/ridepool/services/rides/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profileRow(profile *models.RiderProfile) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "user_id", "full_name", "email", "phone", "is_driver", "created_at", "updated_at",
	}).AddRow(
		profile.ID, profile.UserID, profile.FullName, profile.Email, profile.Phone,
		profile.IsDriver, profile.CreatedAt, profile.UpdatedAt,
	)
}

func TestGetRiderProfile_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProfileRepository(&models.Config{}, db)

	want := &models.RiderProfile{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		FullName: "Jordan Rider",
		Email:    "jordan@example.com",
		Phone:    "+62811111111",
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM rider_profiles")).
		WithArgs(want.UserID).
		WillReturnRows(profileRow(want))

	got, err := repo.GetRiderProfile(context.Background(), want.UserID)
	assert.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, "jordan@example.com", got.Email)
}

func TestGetRiderProfile_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProfileRepository(&models.Config{}, db)

	userID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM rider_profiles")).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetRiderProfile(context.Background(), userID)
	assert.ErrorIs(t, err, rides.ErrProfileNotFound)
}

func TestGetDriverProfile_Success(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProfileRepository(&models.Config{}, db)

	profileID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM driver_profiles")).
		WithArgs(profileID).
		WillReturnRows(sqlmock.NewRows([]string{
			"profile_id", "capacity", "vehicle_type", "special_info", "created_at",
		}).AddRow(profileID, 4, "minivan", "", time.Now()))

	driver, err := repo.GetDriverProfile(context.Background(), profileID)
	assert.NoError(t, err)
	assert.Equal(t, 4, driver.Capacity)
	assert.Equal(t, "minivan", driver.VehicleType)
}

func TestGetDriverProfile_NotADriver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProfileRepository(&models.Config{}, db)

	profileID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("FROM driver_profiles")).
		WithArgs(profileID).
		WillReturnRows(sqlmock.NewRows([]string{"profile_id"}))

	_, err := repo.GetDriverProfile(context.Background(), profileID)
	assert.ErrorIs(t, err, rides.ErrDriverProfileNotFound)
}

func TestListSharerProfiles_JoinOrder(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewProfileRepository(&models.Config{}, db)

	rideID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"id", "user_id", "full_name", "email", "phone", "is_driver", "created_at", "updated_at",
	}).
		AddRow(uuid.New(), uuid.New(), "First Sharer", "first@example.com", "", false, time.Now(), time.Now()).
		AddRow(uuid.New(), uuid.New(), "Second Sharer", "second@example.com", "", false, time.Now(), time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("JOIN ride_shares")).
		WithArgs(rideID).
		WillReturnRows(rows)

	result, err := repo.ListSharerProfiles(context.Background(), rideID)
	assert.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "first@example.com", result[0].Email)
	assert.Equal(t, "second@example.com", result[1].Email)
}
