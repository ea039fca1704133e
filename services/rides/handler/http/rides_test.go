package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/rides"
	httpHandler "github.com/ridepool/ridepool/services/rides/handler/http"
	"github.com/ridepool/ridepool/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T) (*httpHandler.RidesHandler, *mocks.MockRideUC) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockUC := mocks.NewMockRideUC(ctrl)
	return httpHandler.NewRidesHandler(mockUC), mockUC
}

func newContext(t *testing.T, method, target, body string, principal *models.Principal) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if principal != nil {
		c.Set("principal", principal)
	}
	return c, rec
}

func TestCreateRide_Created(t *testing.T) {
	h, mockUC := setupHandler(t)

	principal := &models.Principal{UserID: uuid.New()}
	body := `{"destination":"Bandung","scheduled_at":"2026-09-15T08:30","owner_passengers":2,"can_shared":true}`

	mockUC.EXPECT().
		CreateRide(gomock.Any(), *principal, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Principal, fields models.RideFields) (*models.Ride, error) {
			assert.Equal(t, "Bandung", fields.Destination)
			assert.Equal(t, 2, fields.OwnerPassengers)
			assert.Equal(t, 2026, fields.ScheduledAt.Year())
			return &models.Ride{RideID: uuid.New(), Destination: fields.Destination, Status: models.RideStatusOpen}, nil
		})

	c, rec := newContext(t, http.MethodPost, "/rides", body, principal)

	err := h.CreateRide(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateRide_BadScheduledAt(t *testing.T) {
	h, _ := setupHandler(t)

	principal := &models.Principal{UserID: uuid.New()}
	body := `{"destination":"Bandung","scheduled_at":"next tuesday","owner_passengers":2}`

	c, rec := newContext(t, http.MethodPost, "/rides", body, principal)

	err := h.CreateRide(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJoinRide_Conflict(t *testing.T) {
	h, mockUC := setupHandler(t)

	principal := &models.Principal{UserID: uuid.New()}
	rideID := uuid.New()

	mockUC.EXPECT().
		JoinRide(gomock.Any(), *principal, rideID, 2).
		Return(nil, rides.ErrDuplicateShare)

	c, rec := newContext(t, http.MethodPost, "/rides/"+rideID.String()+"/join", `{"passengers":2}`, principal)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	err := h.JoinRide(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestClaimRide_Forbidden(t *testing.T) {
	h, mockUC := setupHandler(t)

	principal := &models.Principal{UserID: uuid.New()}
	rideID := uuid.New()

	mockUC.EXPECT().
		ClaimRide(gomock.Any(), *principal, rideID).
		Return(nil, rides.ErrNotDriver)

	c, rec := newContext(t, http.MethodPost, "/rides/"+rideID.String()+"/claim", "", principal)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	err := h.ClaimRide(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestGetRide_NotFound(t *testing.T) {
	h, mockUC := setupHandler(t)

	rideID := uuid.New()

	mockUC.EXPECT().
		GetRide(gomock.Any(), rideID).
		Return(nil, rides.ErrRideNotFound)

	c, rec := newContext(t, http.MethodGet, "/rides/"+rideID.String(), "", nil)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	err := h.GetRide(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRide_InvalidID(t *testing.T) {
	h, _ := setupHandler(t)

	c, rec := newContext(t, http.MethodGet, "/rides/not-a-uuid", "", nil)
	c.SetParamNames("rideID")
	c.SetParamValues("not-a-uuid")

	err := h.GetRide(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenBoard_AnonymousWithFilters(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		OpenBoard(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Principal, query models.BoardQuery) ([]*models.Ride, error) {
			assert.Equal(t, "Bandung", query.Destination)
			assert.Equal(t, 4, query.MaxTotalPeople)
			require.NotNil(t, query.ScheduledFrom)
			assert.Equal(t, 2026, query.ScheduledFrom.Year())
			assert.Equal(t, 2, query.Page)
			return []*models.Ride{}, nil
		})

	target := "/rides?destination=Bandung&max_total_people=4&scheduled_from=2026-09-15T08:30&page=2"
	c, rec := newContext(t, http.MethodGet, target, "", nil)

	err := h.OpenBoard(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOpenBoard_MalformedDateIgnored(t *testing.T) {
	h, mockUC := setupHandler(t)

	mockUC.EXPECT().
		OpenBoard(gomock.Any(), nil, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ *models.Principal, query models.BoardQuery) ([]*models.Ride, error) {
			assert.Nil(t, query.ScheduledFrom)
			return []*models.Ride{}, nil
		})

	c, rec := newContext(t, http.MethodGet, "/rides?scheduled_from=garbage", "", nil)

	err := h.OpenBoard(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMyRides_InvalidStatus(t *testing.T) {
	h, _ := setupHandler(t)

	principal := &models.Principal{UserID: uuid.New()}
	c, rec := newContext(t, http.MethodGet, "/rides/mine?status=LOST", "", principal)

	err := h.MyRides(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelRide_StateConflict(t *testing.T) {
	h, mockUC := setupHandler(t)

	principal := &models.Principal{UserID: uuid.New()}
	rideID := uuid.New()

	mockUC.EXPECT().
		CancelRide(gomock.Any(), *principal, rideID).
		Return(nil, rides.ErrRideState)

	c, rec := newContext(t, http.MethodPost, "/rides/"+rideID.String()+"/cancel", "", principal)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	err := h.CancelRide(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
}

func TestQuitRide_Success(t *testing.T) {
	h, mockUC := setupHandler(t)

	principal := &models.Principal{UserID: uuid.New()}
	rideID := uuid.New()

	mockUC.EXPECT().
		QuitRide(gomock.Any(), *principal, rideID).
		Return(nil)

	c, rec := newContext(t, http.MethodDelete, "/rides/"+rideID.String()+"/join", "", principal)
	c.SetParamNames("rideID")
	c.SetParamValues(rideID.String())

	err := h.QuitRide(c)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
