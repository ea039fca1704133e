package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/middleware"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/internal/utils"
	"github.com/ridepool/ridepool/services/rides"
)

// datetimeLocalFormat matches the value emitted by HTML datetime-local
// inputs, the format mobile and web clients send.
const datetimeLocalFormat = "2006-01-02T15:04"

// RidesHandler handles HTTP requests for ride operations
type RidesHandler struct {
	rideUC rides.RideUC
}

// NewRidesHandler creates a new ride HTTP handler
func NewRidesHandler(rideUC rides.RideUC) *RidesHandler {
	return &RidesHandler{
		rideUC: rideUC,
	}
}

// rideRequest is the payload for creating and editing rides.
type rideRequest struct {
	Destination        string `json:"destination"`
	ScheduledAt        string `json:"scheduled_at"`
	OwnerPassengers    int    `json:"owner_passengers"`
	CanShared          bool   `json:"can_shared"`
	VehicleTypeRequest string `json:"vehicle_type_request"`
	SpecialRequest     string `json:"special_request"`
}

// joinRequest is the payload for joining a ride.
type joinRequest struct {
	Passengers int `json:"passengers"`
}

func (req rideRequest) toFields() (models.RideFields, error) {
	fields := models.RideFields{
		Destination:        req.Destination,
		OwnerPassengers:    req.OwnerPassengers,
		CanShared:          req.CanShared,
		VehicleTypeRequest: req.VehicleTypeRequest,
		SpecialRequest:     req.SpecialRequest,
	}

	if req.ScheduledAt != "" {
		scheduledAt, err := parseDatetime(req.ScheduledAt)
		if err != nil {
			return fields, err
		}
		fields.ScheduledAt = scheduledAt
	}

	return fields, nil
}

func parseDatetime(value string) (time.Time, error) {
	if t, err := time.Parse(datetimeLocalFormat, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

// CreateRide handles POST /rides
func (h *RidesHandler) CreateRide(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	var req rideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	fields, err := req.toFields()
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid scheduled_at: "+err.Error())
	}

	ride, err := h.rideUC.CreateRide(c.Request().Context(), *principal, fields)
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Ride created successfully", ride)
}

// UpdateRide handles PUT /rides/:rideID
func (h *RidesHandler) UpdateRide(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req rideRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	fields, err := req.toFields()
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid scheduled_at: "+err.Error())
	}

	ride, err := h.rideUC.UpdateRide(c.Request().Context(), *principal, rideID, fields)
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride updated successfully", ride)
}

// CancelRide handles POST /rides/:rideID/cancel
func (h *RidesHandler) CancelRide(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	ride, err := h.rideUC.CancelRide(c.Request().Context(), *principal, rideID)
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride cancelled successfully", ride)
}

// JoinRide handles POST /rides/:rideID/join
func (h *RidesHandler) JoinRide(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req joinRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	share, err := h.rideUC.JoinRide(c.Request().Context(), *principal, rideID, req.Passengers)
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Joined ride successfully", share)
}

// QuitRide handles DELETE /rides/:rideID/join
func (h *RidesHandler) QuitRide(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	if err := h.rideUC.QuitRide(c.Request().Context(), *principal, rideID); err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Left ride successfully", nil)
}

// ClaimRide handles POST /rides/:rideID/claim
func (h *RidesHandler) ClaimRide(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	ride, err := h.rideUC.ClaimRide(c.Request().Context(), *principal, rideID)
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride claimed successfully", ride)
}

// CompleteRide handles POST /rides/:rideID/complete
func (h *RidesHandler) CompleteRide(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	ride, err := h.rideUC.CompleteRide(c.Request().Context(), *principal, rideID)
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride completed successfully", ride)
}

// GetRide handles GET /rides/:rideID
func (h *RidesHandler) GetRide(c echo.Context) error {
	rideID, err := parseRideID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	ride, err := h.rideUC.GetRide(c.Request().Context(), rideID)
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ride retrieved successfully", ride)
}

// OpenBoard handles GET /rides. The viewer may be anonymous; filter
// parameters with malformed values are ignored rather than rejected.
func (h *RidesHandler) OpenBoard(c echo.Context) error {
	viewer := middleware.PrincipalFromContext(c)

	query := models.BoardQuery{
		Destination:    c.QueryParam("destination"),
		SpecialRequest: c.QueryParam("special_request"),
		Page:           parsePage(c),
	}
	if from, err := parseDatetime(c.QueryParam("scheduled_from")); err == nil {
		query.ScheduledFrom = &from
	}
	if to, err := parseDatetime(c.QueryParam("scheduled_to")); err == nil {
		query.ScheduledTo = &to
	}
	if seats, err := strconv.Atoi(c.QueryParam("max_total_people")); err == nil && seats > 0 {
		query.MaxTotalPeople = seats
	}

	result, err := h.rideUC.OpenBoard(c.Request().Context(), viewer, query)
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", result)
}

// MyRides handles GET /rides/mine
func (h *RidesHandler) MyRides(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	query := models.MyRidesQuery{Page: parsePage(c)}
	if raw := c.QueryParam("status"); raw != "" {
		status := models.RideStatus(raw)
		if !models.ValidRideStatus(status) {
			return utils.BadRequestResponse(c, "Invalid status filter")
		}
		query.Status = &status
	}

	result, err := h.rideUC.MyRides(c.Request().Context(), *principal, query)
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", result)
}

// DrivenRides handles GET /rides/driven
func (h *RidesHandler) DrivenRides(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	result, err := h.rideUC.DrivenRides(c.Request().Context(), *principal, parsePage(c))
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", result)
}

// DriverSearch handles GET /rides/search
func (h *RidesHandler) DriverSearch(c echo.Context) error {
	principal := middleware.PrincipalFromContext(c)

	query := models.DriverSearchQuery{
		Destination: c.QueryParam("destination"),
		Page:        parsePage(c),
	}

	result, err := h.rideUC.DriverSearch(c.Request().Context(), *principal, query)
	if err != nil {
		return h.respondRideError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Rides retrieved successfully", result)
}

func parseRideID(c echo.Context) (uuid.UUID, error) {
	rideID, err := uuid.Parse(c.Param("rideID"))
	if err != nil {
		return uuid.Nil, errors.New("Invalid ride ID")
	}
	return rideID, nil
}

func parsePage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// respondRideError maps domain errors to HTTP statuses. Unknown errors are
// logged and reported as 500 without leaking internals.
func (h *RidesHandler) respondRideError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, rides.ErrValidation):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, rides.ErrRideNotFound),
		errors.Is(err, rides.ErrShareNotFound),
		errors.Is(err, rides.ErrProfileNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, rides.ErrNotOwner),
		errors.Is(err, rides.ErrNotDriver),
		errors.Is(err, rides.ErrNotAssignedDriver):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, rides.ErrRideState),
		errors.Is(err, rides.ErrCapacityExceeded),
		errors.Is(err, rides.ErrVehicleMismatch),
		errors.Is(err, rides.ErrSpecialRequestMismatch),
		errors.Is(err, rides.ErrDuplicateShare),
		errors.Is(err, rides.ErrSelfJoin),
		errors.Is(err, rides.ErrDriverJoin):
		return utils.ConflictResponse(c, err.Error())
	}

	logger.Error("Unhandled ride error",
		logger.String("path", c.Path()),
		logger.ErrorField(err))
	return utils.InternalServerErrorResponse(c, "Something went wrong")
}
