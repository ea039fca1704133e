package rides

import "errors"

// Domain errors returned by the ride use cases. All of them are expected,
// recoverable outcomes: the handler layer maps them to HTTP statuses and the
// repository translates storage conflicts into the nearest one instead of
// leaking driver errors.
var (
	ErrRideNotFound          = errors.New("ride not found")
	ErrShareNotFound         = errors.New("ride share not found")
	ErrProfileNotFound       = errors.New("rider profile not found")
	ErrDriverProfileNotFound = errors.New("driver profile not found")

	ErrValidation = errors.New("invalid ride fields")

	ErrNotOwner          = errors.New("only the ride owner may perform this operation")
	ErrNotDriver         = errors.New("a driver profile is required")
	ErrNotAssignedDriver = errors.New("ride is assigned to a different driver")

	ErrRideState = errors.New("operation not allowed for the current ride status")

	ErrCapacityExceeded       = errors.New("ride passengers exceed driver capacity")
	ErrVehicleMismatch        = errors.New("driver vehicle type does not match the ride request")
	ErrSpecialRequestMismatch = errors.New("driver cannot satisfy the ride special request")

	ErrDuplicateShare = errors.New("ride already joined")
	ErrSelfJoin       = errors.New("owner cannot join their own ride")
	ErrDriverJoin     = errors.New("assigned driver cannot join as a sharer")
)
