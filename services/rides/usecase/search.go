package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/ridepool/ridepool/internal/pkg/logger"
	"github.com/ridepool/ridepool/internal/pkg/models"
	"github.com/ridepool/ridepool/services/rides"
)

// OpenBoard lists rides visible on the public board. The board always shows
// OPEN rides, plus CONFIRMED ones when the policy flag says so; anonymous
// pages are served through the cache since every anonymous viewer sees the
// same board.
//
// For an authenticated non-driver viewer the board additionally hides the
// viewer's own rides and non-shareable rides, because the only action such a
// viewer can take on the board is joining.
func (uc *rideUC) OpenBoard(ctx context.Context, viewer *models.Principal, query models.BoardQuery) ([]*models.Ride, error) {
	statuses := []models.RideStatus{models.RideStatusOpen}
	if uc.cfg.Rides.BoardIncludeConfirmed {
		statuses = append(statuses, models.RideStatusConfirmed)
	}

	filter := models.RideFilter{
		Statuses:        statuses,
		DestinationLike: query.Destination,
		ScheduledFrom:   query.ScheduledFrom,
		ScheduledTo:     query.ScheduledTo,
		SpecialRequest:  query.SpecialRequest,
		MaxTotalPeople:  query.MaxTotalPeople,
		OrderBy:         models.OrderByCreatedAt,
		Limit:           uc.cfg.Rides.PageSize,
		Offset:          pageOffset(query.Page, uc.cfg.Rides.PageSize),
	}

	if viewer == nil {
		return uc.cachedBoard(ctx, query, filter)
	}

	profile, err := uc.profileRepo.GetRiderProfile(ctx, viewer.UserID)
	if err != nil {
		return nil, err
	}

	if uc.cfg.Rides.BoardExcludeJoined {
		sharerID := profile.ID
		filter.ExcludeSharerID = &sharerID
	}
	if _, err := uc.profileRepo.GetDriverProfile(ctx, profile.ID); err != nil {
		if !errors.Is(err, rides.ErrDriverProfileNotFound) {
			return nil, err
		}
		ownerID := profile.ID
		shareable := true
		filter.ExcludeOwnerID = &ownerID
		filter.CanShared = &shareable
	}

	return uc.ridesRepo.ListRides(ctx, filter)
}

// cachedBoard serves an anonymous board page read-through from the cache.
// Cache failures degrade to a direct store read.
func (uc *rideUC) cachedBoard(ctx context.Context, query models.BoardQuery, filter models.RideFilter) ([]*models.Ride, error) {
	if uc.boardCache == nil {
		return uc.ridesRepo.ListRides(ctx, filter)
	}

	key := boardCacheKey(query)
	if cached, err := uc.boardCache.Get(ctx, key); err == nil {
		var result []*models.Ride
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
	}

	result, err := uc.ridesRepo.ListRides(ctx, filter)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(result); err == nil {
		ttl := time.Duration(uc.cfg.Rides.BoardCacheTTLSeconds) * time.Second
		if err := uc.boardCache.Set(ctx, key, payload, ttl); err != nil {
			logger.Warn("Failed to cache board page", logger.Err(err))
		}
	}

	return result, nil
}

// boardCacheKey derives a stable cache key from the board query parameters.
func boardCacheKey(query models.BoardQuery) string {
	raw, _ := json.Marshal(query)
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("rides:board:%s", hex.EncodeToString(sum[:8]))
}

// MyRides lists every ride the principal touches: owned, joined and (for
// drivers) driven. The three audiences come back as separate store reads and
// are merged here, deduplicated by ride, so a ride the caller both owns and
// drives appears once.
//
// COMPLETED rides are hidden by default; an explicit status filter overrides
// that and shows exactly the requested status.
func (uc *rideUC) MyRides(ctx context.Context, principal models.Principal, query models.MyRidesQuery) ([]*models.Ride, error) {
	profile, err := uc.profileRepo.GetRiderProfile(ctx, principal.UserID)
	if err != nil {
		return nil, err
	}

	base := models.RideFilter{OrderBy: models.OrderByScheduledAt}
	if query.Status != nil {
		base.Statuses = []models.RideStatus{*query.Status}
	} else {
		base.ExcludeStatus = models.RideStatusCompleted
	}

	profileID := profile.ID

	owned := base
	owned.OwnerID = &profileID
	merged, err := uc.ridesRepo.ListRides(ctx, owned)
	if err != nil {
		return nil, err
	}

	joined := base
	joined.SharerID = &profileID
	joinedRides, err := uc.ridesRepo.ListRides(ctx, joined)
	if err != nil {
		return nil, err
	}
	merged = append(merged, joinedRides...)

	driver, err := uc.profileRepo.GetDriverProfile(ctx, profile.ID)
	switch {
	case err == nil:
		driven := base
		driven.DriverID = &driver.ProfileID
		drivenRides, err := uc.ridesRepo.ListRides(ctx, driven)
		if err != nil {
			return nil, err
		}
		merged = append(merged, drivenRides...)
	case errors.Is(err, rides.ErrDriverProfileNotFound):
		// Not a driver; two audiences only.
	default:
		return nil, err
	}

	merged = dedupeRides(merged)
	sortByScheduledAtDesc(merged)

	return paginate(merged, query.Page, uc.cfg.Rides.PageSize), nil
}

// DrivenRides lists the CONFIRMED rides assigned to the principal's driver
// profile, the driver's active workload.
func (uc *rideUC) DrivenRides(ctx context.Context, principal models.Principal, page int) ([]*models.Ride, error) {
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

	driverID := driver.ProfileID
	filter := models.RideFilter{
		Statuses: []models.RideStatus{models.RideStatusConfirmed},
		DriverID: &driverID,
		OrderBy:  models.OrderByScheduledAt,
		Limit:    uc.cfg.Rides.PageSize,
		Offset:   pageOffset(page, uc.cfg.Rides.PageSize),
	}

	return uc.ridesRepo.ListRides(ctx, filter)
}

// DriverSearch lists OPEN shareable rides the principal's driver profile could
// claim: vehicle type compatible and seat total within capacity. The store
// read has no limit; every candidate is fetched, the vehicle and capacity
// checks run here, and the surviving set is paginated in process.
func (uc *rideUC) DriverSearch(ctx context.Context, principal models.Principal, query models.DriverSearchQuery) ([]*models.Ride, error) {
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

	shareable := true
	filter := models.RideFilter{
		Statuses:        []models.RideStatus{models.RideStatusOpen},
		CanShared:       &shareable,
		DestinationLike: query.Destination,
		OrderBy:         models.OrderByCreatedAt,
	}

	candidates, err := uc.ridesRepo.ListRides(ctx, filter)
	if err != nil {
		return nil, err
	}

	matched := make([]*models.Ride, 0, len(candidates))
	for _, ride := range candidates {
		if ride.VehicleTypeRequest != "" && ride.VehicleTypeRequest != driver.VehicleType {
			continue
		}
		if ride.TotalPeople > driver.Capacity {
			continue
		}
		// TODO: filter on special_request once driver profiles model it as
		// structured capabilities rather than free text.
		matched = append(matched, ride)
	}

	return paginate(matched, query.Page, uc.cfg.Rides.PageSize), nil
}

// dedupeRides keeps the first occurrence of each ride, preserving order.
func dedupeRides(all []*models.Ride) []*models.Ride {
	seen := make(map[string]struct{}, len(all))
	// Fresh slice: the input may alias a store result, which must not be
	// reordered by the sort that follows.
	out := make([]*models.Ride, 0, len(all))
	for _, ride := range all {
		key := ride.RideID.String()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, ride)
	}
	return out
}

// sortByScheduledAtDesc orders rides by scheduled time, newest first, with
// creation time and then ride ID as deterministic tie-breaks.
func sortByScheduledAtDesc(all []*models.Ride) {
	sort.Slice(all, func(i, j int) bool {
		if !all[i].ScheduledAt.Equal(all[j].ScheduledAt) {
			return all[i].ScheduledAt.After(all[j].ScheduledAt)
		}
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].RideID.String() < all[j].RideID.String()
	})
}

func pageOffset(page, pageSize int) int {
	if page < 1 {
		page = 1
	}
	return (page - 1) * pageSize
}

func paginate(all []*models.Ride, page, pageSize int) []*models.Ride {
	start := pageOffset(page, pageSize)
	if start >= len(all) {
		return []*models.Ride{}
	}
	end := start + pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end]
}
