package rides

import (
	"context"
	"time"

	"github.com/ridepool/ridepool/internal/pkg/models"
)

// NotifyGW publishes claim notifications for delivery by the notification
// worker. Publishing is fire-and-forget from the caller's point of view: a
// failed publish is logged by the use case and never rolls back a claim.
//
// go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/ridepool/ridepool/services/rides NotifyGW
type NotifyGW interface {
	PublishRideClaimed(ctx context.Context, notification *models.ClaimNotification) error
}

// BoardCache caches serialized board pages for anonymous viewers.
// *database.RedisClient satisfies it.
type BoardCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}
