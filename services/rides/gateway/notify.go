package gateway

import (
	"context"
	"fmt"

	"github.com/ridepool/ridepool/internal/pkg/models"
	nsqpkg "github.com/ridepool/ridepool/internal/pkg/nsq"
	"github.com/ridepool/ridepool/services/rides"
)

// NotifyGW publishes claim notifications to NSQ for the notification worker
// to deliver as email.
type NotifyGW struct {
	cfg      *models.Config
	producer *nsqpkg.Producer
}

// NewNotifyGW creates a new notification gateway.
func NewNotifyGW(cfg *models.Config, producer *nsqpkg.Producer) rides.NotifyGW {
	return &NotifyGW{
		cfg:      cfg,
		producer: producer,
	}
}

// PublishRideClaimed composes the passenger and driver message bodies and
// publishes the notification to the configured topic.
func (g *NotifyGW) PublishRideClaimed(ctx context.Context, notification *models.ClaimNotification) error {
	when := notification.ScheduledAt.Format("Mon, 02 Jan 2006 15:04")

	notification.Subject = fmt.Sprintf("Your ride to %s has been claimed", notification.Destination)
	notification.PassengerBody = fmt.Sprintf(
		"Good news! Your ride to %s scheduled for %s has been claimed by %s. "+
			"Your driver drives a %s and can be reached at %s.",
		notification.Destination, when,
		notification.DriverName, notification.DriverVehicle, notification.DriverEmail,
	)
	notification.DriverBody = fmt.Sprintf(
		"You claimed the ride to %s scheduled for %s. "+
			"The ride owner is %s (%s, %s).",
		notification.Destination, when,
		notification.OwnerName, notification.OwnerEmail, notification.OwnerPhone,
	)

	return g.producer.Publish(g.cfg.NSQ.NotificationTopic, notification)
}
