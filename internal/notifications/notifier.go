// Package notifications is the best-effort confirmation side channel.
// Failures here never block the flows that trigger them.
package notifications

import (
	"context"
	"fmt"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
)

// Notifier delivers confirmations to the client after a durable write.
type Notifier interface {
	BookingConfirmed(ctx context.Context, booking *models.Booking) error
	OrderConfirmed(ctx context.Context, order *models.Order) error
}

// LogNotifier records the confirmation in the service log. It stands in
// for the email/SMS integration the business has not wired up yet.
type LogNotifier struct {
	logg *logger.Logger
}

// NewLogNotifier builds the logging notifier.
func NewLogNotifier(logg *logger.Logger) (*LogNotifier, error) {
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &LogNotifier{logg: logg}, nil
}

func (n *LogNotifier) BookingConfirmed(ctx context.Context, booking *models.Booking) error {
	ctx = n.logg.WithFields(ctx, map[string]any{
		"booking_id":   booking.ID.String(),
		"session_type": booking.SessionType.String(),
		"email":        booking.ContactInfo.Email,
	})
	n.logg.Info(ctx, "booking confirmation queued")
	return nil
}

func (n *LogNotifier) OrderConfirmed(ctx context.Context, order *models.Order) error {
	ctx = n.logg.WithFields(ctx, map[string]any{
		"order_id": order.ID.String(),
		"total":    order.Total,
	})
	n.logg.Info(ctx, "order confirmation queued")
	return nil
}
