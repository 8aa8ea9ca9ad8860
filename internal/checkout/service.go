// Package checkout converts a session cart into a confirmed order,
// gated by the mobile-wallet confirmation step.
package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/David-19-dev/abdouperformence-sub000/internal/cart"
	"github.com/David-19-dev/abdouperformence-sub000/internal/notifications"
	"github.com/David-19-dev/abdouperformence-sub000/internal/orders"
	"github.com/David-19-dev/abdouperformence-sub000/internal/payments"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/config"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/logger"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/metrics"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/types"
)

// Input is everything the client submits on the checkout form.
type Input struct {
	ShippingAddress types.ShippingAddress
	PaymentMethod   enums.PaymentMethod
	PaymentPhone    string
}

// Service runs the checkout flow for a session.
type Service interface {
	Checkout(ctx context.Context, sessionID string, input Input) (*models.Order, error)
}

type service struct {
	carts     cart.Service
	orders    orders.Service
	confirmer payments.Confirmer
	notifier  notifications.Notifier
	metrics   *metrics.CommerceMetrics
	logg      *logger.Logger
	lead      time.Duration
	now       func() time.Time
}

// NewService wires the checkout orchestration.
func NewService(
	carts cart.Service,
	orderSvc orders.Service,
	confirmer payments.Confirmer,
	notifier notifications.Notifier,
	m *metrics.CommerceMetrics,
	logg *logger.Logger,
	cfg config.PaymentConfig,
) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if orderSvc == nil {
		return nil, fmt.Errorf("orders service required")
	}
	if confirmer == nil {
		return nil, fmt.Errorf("payment confirmer required")
	}
	if notifier == nil {
		return nil, fmt.Errorf("notifier required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		carts:     carts,
		orders:    orderSvc,
		confirmer: confirmer,
		notifier:  notifier,
		metrics:   m,
		logg:      logg,
		lead:      cfg.DeliveryLead(),
		now:       time.Now,
	}, nil
}

// Checkout validates the form, confirms payment, creates the order and
// clears the cart. A payment or persistence failure leaves the cart
// untouched so the client can retry.
func (s *service) Checkout(ctx context.Context, sessionID string, input Input) (*models.Order, error) {
	ctx = s.logg.WithSessionID(ctx, sessionID)

	current, err := s.carts.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(current.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if field, ok := input.ShippingAddress.Validate(); !ok {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "incomplete shipping address").
			WithDetails(map[string]string{field: "required"})
	}

	total := current.Total()
	started := s.now()
	confirmation, err := s.confirmer.Confirm(ctx, payments.ConfirmInput{
		Method:      input.PaymentMethod,
		Phone:       input.PaymentPhone,
		AmountCents: total,
	})
	if err != nil {
		s.metrics.IncPaymentConfirmation(string(input.PaymentMethod), "rejected")
		return nil, err
	}
	s.metrics.IncPaymentConfirmation(string(input.PaymentMethod), "approved")
	s.metrics.ObservePaymentDuration(string(input.PaymentMethod), s.now().Sub(started))

	estimated := s.now().Add(s.lead)
	order, err := s.orders.Create(ctx, orders.CreateInput{
		Items:             toOrderItems(current.Items),
		Total:             total,
		Status:            enums.OrderStatusConfirmed,
		ShippingAddress:   input.ShippingAddress,
		PaymentMethod:     confirmation.Method,
		PaymentReference:  confirmation.Reference,
		EstimatedDelivery: &estimated,
	})
	if err != nil {
		return nil, err
	}
	s.metrics.IncOrderCreated(string(confirmation.Method))

	if err := s.notifier.OrderConfirmed(ctx, order); err != nil {
		s.logg.Error(s.logg.WithOrderID(ctx, order.ID.String()), "order confirmation side-effect", err)
	}

	// the order is durable; a failed cart clear only risks a stale cart
	if err := s.carts.Clear(ctx, sessionID); err != nil {
		s.logg.Error(s.logg.WithOrderID(ctx, order.ID.String()), "clear cart after checkout", err)
	}
	return order, nil
}

func toOrderItems(items []cart.LineItem) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		out = append(out, models.OrderItem{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Image:     item.Image,
			Category:  item.Category,
		})
	}
	return out
}
