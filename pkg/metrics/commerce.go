package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CommerceMetrics records order, booking and payment activity.
type CommerceMetrics struct {
	ordersCreated   *prometheus.CounterVec
	bookingsCreated *prometheus.CounterVec
	payments        *prometheus.CounterVec
	paymentDuration *prometheus.HistogramVec
}

// NewCommerceMetrics registers the commerce metrics on the provided registerer.
func NewCommerceMetrics(reg prometheus.Registerer) *CommerceMetrics {
	if reg == nil {
		return &CommerceMetrics{}
	}
	ordersCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "orders_created_total",
		Help: "Orders created through checkout.",
	}, []string{"payment_method"})
	bookingsCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bookings_created_total",
		Help: "Coaching bookings submitted through the wizard.",
	}, []string{"session_type"})
	payments := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_confirmations_total",
		Help: "Payment confirmation attempts by outcome.",
	}, []string{"wallet", "outcome"})
	paymentDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "payment_confirmation_duration_seconds",
		Help:    "Duration of payment confirmations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"wallet"})
	reg.MustRegister(ordersCreated, bookingsCreated, payments, paymentDuration)
	return &CommerceMetrics{
		ordersCreated:   ordersCreated,
		bookingsCreated: bookingsCreated,
		payments:        payments,
		paymentDuration: paymentDuration,
	}
}

// IncOrderCreated increments the order counter for the given payment method.
func (c *CommerceMetrics) IncOrderCreated(paymentMethod string) {
	if c == nil || c.ordersCreated == nil {
		return
	}
	c.ordersCreated.WithLabelValues(normalizeLabel(paymentMethod)).Inc()
}

// IncBookingCreated increments the booking counter for the given session type.
func (c *CommerceMetrics) IncBookingCreated(sessionType string) {
	if c == nil || c.bookingsCreated == nil {
		return
	}
	c.bookingsCreated.WithLabelValues(normalizeLabel(sessionType)).Inc()
}

// IncPaymentConfirmation counts one payment confirmation attempt.
func (c *CommerceMetrics) IncPaymentConfirmation(wallet, outcome string) {
	if c == nil || c.payments == nil {
		return
	}
	c.payments.WithLabelValues(normalizeLabel(wallet), normalizeLabel(outcome)).Inc()
}

// ObservePaymentDuration records how long a payment confirmation took.
func (c *CommerceMetrics) ObservePaymentDuration(wallet string, duration time.Duration) {
	if c == nil || c.paymentDuration == nil {
		return
	}
	c.paymentDuration.WithLabelValues(normalizeLabel(wallet)).Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
