package payments

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/validation"
)

// StubConfirmer simulates a wallet provider: it validates the request,
// waits the configured latency, then approves. It never declines a
// well-formed charge.
type StubConfirmer struct {
	delay time.Duration
	now   func() time.Time
}

// StubOption tweaks the stub, mainly for tests.
type StubOption func(*StubConfirmer)

// WithClock replaces the wall clock used for approval timestamps.
func WithClock(now func() time.Time) StubOption {
	return func(s *StubConfirmer) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStubConfirmer builds a simulated wallet with the given latency.
func NewStubConfirmer(delay time.Duration, opts ...StubOption) *StubConfirmer {
	if delay < 0 {
		delay = 0
	}
	stub := &StubConfirmer{delay: delay, now: time.Now}
	for _, opt := range opts {
		opt(stub)
	}
	return stub
}

// Confirm validates the charge, simulates the provider round-trip and
// returns an approval reference. Cancellation of the context aborts the
// wait and surfaces as a dependency failure.
func (s *StubConfirmer) Confirm(ctx context.Context, input ConfirmInput) (Confirmation, error) {
	if err := validateConfirmInput(input); err != nil {
		return Confirmation{}, err
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Confirmation{}, pkgerrors.Wrap(pkgerrors.CodeDependency, ctx.Err(), "payment confirmation interrupted")
		case <-timer.C:
		}
	}

	return Confirmation{
		Reference:  fmt.Sprintf("PAY-%s", strings.ToUpper(uuid.NewString()[:8])),
		Method:     input.Method,
		ApprovedAt: s.now(),
	}, nil
}

func validateConfirmInput(input ConfirmInput) error {
	if !input.Method.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unsupported payment method").
			WithDetails(map[string]string{"payment_method": string(input.Method)})
	}
	if !validation.IsPhone(input.Phone) {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid mobile wallet number").
			WithDetails(map[string]string{"phone": "must be a 9-digit local number (70/75/76/77/78)"})
	}
	if input.AmountCents <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "amount must be positive")
	}
	return nil
}
