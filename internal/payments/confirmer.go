// Package payments models the mobile-wallet confirmation step that gates
// checkout. The real providers are not integrated; a stub stands in for
// them behind the Confirmer port.
package payments

import (
	"context"
	"time"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
)

// ConfirmInput carries everything the wallet needs to approve a charge.
type ConfirmInput struct {
	Method      enums.PaymentMethod
	Phone       string
	AmountCents int
}

// Confirmation is the provider's answer to a charge request.
type Confirmation struct {
	Reference  string
	Method     enums.PaymentMethod
	ApprovedAt time.Time
}

// Confirmer is the payment approval port consumed by checkout.
type Confirmer interface {
	Confirm(ctx context.Context, input ConfirmInput) (Confirmation, error)
}
