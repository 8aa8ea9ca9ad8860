package orders

import (
	"time"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/types"
)

// CreateInput is the order draft produced by checkout.
type CreateInput struct {
	Items             []models.OrderItem
	Total             int
	Status            enums.OrderStatus
	ShippingAddress   types.ShippingAddress
	PaymentMethod     enums.PaymentMethod
	PaymentReference  string
	EstimatedDelivery *time.Time
}

// Filters describe the admin list predicates. All are optional and
// compose as a conjunction.
type Filters struct {
	Query         string
	Status        *enums.OrderStatus
	Category      string
	PaymentMethod *enums.PaymentMethod
	DateBucket    *enums.DateBucket
}
