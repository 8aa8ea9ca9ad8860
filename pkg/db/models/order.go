package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/types"
)

// OrderItem is the immutable snapshot of a cart line captured at checkout.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image"`
	Category  string `json:"category,omitempty"`
}

// OrderItems is stored as a single JSON document on the order row.
type OrderItems []OrderItem

// Order is a finalized purchase created from a cart at checkout.
// Items and Total never change after creation; only Status, tracking
// fields, and UpdatedAt may be mutated by admin staff.
type Order struct {
	ID                uuid.UUID             `gorm:"column:id;type:uuid;primaryKey"`
	Items             OrderItems            `gorm:"column:items;type:jsonb;serializer:json;not null"`
	Total             int                   `gorm:"column:total;not null"`
	Status            enums.OrderStatus     `gorm:"column:status;type:text;not null;default:'pending'"`
	ShippingAddress   types.ShippingAddress `gorm:"column:shipping_address;type:jsonb;serializer:json;not null"`
	PaymentMethod     enums.PaymentMethod   `gorm:"column:payment_method;type:text;not null"`
	PaymentReference  string                `gorm:"column:payment_reference"`
	TrackingNumber    *string               `gorm:"column:tracking_number"`
	EstimatedDelivery *time.Time            `gorm:"column:estimated_delivery"`
	CreatedAt         time.Time             `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time             `gorm:"column:updated_at;autoUpdateTime"`
}
