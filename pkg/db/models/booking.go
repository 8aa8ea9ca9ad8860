package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/enums"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/types"
)

// Booking is a requested coaching session with its own lifecycle status.
type Booking struct {
	ID            uuid.UUID           `gorm:"column:id;type:uuid;primaryKey"`
	SessionType   enums.SessionType   `gorm:"column:session_type;type:text;not null"`
	Goal          enums.Goal          `gorm:"column:goal;type:text;not null"`
	PreferredDate string              `gorm:"column:preferred_date;not null"`
	PreferredTime string              `gorm:"column:preferred_time;not null"`
	Message       *string             `gorm:"column:message"`
	Status        enums.BookingStatus `gorm:"column:status;type:text;not null;default:'pending'"`
	ContactInfo   types.ContactInfo   `gorm:"column:contact_info;type:jsonb;serializer:json;not null"`
	CreatedAt     time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}
