package models

import (
	"time"

	"github.com/google/uuid"
)

// Product is a shop catalog entry.
type Product struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Name        string    `gorm:"column:name;not null"`
	Description string    `gorm:"column:description"`
	Price       int       `gorm:"column:price;not null"`
	Image       string    `gorm:"column:image"`
	Category    string    `gorm:"column:category"`
	IsActive    bool      `gorm:"column:is_active;not null;default:true"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
