package db

import (
	"context"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
)

// AutoMigrate syncs the schema with the model set. Intended for dev
// and test environments; production schemas are managed out of band.
func (c *Client) AutoMigrate(ctx context.Context) error {
	return c.conn.WithContext(ctx).AutoMigrate(
		&models.AdminUser{},
		&models.Product{},
		&models.GalleryImage{},
		&models.Order{},
		&models.Booking{},
	)
}
