// Package gallery manages the marketing gallery images. Pure CRUD, no
// lifecycle.
package gallery

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/David-19-dev/abdouperformence-sub000/pkg/db"
	"github.com/David-19-dev/abdouperformence-sub000/pkg/db/models"
	pkgerrors "github.com/David-19-dev/abdouperformence-sub000/pkg/errors"
)

// CreateInput carries the fields of a new gallery entry.
type CreateInput struct {
	Title    string
	URL      string
	Position int
}

// UpdateInput describes a partial edit. Nil fields stay unchanged.
type UpdateInput struct {
	Title    *string
	URL      *string
	Position *int
}

// Service is the gallery content surface: public reads, admin writes.
type Service interface {
	Create(ctx context.Context, input CreateInput) (*models.GalleryImage, error)
	List(ctx context.Context) ([]models.GalleryImage, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.GalleryImage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	db *gorm.DB
}

// NewService builds the gallery service.
func NewService(conn *gorm.DB) (Service, error) {
	if conn == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &service{db: conn}, nil
}

func (s *service) Create(ctx context.Context, input CreateInput) (*models.GalleryImage, error) {
	if strings.TrimSpace(input.URL) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "image url is required")
	}

	image := &models.GalleryImage{
		ID:       uuid.New(),
		Title:    input.Title,
		URL:      strings.TrimSpace(input.URL),
		Position: input.Position,
	}
	if err := s.db.WithContext(ctx).Create(image).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist gallery image")
	}
	return image, nil
}

func (s *service) List(ctx context.Context) ([]models.GalleryImage, error) {
	var records []models.GalleryImage
	err := s.db.WithContext(ctx).
		Order("position ASC, created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list gallery images")
	}
	return records, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*models.GalleryImage, error) {
	var image models.GalleryImage
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&image).Error
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "gallery image not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load gallery image")
	}

	if input.Title != nil {
		image.Title = *input.Title
	}
	if input.URL != nil {
		if strings.TrimSpace(*input.URL) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "image url cannot be empty")
		}
		image.URL = strings.TrimSpace(*input.URL)
	}
	if input.Position != nil {
		image.Position = *input.Position
	}

	if err := s.db.WithContext(ctx).Save(&image).Error; err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update gallery image")
	}
	return &image, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.GalleryImage{}).Error
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete gallery image")
	}
	return nil
}
