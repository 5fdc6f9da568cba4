package repository

import (
	"context"
	"errors"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrImageNotFound is returned when an image is not found.
var ErrImageNotFound = errors.New("image not found")

// ImageRepository defines the persistence operations of image metadata.
type ImageRepository interface {
	// Create persists image metadata.
	Create(ctx context.Context, image *entity.Image) error

	// FindByID retrieves image metadata.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Image, error)

	// ListByEntity returns the images attached to an entity, oldest first.
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]*entity.Image, error)

	// Delete removes image metadata.
	Delete(ctx context.Context, id uuid.UUID) error
}
