package repository

import (
	"context"
	"errors"
	"time"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBusinessNotFound is returned when a business is not found.
var ErrBusinessNotFound = errors.New("business not found")

// BusinessRepository defines the persistence operations of business listings.
type BusinessRepository interface {
	// Create persists a new business.
	Create(ctx context.Context, business *entity.Business) error

	// FindByID retrieves a business with its owner summary.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error)

	// Update writes every editable field of a business.
	Update(ctx context.Context, business *entity.Business) error

	// UpdateStatus writes a new moderation status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.BusinessStatus, approvedAt *time.Time) error

	// List returns one page of businesses matching the filter, ordered by rating then recency.
	List(ctx context.Context, filter entity.BusinessFilter, page entity.Page) ([]*entity.Business, int64, error)

	// FindWithinBounds returns approved businesses inside the box, ordered by rating descending.
	FindWithinBounds(ctx context.Context, bounds entity.GeoBounds, category, petType string) ([]*entity.Business, error)

	// FindFeatured returns approved featured businesses, best rated first.
	FindFeatured(ctx context.Context, limit int) ([]*entity.Business, error)

	// Search matches name, description and address, ordered by rating then views.
	Search(ctx context.Context, query string, page entity.Page) ([]*entity.Business, int64, error)

	// CountApprovedByCategory returns the number of approved businesses per category code.
	CountApprovedByCategory(ctx context.Context) (map[string]int64, error)

	// CountByOwner returns the owner's businesses per status.
	CountByOwner(ctx context.Context, ownerID uuid.UUID) (map[entity.BusinessStatus]int64, error)

	// FindRecentByOwner returns the owner's most recently created businesses.
	FindRecentByOwner(ctx context.Context, ownerID uuid.UUID, limit int) ([]*entity.Business, error)

	// IncrementViewCount atomically adds one view.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// UpdateRating writes the derived rating aggregate.
	UpdateRating(ctx context.Context, id uuid.UUID, rating entity.RatingAggregate) error
}
