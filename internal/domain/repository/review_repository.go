package repository

import (
	"context"
	"errors"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrDuplicateReview is returned when the user already reviewed the business.
	ErrDuplicateReview = errors.New("review already exists")
)

// ReviewRepository defines the persistence operations of reviews.
type ReviewRepository interface {
	// Create persists a new review. A second review of the same business by the same user fails with ErrDuplicateReview.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review with its author summary and business name.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ExistsByUserAndBusiness reports whether the user already reviewed the business.
	ExistsByUserAndBusiness(ctx context.Context, userID, businessID uuid.UUID) (bool, error)

	// Update writes the editable fields of a review.
	Update(ctx context.Context, review *entity.Review) error

	// UpdateStatus writes a new moderation status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) error

	// Delete removes a review.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of reviews matching the filter.
	List(ctx context.Context, filter entity.ReviewFilter, page entity.Page) ([]*entity.Review, int64, error)

	// AggregateApproved computes the rating aggregate over the approved reviews of a business.
	AggregateApproved(ctx context.Context, businessID uuid.UUID) (entity.RatingAggregate, error)

	// RatingDistribution counts approved reviews of a business per star.
	RatingDistribution(ctx context.Context, businessID uuid.UUID) (entity.RatingDistribution, error)

	// IncrementHelpful atomically adds one helpful vote.
	IncrementHelpful(ctx context.Context, id uuid.UUID) error

	// CountByUser returns the user's reviews per status.
	CountByUser(ctx context.Context, userID uuid.UUID) (map[entity.ReviewStatus]int64, error)
}
