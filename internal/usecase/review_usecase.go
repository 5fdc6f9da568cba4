package usecase

import (
	"context"
	"time"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewInput holds the fields of a review. On update, nil fields are left unchanged.
type ReviewInput struct {
	BusinessID            uuid.UUID
	Rating                *int
	Title                 *string
	Content               *string
	Images                []string
	PetType               *string
	PetSize               *string
	VisitedWithPet        *bool
	CleanlinessRating     *int
	ServiceRating         *int
	FacilitiesRating      *int
	PetFriendlinessRating *int
	Tags                  []string
	VisitPurpose          *string
	VisitDate             *time.Time
	Recommended           *bool
}

// ListReviewsInput narrows a review listing.
type ListReviewsInput struct {
	BusinessID *uuid.UUID
	UserID     *uuid.UUID
	MinRating  int
	MaxRating  int
	Sort       entity.ReviewSort
	Page       int
	PerPage    int
}

// ReviewPage is one page of reviews.
type ReviewPage struct {
	Reviews    []*entity.Review
	Pagination entity.Pagination
}

// BusinessReviews is one page of a business's approved reviews with its rating summary.
type BusinessReviews struct {
	Reviews      []*entity.Review
	Pagination   entity.Pagination
	Distribution entity.RatingDistribution
	Average      float64
	Total        int
}

// ReviewUsecase defines the review operations.
type ReviewUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *ReviewInput) (*entity.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	Update(ctx context.Context, userID, id uuid.UUID, input *ReviewInput) (*entity.Review, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Moderate(ctx context.Context, id uuid.UUID, status entity.ReviewStatus) (*entity.Review, error)
	ListForBusiness(ctx context.Context, businessID uuid.UUID, sort entity.ReviewSort, page, perPage int) (*BusinessReviews, error)
	ListForUser(ctx context.Context, userID uuid.UUID, page, perPage int) (*ReviewPage, error)
	List(ctx context.Context, input *ListReviewsInput) (*ReviewPage, error)
	MarkHelpful(ctx context.Context, id uuid.UUID) error
}
