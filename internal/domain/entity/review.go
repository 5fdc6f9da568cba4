package entity

import (
	"time"

	"github.com/google/uuid"
)

// ReviewStatus is the moderation state of a review.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
	ReviewStatusReported ReviewStatus = "reported"
)

// IsValid checks if the status is a known value.
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected, ReviewStatusReported:
		return true
	default:
		return false
	}
}

const (
	MinRating = 1
	MaxRating = 5
)

// ValidRating reports whether r is an allowed star rating.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}

// Review is one user's rating and write-up of one business.
type Review struct {
	ID                    uuid.UUID     `json:"id"`
	UserID                uuid.UUID     `json:"user_id"`
	BusinessID            uuid.UUID     `json:"business_id"`
	Rating                int           `json:"rating"`
	Title                 string        `json:"title,omitempty"`
	Content               string        `json:"content"`
	Images                []string      `json:"images"`
	PetType               string        `json:"pet_type,omitempty"`
	PetSize               string        `json:"pet_size,omitempty"`
	VisitedWithPet        bool          `json:"visited_with_pet"`
	CleanlinessRating     *int          `json:"cleanliness_rating,omitempty"`
	ServiceRating         *int          `json:"service_rating,omitempty"`
	FacilitiesRating      *int          `json:"facilities_rating,omitempty"`
	PetFriendlinessRating *int          `json:"pet_friendliness_rating,omitempty"`
	Tags                  []string      `json:"tags"`
	VisitPurpose          string        `json:"visit_purpose,omitempty"`
	VisitDate             *time.Time    `json:"visit_date,omitempty"`
	Recommended           *bool         `json:"recommended,omitempty"`
	Status                ReviewStatus  `json:"status"`
	HelpfulCount          int64         `json:"helpful_count"`
	CreatedAt             time.Time     `json:"created_at"`
	UpdatedAt             time.Time     `json:"updated_at"`
	Author                *OwnerSummary `json:"author,omitempty"`
	BusinessName          string        `json:"business_name,omitempty"`
}

// RatingAggregate is the derived rating of a business over its approved reviews.
type RatingAggregate struct {
	Average float64 `json:"average_rating"`
	Count   int     `json:"review_count"`
}

// RatingDistribution counts approved reviews per star, keyed 5 down to 1.
type RatingDistribution map[int]int64

// NewRatingDistribution returns a distribution with every star present.
func NewRatingDistribution() RatingDistribution {
	d := make(RatingDistribution, MaxRating)
	for star := MaxRating; star >= MinRating; star-- {
		d[star] = 0
	}

	return d
}

// ReviewSort is the ordering of a business review listing.
type ReviewSort string

const (
	ReviewSortNewest     ReviewSort = "newest"
	ReviewSortOldest     ReviewSort = "oldest"
	ReviewSortRatingHigh ReviewSort = "rating_high"
	ReviewSortRatingLow  ReviewSort = "rating_low"
)

// ReviewFilter narrows a review listing.
type ReviewFilter struct {
	BusinessID *uuid.UUID
	UserID     *uuid.UUID
	Status     ReviewStatus
	MinRating  int
	MaxRating  int
	Sort       ReviewSort
}
