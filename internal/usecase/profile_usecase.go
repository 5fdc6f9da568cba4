package usecase

import (
	"context"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the editable profile fields. Nil fields are left unchanged.
type UpdateProfileInput struct {
	Name                   *string
	Nickname               *string
	Phone                  *string
	ProfileImage           *string
	Bio                    *string
	PetTypes               []string
	Address                *string
	Latitude               *float64
	Longitude              *float64
	EmailNotifications     *bool
	PushNotifications      *bool
	MarketingNotifications *bool
}

// Dashboard summarizes a user's own content.
type Dashboard struct {
	User             *entity.User                    `json:"user"`
	BusinessCounts   map[entity.BusinessStatus]int64 `json:"business_counts"`
	ReviewCounts     map[entity.ReviewStatus]int64   `json:"review_counts"`
	PostCounts       map[entity.PostStatus]int64     `json:"post_counts"`
	UnreadCount      int64                           `json:"unread_notifications"`
	RecentBusinesses []*entity.Business              `json:"recent_businesses"`
	RecentReviews    []*entity.Review                `json:"recent_reviews"`
}

// DeactivateInput confirms the password before an account is switched off.
type DeactivateInput struct {
	Password string
	Reason   string
}

// SearchUsersInput filters active users by name or nickname.
type SearchUsersInput struct {
	Query   string
	Page    int
	PerPage int
}

// UserPage is one page of user search results.
type UserPage struct {
	Users      []*entity.OwnerSummary
	Pagination entity.Pagination
}

// ProfileUsecase defines the interface for user profile operations.
type ProfileUsecase interface {
	// UpdateProfile edits the caller's own profile.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)

	// GetPublicProfile returns what other users may see, with content counts.
	GetPublicProfile(ctx context.Context, userID uuid.UUID) (*entity.PublicProfile, error)

	// GetDashboard returns the caller's per-status counts and recent activity.
	GetDashboard(ctx context.Context, userID uuid.UUID) (*Dashboard, error)

	// DeactivateAccount switches off the caller's account and ends all of its sessions.
	DeactivateAccount(ctx context.Context, userID uuid.UUID, input *DeactivateInput) error

	// SearchUsers finds active users whose name or nickname contains the query.
	SearchUsers(ctx context.Context, input *SearchUsersInput) (*UserPage, error)
}
