// Package entity holds the domain objects shared by use cases, repositories and handlers.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account in the directory. Business owners, reviewers and editors are all users.
type User struct {
	ID                     uuid.UUID  `json:"id"`                      // The Global Unique Identifier (GUID) for the user.
	Email                  string     `json:"email"`                   // Login identifier, unique.
	Name                   string     `json:"name"`                    // Display name.
	Nickname               *string    `json:"nickname,omitempty"`      // Optional unique handle.
	Phone                  string     `json:"phone,omitempty"`         // Contact phone.
	ProfileImage           string     `json:"profile_image,omitempty"` // Avatar URL.
	Bio                    string     `json:"bio,omitempty"`           // Free-form introduction.
	Role                   Role       `json:"role"`                    // Authorization role.
	IsActive               bool       `json:"is_active"`               // Deactivated accounts cannot log in.
	IsVerified             bool       `json:"is_verified"`             // Email verified.
	IsPremium              bool       `json:"is_premium"`              // Premium membership flag.
	PetTypes               []string   `json:"pet_types"`               // Pets the user owns.
	Address                string     `json:"address,omitempty"`       // Home area.
	Latitude               *float64   `json:"latitude,omitempty"`      // Optional home coordinates.
	Longitude              *float64   `json:"longitude,omitempty"`     // Optional home coordinates.
	EmailNotifications     bool       `json:"email_notifications"`     // Opt-in for email delivery.
	PushNotifications      bool       `json:"push_notifications"`      // Opt-in for push delivery.
	MarketingNotifications bool       `json:"marketing_notifications"` // Opt-in for marketing messages.
	LastLoginAt            *time.Time `json:"last_login_at,omitempty"` // Last successful login.
	CreatedAt              time.Time  `json:"created_at"`              // Timestamp of when this user account was created.
	UpdatedAt              time.Time  `json:"updated_at"`              // Timestamp of the last modification to this user's data.
}

// Roles returns the roles embedded into access tokens.
func (u *User) Roles() Roles {
	return Roles{u.Role}
}

// PublicProfile is the subset of a user that other users may see.
type PublicProfile struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	Nickname           *string   `json:"nickname,omitempty"`
	ProfileImage       string    `json:"profile_image,omitempty"`
	Bio                string    `json:"bio,omitempty"`
	PetTypes           []string  `json:"pet_types"`
	BusinessCount      int64     `json:"business_count"`
	ReviewCount        int64     `json:"review_count"`
	PublishedPostCount int64     `json:"published_post_count"`
	CreatedAt          time.Time `json:"created_at"`
}

// OwnerSummary is embedded in business and review responses.
type OwnerSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Nickname     *string   `json:"nickname,omitempty"`
	ProfileImage string    `json:"profile_image,omitempty"`
}

// Summary returns the owner summary of the user.
func (u *User) Summary() *OwnerSummary {
	if u == nil {
		return nil
	}

	return &OwnerSummary{
		ID:           u.ID,
		Name:         u.Name,
		Nickname:     u.Nickname,
		ProfileImage: u.ProfileImage,
	}
}
