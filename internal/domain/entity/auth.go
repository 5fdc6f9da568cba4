package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how a credential authenticates.
type ProviderType string

const (
	// ProviderTypeEmail is an email and password credential.
	ProviderTypeEmail ProviderType = "email"
	// ProviderTypeGoogle is a Google Sign-In credential.
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication is one way a user can sign in. An account may hold an email credential
// and a Google credential at the same time.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // normalized email, or the Google subject
	PasswordHash   string // empty for OAuth credentials
	CreatedAt      time.Time
}

// RefreshToken is a persisted session. Only the SHA-256 of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// IsUsable reports whether the session can still mint access tokens.
func (t *RefreshToken) IsUsable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
