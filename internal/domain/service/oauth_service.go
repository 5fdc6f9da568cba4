package service

import (
	"context"

	"petplace/internal/domain/entity"
)

// OAuthUser is the identity asserted by a verified provider ID token.
type OAuthUser struct {
	ID            string // provider subject
	Email         string
	Name          string
	Provider      entity.ProviderType
	ProfileURL    string
	AvatarURL     string
	EmailVerified bool
	Locale        string
	ExtraData     map[string]any
}

// OAuthAuthService verifies ID tokens minted for the mobile and web clients. Sign-in links the
// identity to an existing account with the same verified email or creates a new one.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
	GetProvider() entity.ProviderType
}
