// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"petplace/config"
	"petplace/internal/domain/entity"
	"petplace/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var (
	errClientIDMissing  = errors.New("google client id is not configured")
	errEmailNotVerified = errors.New("email not verified")
)

// validateFunc matches idtoken.Validate so tests can swap in a stub.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google.
type AuthServiceImpl struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	clientID := ""
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		logger:   logger,
		validate: idtoken.Validate,
	}
}

// VerifyIDToken checks the signature, audience and expiry of a Google ID token
// against Google's published keys and returns the signed-in user.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errClientIDMissing
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	user := oauthUserFromPayload(payload)
	if !user.EmailVerified {
		return nil, errEmailNotVerified
	}

	s.logger.Debug("Google ID token verified",
		slog.String("userID", user.ID),
		slog.String("email", user.Email))

	return user, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func oauthUserFromPayload(payload *idtoken.Payload) *service.OAuthUser {
	claim := func(key string) string {
		v, _ := payload.Claims[key].(string)
		return v
	}
	verified, _ := payload.Claims["email_verified"].(bool)

	return &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claim("email"),
		Name:          claim("name"),
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     claim("picture"),
		EmailVerified: verified,
		Locale:        claim("locale"),
		ExtraData: map[string]any{
			"given_name":  claim("given_name"),
			"family_name": claim("family_name"),
		},
	}
}
