// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for refresh token persistence.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new refresh token, representing a user session.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash retrieves a refresh token record by its securely stored hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// RevokeRefreshToken marks a session as ended.
	RevokeRefreshToken(ctx context.Context, id uuid.UUID, at time.Time) error

	// RevokeRefreshTokensByUserID ends every session of a user.
	RevokeRefreshTokensByUserID(ctx context.Context, userID uuid.UUID, at time.Time) error

	// DeleteExpiredRefreshTokens removes tokens that expired before the given instant.
	DeleteExpiredRefreshTokens(ctx context.Context, before time.Time) (int64, error)
}
