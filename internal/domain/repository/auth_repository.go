// Package repository declares persistence ports. Implementations translate storage misses into
// the sentinel errors below so use cases never see driver errors for expected outcomes.
package repository

import (
	"context"
	"errors"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrAuthNotFound      = errors.New("authentication method not found")
	ErrAuthAlreadyExists = errors.New("authentication method already exists")
)

// AuthRepository stores login credentials. A user has at most one credential per provider;
// email credentials are keyed by the normalized address, OAuth ones by the provider subject.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)
	FindAuthenticationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Authentication, error)
}
