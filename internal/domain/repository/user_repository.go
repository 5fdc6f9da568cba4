package repository

import (
	"context"
	"errors"
	"time"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// UserRepository stores accounts. Emails are unique and stored lowercased.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByNickname ignores excludeID so a user can keep their own nickname on update.
	ExistsByNickname(ctx context.Context, nickname string, excludeID uuid.UUID) (bool, error)

	Create(ctx context.Context, user *entity.User) error
	// Update writes profile fields, role and active flag.
	Update(ctx context.Context, user *entity.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error

	// SearchActive matches active users whose name or nickname contains query, ordered by name.
	SearchActive(ctx context.Context, query string, page entity.Page) ([]*entity.User, int64, error)
}
