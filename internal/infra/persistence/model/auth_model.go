package model

import (
	"time"

	"github.com/google/uuid"
)

// AuthenticationModel mirrors 'user_authentications'. One row per (provider, provider user id).
type AuthenticationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider       string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_auth_provider_subject,priority:1"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_auth_provider_subject,priority:2"`
	PasswordHash   string    `gorm:"type:varchar(72)"`
	CreatedAt      time.Time
}

func (AuthenticationModel) TableName() string {
	return "user_authentications"
}

// RefreshTokenModel mirrors 'refresh_tokens'. TokenHash is the hex SHA-256 of the issued token.
type RefreshTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	TokenHash string    `gorm:"type:char(64);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	RevokedAt *time.Time
	CreatedAt time.Time
}

func (RefreshTokenModel) TableName() string {
	return "refresh_tokens"
}
