package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a push target. FCMToken rotates on the client; DeviceID is stable per install.
// Inactive devices are kept so that re-registering revives the row instead of duplicating it.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	FCMToken  string    `json:"fcm_token"`
	DeviceID  string    `json:"device_id"`
	Platform  string    `json:"platform"` // ios, android or web
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
