package usecase

import (
	"context"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceInfo is the body of POST /api/devices.
type DeviceInfo struct {
	FCMToken string `json:"fcm_token" validate:"required,max=4096"`
	DeviceID string `json:"device_id" validate:"required,max=255"`
	Platform string `json:"platform" validate:"required,oneof=ios android web"`
}

// DeviceUsecase manages the devices push notifications fan out to.
type DeviceUsecase interface {
	// RegisterDevice is idempotent per device_id: a known device gets the new token and is reactivated.
	RegisterDevice(ctx context.Context, userID uuid.UUID, deviceInfo *DeviceInfo) (*entity.UserDevice, error)
	GetUserDevices(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	// DeleteDevice answers not found for another user's device.
	DeleteDevice(ctx context.Context, userID, deviceID uuid.UUID) error
}
