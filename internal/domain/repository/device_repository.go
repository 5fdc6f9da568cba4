package repository

import (
	"context"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrDeviceNotFound  = errors.New("device not found")
	ErrDuplicateDevice = errors.New("device already exists")
)

// DeviceRepository stores the push targets of each user. (user_id, device_id) is unique.
type DeviceRepository interface {
	CreateDevice(ctx context.Context, device *entity.UserDevice) error
	FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error)
	// FindDevicesByUser includes inactive devices so re-registration can revive them.
	FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error)
	UpdateDevice(ctx context.Context, device *entity.UserDevice) error
	DeleteDevice(ctx context.Context, id uuid.UUID) error

	// DeleteDevicesByTokens prunes tokens FCM reported as unregistered and returns how many rows went.
	DeleteDevicesByTokens(ctx context.Context, tokens []string) (int64, error)
}
