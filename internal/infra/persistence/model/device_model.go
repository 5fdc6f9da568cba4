package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel mirrors 'user_devices'. Deleting a device removes the row; deactivation keeps it.
type UserDeviceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_device_user_device,priority:1"`
	DeviceID  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_device_user_device,priority:2"`
	FCMToken  string    `gorm:"type:text;not null;index"`
	Platform  string    `gorm:"type:varchar(10);not null;check:chk_user_devices_platform,platform IN ('ios','android','web')"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (UserDeviceModel) TableName() string {
	return "user_devices"
}
