package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table.
type NotificationModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index:idx_notification_user_read"`
	Title             string     `gorm:"type:varchar(200);not null"`
	Message           string     `gorm:"type:text;not null"`
	Type              string     `gorm:"type:varchar(20);not null;index"`
	Priority          string     `gorm:"type:varchar(10);not null"`
	RelatedEntityType string     `gorm:"type:varchar(50)"`
	RelatedEntityID   *uuid.UUID `gorm:"type:uuid"`
	ActionURL         string     `gorm:"type:varchar(255)"`
	IsRead            bool       `gorm:"not null;index:idx_notification_user_read"`
	ReadAt            *time.Time
	IsPushSent        bool `gorm:"not null"`
	CreatedAt         time.Time
	ExpiresAt         *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}
