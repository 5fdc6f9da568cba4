// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// CreateNotification persists a new notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationByID retrieves a notification by its unique ID.
	FindNotificationByID(ctx context.Context, id uuid.UUID) (*entity.Notification, error)

	// FindNotificationsByUser returns one page of a user's unexpired notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, filter entity.NotificationFilter, page entity.Page) ([]*entity.Notification, int64, error)

	// CountUnread returns the number of unread, unexpired notifications of a user.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead flags one notification as read.
	MarkRead(ctx context.Context, id uuid.UUID, at time.Time) error

	// MarkAllRead flags every unread notification of a user and returns how many changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID, at time.Time) (int64, error)

	// MarkPushSent records that the push relay delivered the notification.
	MarkPushSent(ctx context.Context, id uuid.UUID) error

	// DeleteExpired removes notifications that expired before now and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
