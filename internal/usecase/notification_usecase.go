package usecase

import (
	"context"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ListNotificationsInput narrows a notification listing.
type ListNotificationsInput struct {
	UnreadOnly bool
	Type       entity.NotificationType
	Page       int
	PerPage    int
}

// NotificationPage is one page of notifications with the user's unread count.
type NotificationPage struct {
	Notifications []*entity.Notification
	Pagination    entity.Pagination
	UnreadCount   int64
}

// NotificationUsecase defines the interface for notification management use cases
type NotificationUsecase interface {
	// List returns one page of the user's notifications
	List(ctx context.Context, userID uuid.UUID, input *ListNotificationsInput) (*NotificationPage, error)

	// MarkRead marks one of the user's notifications as read
	MarkRead(ctx context.Context, userID, id uuid.UUID) error

	// MarkAllRead marks every unread notification of the user and returns how many changed
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)

	// CleanupExpired deletes expired notifications and returns how many were removed
	CleanupExpired(ctx context.Context) (int64, error)
}
