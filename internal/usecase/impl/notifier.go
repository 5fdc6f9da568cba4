package impl

import (
	"context"
	"log/slog"
	"time"

	"petplace/config"
	deliverycontext "petplace/internal/delivery/context"
	"petplace/internal/domain/entity"
	"petplace/internal/domain/repository"
	"petplace/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notice describes a notification to create for one recipient.
type notice struct {
	UserID            uuid.UUID
	Title             string
	Message           string
	Type              entity.NotificationType
	Priority          entity.NotificationPriority
	RelatedEntityType string
	RelatedEntityID   *uuid.UUID
	ActionURL         string
}

// notifier writes notifications inside the caller's transaction and relays them to the
// push worker once the transaction has committed.
type notifier struct {
	publisher service.EventPublisher
	ttl       time.Duration
	logger    *slog.Logger
}

func newNotifier(cfg *config.Config, publisher service.EventPublisher, logger *slog.Logger) *notifier {
	var ttl time.Duration
	if cfg != nil && cfg.Notification != nil {
		ttl = cfg.Notification.DefaultTTL
	}

	return &notifier{publisher: publisher, ttl: ttl, logger: logger}
}

// create persists a notification through the transaction-bound repository.
func (n *notifier) create(ctx context.Context, repo repository.NotificationRepository, in notice, now time.Time) (*entity.Notification, error) {
	priority := in.Priority
	if priority == "" {
		priority = entity.PriorityNormal
	}

	notification := &entity.Notification{
		UserID:            in.UserID,
		Title:             in.Title,
		Message:           in.Message,
		Type:              in.Type,
		Priority:          priority,
		RelatedEntityType: in.RelatedEntityType,
		RelatedEntityID:   in.RelatedEntityID,
		ActionURL:         in.ActionURL,
		CreatedAt:         now,
	}
	if n.ttl > 0 {
		expiresAt := now.Add(n.ttl)
		notification.ExpiresAt = &expiresAt
	}

	if err := repo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	return notification, nil
}

// publish relays committed notifications. Failures are logged and never fail the request.
func (n *notifier) publish(ctx context.Context, notifications ...*entity.Notification) {
	requestID := deliverycontext.RequestIDFrom(ctx)

	for _, notification := range notifications {
		if notification == nil {
			continue
		}

		event := &service.NotificationEvent{
			RequestID:      requestID,
			NotificationID: notification.ID.String(),
			UserID:         notification.UserID.String(),
			Title:          notification.Title,
			Message:        notification.Message,
			Type:           string(notification.Type),
			Priority:       string(notification.Priority),
			Data:           eventData(notification),
		}

		if err := n.publisher.PublishNotificationEvent(ctx, event); err != nil {
			logFrom(ctx, n.logger).Warn("Failed to publish notification event",
				slog.String("notification_id", event.NotificationID),
				slog.Any("error", err),
			)
		}
	}
}

func eventData(notification *entity.Notification) map[string]string {
	data := map[string]string{
		"notification_id": notification.ID.String(),
		"type":            string(notification.Type),
	}
	if notification.RelatedEntityType != "" {
		data["related_entity_type"] = notification.RelatedEntityType
	}
	if notification.RelatedEntityID != nil {
		data["related_entity_id"] = notification.RelatedEntityID.String()
	}
	if notification.ActionURL != "" {
		data["action_url"] = notification.ActionURL
	}

	return data
}
