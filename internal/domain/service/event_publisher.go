package service

import (
	"context"
)

// NotificationEvent is the message relayed to the push worker when a notification is created.
type NotificationEvent struct {
	RequestID      string            `json:"request_id,omitempty"` // For distributed tracing
	NotificationID string            `json:"notification_id"`
	UserID         string            `json:"user_id"`
	Title          string            `json:"title"`
	Message        string            `json:"message"`
	Type           string            `json:"type"`
	Priority       string            `json:"priority,omitempty"`
	Data           map[string]string `json:"data,omitempty"` // Forwarded as the FCM data payload
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationEvent publishes a notification event for async processing
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
