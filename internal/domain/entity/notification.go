package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType groups notifications by origin.
type NotificationType string

const (
	NotificationTypeReview    NotificationType = "review"
	NotificationTypeBlog      NotificationType = "blog"
	NotificationTypeBusiness  NotificationType = "business"
	NotificationTypeSystem    NotificationType = "system"
	NotificationTypeMarketing NotificationType = "marketing"
	NotificationTypeAffiliate NotificationType = "affiliate"
)

// IsValid checks if the type is a known value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeReview, NotificationTypeBlog, NotificationTypeBusiness,
		NotificationTypeSystem, NotificationTypeMarketing, NotificationTypeAffiliate:
		return true
	default:
		return false
	}
}

// NotificationPriority orders notifications for display and push.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

// Notification is an in-app message addressed to one user.
type Notification struct {
	ID                uuid.UUID            `json:"id"`
	UserID            uuid.UUID            `json:"user_id"`
	Title             string               `json:"title"`
	Message           string               `json:"message"`
	Type              NotificationType     `json:"type"`
	Priority          NotificationPriority `json:"priority"`
	RelatedEntityType string               `json:"related_entity_type,omitempty"`
	RelatedEntityID   *uuid.UUID           `json:"related_entity_id,omitempty"`
	ActionURL         string               `json:"action_url,omitempty"`
	IsRead            bool                 `json:"is_read"`
	ReadAt            *time.Time           `json:"read_at,omitempty"`
	IsPushSent        bool                 `json:"is_push_sent"`
	CreatedAt         time.Time            `json:"created_at"`
	ExpiresAt         *time.Time           `json:"expires_at,omitempty"`
}

// IsExpired reports whether the notification has passed its expiry at now.
func (n *Notification) IsExpired(now time.Time) bool {
	return n.ExpiresAt != nil && now.After(*n.ExpiresAt)
}

// NotificationFilter narrows a notification listing.
type NotificationFilter struct {
	UnreadOnly bool
	Type       NotificationType
}
