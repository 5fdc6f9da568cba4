package pubsub

import (
	"encoding/json"

	"petplace/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	attrNotificationID = "notification_id"
	attrUserID         = "user_id"
	attrType           = "type"
	attrPriority       = "priority"
	attrRequestID      = "request_id"
)

// encodeEvent returns the message payload and the attributes subscribers filter on.
func encodeEvent(event *service.NotificationEvent) ([]byte, map[string]string, error) {
	if event == nil {
		return nil, nil, errors.New("notification event is nil")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return nil, nil, errors.Wrap(err, "encode notification event")
	}

	attributes := map[string]string{
		attrNotificationID: event.NotificationID,
		attrUserID:         event.UserID,
		attrType:           event.Type,
	}
	if event.Priority != "" {
		attributes[attrPriority] = event.Priority
	}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}

	return data, attributes, nil
}
