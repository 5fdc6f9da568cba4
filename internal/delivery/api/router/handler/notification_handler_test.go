package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	mockUsecase "petplace/internal/mocks/usecase"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationHandler_List(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})
	userID := uuid.New()
	e := newTestEcho()
	e.Use(asUser(userID))
	e.GET("/api/notifications", h.List)

	notificationUC.EXPECT().List(mock.Anything, userID, &usecase.ListNotificationsInput{
		UnreadOnly: true,
		Type:       entity.NotificationTypeReview,
	}).Return(&usecase.NotificationPage{
		Notifications: []*entity.Notification{{ID: uuid.New(), UserID: userID, Type: entity.NotificationTypeReview}},
		Pagination:    entity.Pagination{Page: 1, PerPage: 20, Total: 1, Pages: 1},
		UnreadCount:   3,
	}, nil)

	rec := doRequest(e, http.MethodGet, "/api/notifications?unread_only=true&type=review", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Items       []json.RawMessage `json:"items"`
		UnreadCount int64             `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &body))
	assert.Len(t, body.Items, 1)
	assert.Equal(t, int64(3), body.UnreadCount)
}

func TestNotificationHandler_MarkRead_NotFound(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})
	userID := uuid.New()
	id := uuid.New()
	e := newTestEcho()
	e.Use(asUser(userID))
	e.PUT("/api/notifications/:id/read", h.MarkRead)

	notificationUC.EXPECT().MarkRead(mock.Anything, userID, id).Return(domainerrors.ErrNotificationNotFound)

	rec := doRequest(e, http.MethodPut, "/api/notifications/"+id.String()+"/read", "")

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOTIFICATION_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}

func TestNotificationHandler_MarkAllRead(t *testing.T) {
	notificationUC := mockUsecase.NewMockNotificationUsecase(t)
	h := NewNotificationHandler(NotificationHandlerParams{NotificationUC: notificationUC})
	userID := uuid.New()
	e := newTestEcho()
	e.Use(asUser(userID))
	e.PUT("/api/notifications/read-all", h.MarkAllRead)

	notificationUC.EXPECT().MarkAllRead(mock.Anything, userID).Return(int64(4), nil)

	rec := doRequest(e, http.MethodPut, "/api/notifications/read-all", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "All notifications marked as read", env.Message)
	assert.JSONEq(t, `{"updated_count":4}`, string(env.Data))
}
