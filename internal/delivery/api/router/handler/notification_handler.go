package handler

import (
	"log/slog"
	"net/http"

	"petplace/internal/delivery/api/response"
	"petplace/internal/domain/entity"
	"petplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		uc:     params.NotificationUC,
		logger: params.Logger,
	}
}

// ListNotificationsQuery filters the notification inbox
type ListNotificationsQuery struct {
	PageQuery
	UnreadOnly bool   `query:"unread_only"`
	Type       string `query:"type"`
}

// NotificationListResponse is one inbox page with the unread counter
type NotificationListResponse struct {
	Items       []*entity.Notification `json:"items"`
	Pagination  entity.Pagination      `json:"pagination"`
	UnreadCount int64                  `json:"unread_count"`
}

// List returns the caller's notifications
func (h *NotificationHandler) List(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	var query ListNotificationsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	page, err := h.uc.List(c.Request().Context(), userID, &usecase.ListNotificationsInput{
		UnreadOnly: query.UnreadOnly,
		Type:       entity.NotificationType(query.Type),
		Page:       query.Page,
		PerPage:    query.PerPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, &NotificationListResponse{
		Items:       page.Notifications,
		Pagination:  page.Pagination,
		UnreadCount: page.UnreadCount,
	}, "")
}

// MarkRead marks one notification as read
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), userID, id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead marks every unread notification as read
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated_count": updated}, "All notifications marked as read")
}
