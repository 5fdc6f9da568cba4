package impl

import (
	"context"
	"log/slog"

	"petplace/config"
	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type notificationService struct {
	notificationRepo repository.NotificationRepository
	pager            pager
	now              clock
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Config           *config.Config
	Logger           *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		pager:            newPager(params.Config),
		now:              utcNow,
		logger:           params.Logger,
	}
}

// List returns one page of the user's notifications with the unread count.
func (s *notificationService) List(ctx context.Context, userID uuid.UUID, input *usecase.ListNotificationsInput) (*usecase.NotificationPage, error) {
	page := s.pager.page(input.Page, input.PerPage)
	filter := entity.NotificationFilter{UnreadOnly: input.UnreadOnly, Type: input.Type}

	notifications, total, err := s.notificationRepo.FindNotificationsByUser(ctx, userID, filter, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications")
	}

	unread, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &usecase.NotificationPage{
		Notifications: nonNil(notifications),
		Pagination:    entity.NewPagination(page, total),
		UnreadCount:   unread,
	}, nil
}

// MarkRead marks one of the user's notifications as read. Notifications of other users are reported as not found.
func (s *notificationService) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	notification, err := s.notificationRepo.FindNotificationByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to find notification")
	}
	if notification.UserID != userID {
		return domainerrors.ErrNotificationNotFound
	}
	if notification.IsRead {
		return nil
	}

	if err := s.notificationRepo.MarkRead(ctx, id, s.now()); err != nil {
		return errors.Wrap(err, "failed to mark notification as read")
	}

	return nil
}

// MarkAllRead marks every unread notification of the user.
func (s *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, userID, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark notifications as read")
	}
	logFrom(ctx, s.logger).Debug("Marked notifications as read", slog.Any("userID", userID), slog.Int64("count", updated))

	return updated, nil
}

// CleanupExpired deletes notifications past their expiry.
func (s *notificationService) CleanupExpired(ctx context.Context) (int64, error) {
	removed, err := s.notificationRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired notifications")
	}
	if removed > 0 {
		s.logger.Info("Removed expired notifications", slog.Int64("count", removed))
	}

	return removed, nil
}
