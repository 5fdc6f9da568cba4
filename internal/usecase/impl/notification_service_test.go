package impl

import (
	"context"
	"testing"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	mockRepo "petplace/internal/mocks/repository"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	service          usecase.NotificationUsecase
	notificationRepo *mockRepo.MockNotificationRepository
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{
		NotificationRepo: notificationRepo,
		Config:           testConfig(),
		Logger:           discardLogger(),
	})
	service.(*notificationService).now = fixedClock

	return notificationServiceFixtures{
		service:          service,
		notificationRepo: notificationRepo,
	}
}

func TestNotificationService_List(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()
	notifications := []*entity.Notification{{ID: uuid.New(), UserID: userID}}

	fx.notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID,
			entity.NotificationFilter{UnreadOnly: true, Type: entity.NotificationTypeReview},
			entity.Page{Page: 2, PerPage: 50}).
		Return(notifications, int64(51), nil)
	fx.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(51), nil)

	page, err := fx.service.List(ctx, userID, &usecase.ListNotificationsInput{
		UnreadOnly: true,
		Type:       entity.NotificationTypeReview,
		Page:       2,
		PerPage:    500,
	})

	require.NoError(t, err)
	assert.Equal(t, notifications, page.Notifications)
	assert.Equal(t, int64(51), page.UnreadCount)
	assert.Equal(t, 2, page.Pagination.Pages)
	assert.False(t, page.Pagination.HasNext)
	assert.True(t, page.Pagination.HasPrev)
}

func TestNotificationService_MarkRead(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	t.Run("marks own notification", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, id).Return(&entity.Notification{ID: id, UserID: userID}, nil)
		fx.notificationRepo.EXPECT().MarkRead(ctx, id, fixedNow).Return(nil)

		require.NoError(t, fx.service.MarkRead(ctx, userID, id))
	})

	t.Run("already read is a no-op", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, id).Return(&entity.Notification{ID: id, UserID: userID, IsRead: true}, nil)

		require.NoError(t, fx.service.MarkRead(ctx, userID, id))
	})

	t.Run("other user's notification", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, id).Return(&entity.Notification{ID: id, UserID: uuid.New()}, nil)

		err := fx.service.MarkRead(ctx, userID, id)

		assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
	})

	t.Run("missing notification", func(t *testing.T) {
		fx := createTestNotificationService(t)
		ctx := context.Background()

		fx.notificationRepo.EXPECT().FindNotificationByID(ctx, id).Return(nil, repository.ErrNotificationNotFound)

		err := fx.service.MarkRead(ctx, userID, id)

		assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID, fixedNow).Return(int64(3), nil)

	updated, err := fx.service.MarkAllRead(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
}

func TestNotificationService_CleanupExpired(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	fx.notificationRepo.EXPECT().DeleteExpired(ctx, fixedNow).Return(int64(12), nil)

	removed, err := fx.service.CleanupExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(12), removed)
}

func TestNotificationService_CleanupExpired_Error(t *testing.T) {
	fx := createTestNotificationService(t)

	ctx := context.Background()
	fx.notificationRepo.EXPECT().DeleteExpired(ctx, fixedNow).Return(int64(0), errors.New("timeout"))

	_, err := fx.service.CleanupExpired(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete expired notifications")
}
