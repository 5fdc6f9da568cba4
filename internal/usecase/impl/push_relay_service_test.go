package impl

import (
	"context"
	"fmt"
	"testing"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/domain/service"
	mockRepo "petplace/internal/mocks/repository"
	mockSvc "petplace/internal/mocks/service"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushRelayFixtures holds all test dependencies for push relay tests.
type pushRelayFixtures struct {
	service          usecase.PushRelayUsecase
	userRepo         *mockRepo.MockUserRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	notificationRepo *mockRepo.MockNotificationRepository
	pushService      *mockSvc.MockPushService
}

func createTestPushRelayService(t *testing.T) pushRelayFixtures {
	fx := pushRelayFixtures{
		userRepo:         mockRepo.NewMockUserRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		pushService:      mockSvc.NewMockPushService(t),
	}

	fx.service = NewPushRelayService(PushRelayServiceParams{
		UserRepo:         fx.userRepo,
		DeviceRepo:       fx.deviceRepo,
		NotificationRepo: fx.notificationRepo,
		PushService:      fx.pushService,
		Logger:           discardLogger(),
	})

	return fx
}

func pushEvent(userID, notificationID uuid.UUID) *service.NotificationEvent {
	return &service.NotificationEvent{
		NotificationID: notificationID.String(),
		UserID:         userID.String(),
		Title:          "Business approved",
		Message:        "Bark Cafe is now listed in the directory.",
		Type:           "business",
		Data:           map[string]string{"type": "business"},
	}
}

func devicesWithTokens(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, n)
	for i := range devices {
		devices[i] = &entity.UserDevice{ID: uuid.New(), UserID: userID, FCMToken: fmt.Sprintf("token-%d", i), IsActive: true}
	}

	return devices
}

func TestPushRelayService_Deliver(t *testing.T) {
	fx := createTestPushRelayService(t)

	ctx := context.Background()
	userID, notificationID := uuid.New(), uuid.New()
	event := pushEvent(userID, notificationID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, IsActive: true, PushNotifications: true}, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, 2), nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-0", "token-1"}, event.Title, event.Message, event.Data).
		Return(1, 1, []string{"token-1"}, nil)
	fx.deviceRepo.EXPECT().DeleteDevicesByTokens(ctx, []string{"token-1"}).Return(int64(1), nil)
	fx.notificationRepo.EXPECT().MarkPushSent(ctx, notificationID).Return(nil)

	result, err := fx.service.Deliver(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, &usecase.PushResult{Sent: 1, Failed: 1, InvalidTokens: 1}, result)
}

func TestPushRelayService_Deliver_Batches(t *testing.T) {
	fx := createTestPushRelayService(t)

	ctx := context.Background()
	userID, notificationID := uuid.New(), uuid.New()
	event := pushEvent(userID, notificationID)

	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, IsActive: true, PushNotifications: true}, nil)
	fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(devicesWithTokens(userID, 501), nil)
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 500 }), mock.Anything, mock.Anything, mock.Anything).
		Return(500, 0, nil, nil).Once()
	fx.pushService.EXPECT().
		SendBatchNotification(ctx, []string{"token-500"}, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("fcm unavailable")).Once()
	fx.notificationRepo.EXPECT().MarkPushSent(ctx, notificationID).Return(nil)

	result, err := fx.service.Deliver(ctx, event)

	require.NoError(t, err)
	assert.Equal(t, 500, result.Sent)
	assert.Equal(t, 1, result.Failed)
}

func TestPushRelayService_Deliver_Skips(t *testing.T) {
	userID, notificationID := uuid.New(), uuid.New()

	tests := []struct {
		name  string
		setup func(ctx context.Context, fx pushRelayFixtures)
	}{
		{
			name: "recipient deleted",
			setup: func(ctx context.Context, fx pushRelayFixtures) {
				fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "push disabled",
			setup: func(ctx context.Context, fx pushRelayFixtures) {
				fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, IsActive: true}, nil)
			},
		},
		{
			name: "no devices",
			setup: func(ctx context.Context, fx pushRelayFixtures) {
				fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, IsActive: true, PushNotifications: true}, nil)
				fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestPushRelayService(t)
			ctx := context.Background()
			tt.setup(ctx, fx)

			result, err := fx.service.Deliver(ctx, pushEvent(userID, notificationID))

			require.NoError(t, err)
			assert.True(t, result.Skipped)
		})
	}
}

func TestPushRelayService_Deliver_Errors(t *testing.T) {
	t.Run("malformed ids are not retried", func(t *testing.T) {
		fx := createTestPushRelayService(t)

		_, err := fx.service.Deliver(context.Background(), &service.NotificationEvent{NotificationID: "nope", UserID: uuid.NewString()})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("store failure is returned for retry", func(t *testing.T) {
		fx := createTestPushRelayService(t)
		ctx := context.Background()
		userID := uuid.New()

		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("connection reset"))

		_, err := fx.service.Deliver(ctx, pushEvent(userID, uuid.New()))

		require.Error(t, err)
		assert.False(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
