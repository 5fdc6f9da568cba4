package impl

import (
	"context"
	"log/slog"

	"petplace/internal/domain/constants"
	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/domain/service"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// pushRelayService implements the PushRelayUsecase interface.
type pushRelayService struct {
	userRepo         repository.UserRepository
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
	pushService      service.PushService
	logger           *slog.Logger
}

// PushRelayServiceParams holds dependencies for PushRelayService, injected by Fx.
type PushRelayServiceParams struct {
	fx.In

	UserRepo         repository.UserRepository
	DeviceRepo       repository.DeviceRepository
	NotificationRepo repository.NotificationRepository
	PushService      service.PushService
	Logger           *slog.Logger
}

// NewPushRelayService is the constructor for pushRelayService.
func NewPushRelayService(params PushRelayServiceParams) usecase.PushRelayUsecase {
	return &pushRelayService{
		userRepo:         params.UserRepo,
		deviceRepo:       params.DeviceRepo,
		notificationRepo: params.NotificationRepo,
		pushService:      params.PushService,
		logger:           params.Logger,
	}
}

// Deliver sends the event to every active device of the recipient. Malformed events fail
// with ErrValidationFailed; any other error is worth a retry.
func (srv *pushRelayService) Deliver(ctx context.Context, event *service.NotificationEvent) (*usecase.PushResult, error) {
	notificationID, err := uuid.Parse(event.NotificationID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid notification_id")
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid user_id")
	}

	logger := logFrom(ctx, srv.logger).With(slog.String("notification_id", event.NotificationID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			logger.Info("[Worker] Recipient no longer exists")

			return &usecase.PushResult{Skipped: true}, nil
		}

		return nil, errors.Wrap(err, "failed to load recipient")
	}
	if !user.IsActive || !user.PushNotifications {
		logger.Info("[Worker] Recipient does not accept push notifications")

		return &usecase.PushResult{Skipped: true}, nil
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load devices")
	}
	if len(devices) == 0 {
		logger.Info("[Worker] Recipient has no active devices")

		return &usecase.PushResult{Skipped: true}, nil
	}

	result, invalidTokens := srv.sendBatched(ctx, logger, collectTokens(devices), event)

	if len(invalidTokens) > 0 {
		deleted, err := srv.deviceRepo.DeleteDevicesByTokens(ctx, invalidTokens)
		if err != nil {
			logger.Warn("[Worker] Failed to delete invalid devices", slog.Any("error", err))
		} else {
			logger.Info("[Worker] Deleted invalid devices", slog.Int64("count", deleted))
		}
	}

	if result.Sent > 0 {
		if err := srv.notificationRepo.MarkPushSent(ctx, notificationID); err != nil {
			return nil, errors.Wrap(err, "failed to mark notification as pushed")
		}
	}

	logger.Info("[Worker] Notification sending completed",
		slog.Int("total_sent", result.Sent),
		slog.Int("total_failed", result.Failed),
		slog.Int("invalid_tokens", result.InvalidTokens),
	)

	return result, nil
}

// sendBatched sends in chunks of the FCM multicast limit. A failed chunk counts all its tokens as failed.
func (srv *pushRelayService) sendBatched(ctx context.Context, logger *slog.Logger, tokens []string, event *service.NotificationEvent) (*usecase.PushResult, []string) {
	result := &usecase.PushResult{}
	var invalidTokens []string

	for idx := 0; idx < len(tokens); idx += constants.FCMBatchLimit {
		end := min(idx+constants.FCMBatchLimit, len(tokens))
		batch := tokens[idx:end]

		sent, failed, invalid, err := srv.pushService.SendBatchNotification(ctx, batch, event.Title, event.Message, event.Data)
		if err != nil {
			logger.Error("[Worker] Failed to send batch",
				slog.Int("batch_start", idx),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			result.Failed += len(batch)

			continue
		}

		result.Sent += sent
		result.Failed += failed
		invalidTokens = append(invalidTokens, invalid...)
	}
	result.InvalidTokens = len(invalidTokens)

	return result, invalidTokens
}

func collectTokens(devices []*entity.UserDevice) []string {
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	return tokens
}
