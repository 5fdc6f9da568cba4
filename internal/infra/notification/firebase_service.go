package notification

import (
	"context"
	"log/slog"

	"petplace/config"
	"petplace/internal/domain/constants"
	"petplace/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// multicastClient is the subset of *messaging.Client used for delivery.
type multicastClient interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client         multicastClient
	logger         *slog.Logger
	isInvalidToken func(error) bool
}

// PushServiceParams holds dependencies for the push service, injected by Fx
type PushServiceParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates a Firebase backed push service, or a no-op one when Firebase is not configured.
func NewPushService(params PushServiceParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	if cfg == nil || cfg.CredentialsPath == "" {
		params.Logger.Info("Firebase not configured, push notifications disabled")

		return &noopPushService{logger: params.Logger}, nil
	}

	return NewFirebaseService(params.Ctx, cfg, params.Logger)
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (service.PushService, error) {
	var appCfg *firebase.Config
	if cfg.ProjectID != "" {
		appCfg = &firebase.Config{ProjectID: cfg.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appCfg, option.WithCredentialsFile(cfg.CredentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client, logger), nil
}

func newFirebaseService(client multicastClient, logger *slog.Logger) *firebaseService {
	return &firebaseService{
		client:         client,
		logger:         logger,
		isInvalidToken: isInvalidTokenError,
	}
}

// SendBatchNotification sends push notifications to any number of device tokens,
// splitting them into multicast requests of at most FCMBatchLimit tokens.
func (s *firebaseService) SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error) {
	invalidTokens = make([]string, 0)
	if len(tokens) == 0 {
		return 0, 0, invalidTokens, nil
	}

	for start := 0; start < len(tokens); start += constants.FCMBatchLimit {
		batch := tokens[start:min(start+constants.FCMBatchLimit, len(tokens))]

		response, sendErr := s.client.SendEachForMulticast(ctx, &messaging.MulticastMessage{
			Tokens: batch,
			Notification: &messaging.Notification{
				Title: title,
				Body:  body,
			},
			Data: data,
		})
		if sendErr != nil {
			return successCount, failureCount, invalidTokens, errors.Wrap(sendErr, "failed to send multicast notification")
		}

		successCount += response.SuccessCount
		failureCount += response.FailureCount

		for idx, sendResponse := range response.Responses {
			if sendResponse.Error != nil && s.isInvalidToken(sendResponse.Error) {
				invalidTokens = append(invalidTokens, batch[idx])
			}
		}
	}

	s.logger.Debug("Multicast delivery finished",
		slog.Int("tokens", len(tokens)),
		slog.Int("success", successCount),
		slog.Int("failure", failureCount),
		slog.Int("invalid", len(invalidTokens)),
	)

	return successCount, failureCount, invalidTokens, nil
}

// isInvalidTokenError reports errors caused by an invalid or unregistered token.
func isInvalidTokenError(err error) bool {
	return messaging.IsInvalidArgument(err) || messaging.IsUnregistered(err)
}

// noopPushService drops every notification.
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendBatchNotification(_ context.Context, tokens []string, title, _ string, _ map[string]string) (int, int, []string, error) {
	s.logger.Debug("[NoopPush] Push disabled, skipping",
		slog.String("title", title),
		slog.Int("tokens", len(tokens)),
	)

	return 0, 0, []string{}, nil
}
