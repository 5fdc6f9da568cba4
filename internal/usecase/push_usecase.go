package usecase

import (
	"context"

	"petplace/internal/domain/service"
)

// PushResult summarizes one relayed notification.
type PushResult struct {
	Sent          int
	Failed        int
	InvalidTokens int
	Skipped       bool
}

// PushRelayUsecase fans a notification event out to the recipient's devices.
type PushRelayUsecase interface {
	Deliver(ctx context.Context, event *service.NotificationEvent) (*PushResult, error)
}
