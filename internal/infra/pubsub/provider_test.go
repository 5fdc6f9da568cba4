package pubsub

import (
	"context"
	"log/slog"
	"testing"

	"petplace/config"
	"petplace/internal/domain/constants"
	"petplace/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: slog.Default(),
	}
}

func TestNewEventPublisher_Noop(t *testing.T) {
	publisher, err := NewEventPublisher(newParams(t, nil))
	require.NoError(t, err)

	assert.IsType(t, &noopPublisher{}, publisher)
	assert.NoError(t, publisher.PublishNotificationEvent(context.Background(), &service.NotificationEvent{NotificationID: "n"}))
	assert.NoError(t, publisher.Close())
}

func TestNewEventPublisher_Local(t *testing.T) {
	publisher, err := NewEventPublisher(newParams(t, &config.PubSubConfig{
		Provider:      constants.PubSubProviderLocal,
		LocalEndpoint: "http://localhost:8081/push",
	}))
	require.NoError(t, err)

	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewEventPublisher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name        string
		cfg         *config.PubSubConfig
		errContains string
	}{
		{"local without endpoint", &config.PubSubConfig{Provider: constants.PubSubProviderLocal}, "local endpoint is required"},
		{"google without project", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, TopicID: "t"}, "project ID is required"},
		{"google without topic", &config.PubSubConfig{Provider: constants.PubSubProviderGoogle, ProjectID: "p"}, "topic ID is required"},
		{"unknown provider", &config.PubSubConfig{Provider: "kafka"}, "unknown pubsub provider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEventPublisher(newParams(t, tt.cfg))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
