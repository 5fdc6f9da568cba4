package handler

import (
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"petplace/config"
	"petplace/internal/domain/constants"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/service"
	mockUsecase "petplace/internal/mocks/usecase"
	"petplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestPushHandler(t *testing.T) (*PushHandler, *mockUsecase.MockPushRelayUsecase) {
	relay := mockUsecase.NewMockPushRelayUsecase(t)
	cfg := &config.Config{}
	cfg.Env.Env = constants.EnvDevelop

	h := NewPushHandler(PushHandlerParams{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Relay:  relay,
	})

	return h, relay
}

func pushBody(data string, attributes string) string {
	return `{"message":{"data":"` + data + `","attributes":` + attributes + `,"messageId":"m-1"},"subscription":"projects/p/subscriptions/s"}`
}

func encodeEvent(raw string) string {
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

func servePush(h *PushHandler, body string) *httptest.ResponseRecorder {
	e := echo.New()
	e.POST("/pubsub/push", h.HandlePush)

	req := httptest.NewRequest(http.MethodPost, "/pubsub/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

const sampleEvent = `{"notification_id":"n-1","user_id":"u-1","title":"New review","message":"Someone reviewed your place","type":"review"}`

func TestPushHandler_HandlePush(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(relay *mockUsecase.MockPushRelayUsecase)
		wantStatus int
	}{
		{
			name: "delivered",
			body: pushBody(encodeEvent(sampleEvent), `{}`),
			setupMock: func(relay *mockUsecase.MockPushRelayUsecase) {
				relay.EXPECT().Deliver(mock.Anything, mock.MatchedBy(func(event *service.NotificationEvent) bool {
					return event.NotificationID == "n-1" && event.UserID == "u-1" && event.Type == "review"
				})).Return(&usecase.PushResult{Sent: 2}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "invalid base64",
			body:       pushBody("%%%", `{}`),
			setupMock:  func(*mockUsecase.MockPushRelayUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "payload is not an event",
			body:       pushBody(encodeEvent("not json"), `{}`),
			setupMock:  func(*mockUsecase.MockPushRelayUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed envelope",
			body:       `{"message":`,
			setupMock:  func(*mockUsecase.MockPushRelayUsecase) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "event rejected by relay",
			body: pushBody(encodeEvent(sampleEvent), `{}`),
			setupMock: func(relay *mockUsecase.MockPushRelayUsecase) {
				relay.EXPECT().Deliver(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrValidationFailed.WithDetails("invalid user_id"))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "transient failure is retried",
			body: pushBody(encodeEvent(sampleEvent), `{}`),
			setupMock: func(relay *mockUsecase.MockPushRelayUsecase) {
				relay.EXPECT().Deliver(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, relay := newTestPushHandler(t)
			tt.setupMock(relay)

			rec := servePush(h, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestPushHandler_VerifiesToken(t *testing.T) {
	h, _ := newTestPushHandler(t)
	h.verifyPushAuth = true
	h.verifyToken = func(*http.Request) error { return errors.New("bad audience") }

	rec := servePush(h, pushBody(encodeEvent(sampleEvent), `{}`))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPushHandler_ExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t)

	t.Run("attribute wins", func(t *testing.T) {
		msg := &PubSubMessage{}
		msg.Message.Attributes = map[string]string{"request_id": "from-attr"}

		got := h.extractRequestID(t.Context(), msg, &service.NotificationEvent{RequestID: "from-event"})

		assert.Equal(t, "from-attr", got)
	})

	t.Run("event field", func(t *testing.T) {
		got := h.extractRequestID(t.Context(), &PubSubMessage{}, &service.NotificationEvent{RequestID: "from-event"})

		assert.Equal(t, "from-event", got)
	})

	t.Run("generated", func(t *testing.T) {
		got := h.extractRequestID(t.Context(), &PubSubMessage{}, &service.NotificationEvent{})

		assert.Len(t, got, 36)
	})
}
