package router

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"petplace/config"
	"petplace/internal/delivery/api/middleware"
	"petplace/internal/delivery/api/router/handler"
	"petplace/internal/domain/service"
	"petplace/internal/infra/metrics"
	mockSvc "petplace/internal/mocks/service"
	mockUsecase "petplace/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func newTestRouter(t *testing.T, tokenSvc service.TokenService) *echo.Echo {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	businessUC := mockUsecase.NewMockBusinessUsecase(t)
	reviewUC := mockUsecase.NewMockReviewUsecase(t)

	r := NewRouter(RouterParams{
		AuthHandler:         handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t), Logger: logger}),
		UserHandler:         handler.NewUserHandler(handler.UserHandlerParams{ProfileUC: mockUsecase.NewMockProfileUsecase(t), ReviewUC: reviewUC, Logger: logger}),
		DeviceHandler:       handler.NewDeviceHandler(handler.DeviceHandlerParams{DeviceUC: mockUsecase.NewMockDeviceUsecase(t), Logger: logger}),
		NotificationHandler: handler.NewNotificationHandler(handler.NotificationHandlerParams{NotificationUC: mockUsecase.NewMockNotificationUsecase(t), Logger: logger}),
		BusinessHandler:     handler.NewBusinessHandler(handler.BusinessHandlerParams{BusinessUC: businessUC, ReviewUC: reviewUC, Logger: logger}),
		ReviewHandler:       handler.NewReviewHandler(handler.ReviewHandlerParams{ReviewUC: reviewUC, Logger: logger}),
		BlogHandler:         handler.NewBlogHandler(handler.BlogHandlerParams{BlogUC: mockUsecase.NewMockBlogUsecase(t), Logger: logger}),
		AffiliateHandler:    handler.NewAffiliateHandler(handler.AffiliateHandlerParams{AffiliateUC: mockUsecase.NewMockAffiliateUsecase(t), Logger: logger}),
		TaxonomyHandler:     handler.NewTaxonomyHandler(handler.TaxonomyHandlerParams{TaxonomyUC: mockUsecase.NewMockTaxonomyUsecase(t), Logger: logger}),
		ImageHandler:        handler.NewImageHandler(handler.ImageHandlerParams{ImageUC: mockUsecase.NewMockImageUsecase(t), Logger: logger}),
		AuthMiddleware:      middleware.NewAuthMiddleware(tokenSvc),
		Metrics:             metrics.New(),
		Config:              &config.Config{Metrics: &config.MetricsConfig{Enabled: true}},
	})

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	r.RegisterRoutes(e)
	r.RegisterMetricsRoute(e)

	return e
}

func get(e *echo.Echo, method, target, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_PublicRoutes(t *testing.T) {
	e := newTestRouter(t, mockSvc.NewMockTokenService(t))

	assert.Equal(t, http.StatusOK, get(e, http.MethodGet, "/health", "").Code)

	metricsRec := get(e, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, metricsRec.Code)
	assert.Contains(t, metricsRec.Body.String(), "go_goroutines")
}

func TestRouter_AdminRoutes(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("user").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"user"}}, nil).Maybe()
	tokenSvc.EXPECT().ValidateAccessToken("moderator").Return(&service.Claims{UserID: uuid.New(), Roles: []string{"moderator"}}, nil).Maybe()
	e := newTestRouter(t, tokenSvc)

	tests := []struct {
		name       string
		method     string
		target     string
		token      string
		wantStatus int
	}{
		{"anonymous", http.MethodPut, "/api/admin/businesses/" + uuid.NewString() + "/status", "", http.StatusUnauthorized},
		{"plain user", http.MethodPut, "/api/admin/reviews/" + uuid.NewString() + "/status", "user", http.StatusForbidden},
		{"moderator cannot create categories", http.MethodPost, "/api/admin/categories", "moderator", http.StatusForbidden},
		{"moderator reaches moderation", http.MethodPut, "/api/admin/reviews/not-a-uuid/status", "moderator", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(e, tt.method, tt.target, tt.token)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRouter_AffiliateLinkReadsRequireAuthentication(t *testing.T) {
	e := newTestRouter(t, mockSvc.NewMockTokenService(t))

	for _, target := range []string{
		"/api/affiliate/links",
		"/api/affiliate/links?author_id=" + uuid.NewString(),
		"/api/affiliate/links/" + uuid.NewString(),
	} {
		t.Run(target, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, get(e, http.MethodGet, target, "").Code)
		})
	}
}

func TestRouter_DeactivateRequiresAuthentication(t *testing.T) {
	e := newTestRouter(t, mockSvc.NewMockTokenService(t))

	rec := get(e, http.MethodPut, "/api/users/deactivate", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
