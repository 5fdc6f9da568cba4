package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"petplace/internal/domain/constants"
	"petplace/internal/domain/entity"
	"petplace/internal/domain/service"
	mockSvc "petplace/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWith(e *echo.Echo, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setupMock  func(tokenSvc *mockSvc.MockTokenService)
		wantStatus int
		wantBody   string
	}{
		{
			name:       "missing header",
			setupMock:  func(*mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "MISSING_TOKEN",
		},
		{
			name:       "not a bearer token",
			header:     "Basic abc",
			setupMock:  func(*mockSvc.MockTokenService) {},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "INVALID_TOKEN",
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(tokenSvc *mockSvc.MockTokenService) {
				tokenSvc.EXPECT().ValidateAccessToken("good").
					Return(&service.Claims{UserID: userID, Roles: []string{"business", "bogus"}}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   userID.String() + ":business",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tt.setupMock(tokenSvc)
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			e.GET("/test", func(c echo.Context) error {
				id, ok := GetUserID(c)
				require.True(t, ok)
				roles, ok := GetRoles(c)
				require.True(t, ok)
				require.Len(t, roles, 1)

				return c.String(http.StatusOK, id.String()+":"+roles[0].String())
			}, m.Authenticate)

			rec := serveWith(e, tt.header)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAuthMiddleware_OptionalAuth(t *testing.T) {
	userID := uuid.New()
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"user"}}, nil)
	tokenSvc.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("signature is invalid"))
	m := NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.GET("/test", func(c echo.Context) error {
		viewer := GetViewer(c)
		if viewer.UserID == uuid.Nil {
			return c.String(http.StatusOK, "anonymous")
		}

		return c.String(http.StatusOK, viewer.UserID.String())
	}, m.OptionalAuth)

	assert.Equal(t, "anonymous", serveWith(e, "").Body.String())
	assert.Equal(t, "anonymous", serveWith(e, "Bearer bad").Body.String())
	assert.Equal(t, userID.String(), serveWith(e, "Bearer good").Body.String())
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		roles      any
		wantStatus int
	}{
		{name: "admin allowed", roles: entity.Roles{entity.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "moderator allowed", roles: entity.Roles{entity.RoleUser, entity.RoleModerator}, wantStatus: http.StatusOK},
		{name: "plain user rejected", roles: entity.Roles{entity.RoleUser}, wantStatus: http.StatusForbidden},
		{name: "roles missing", roles: nil, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

			e := echo.New()
			setRoles := func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					if tt.roles != nil {
						c.Set(constants.ContextKeyRoles, tt.roles)
					}

					return next(c)
				}
			}
			e.GET("/test", func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			}, setRoles, m.RequireRole(entity.RoleAdmin, entity.RoleModerator))

			rec := serveWith(e, "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
