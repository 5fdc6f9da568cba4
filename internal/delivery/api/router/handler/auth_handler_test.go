package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	mockUsecase "petplace/internal/mocks/usecase"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(authUC *mockUsecase.MockAuthUsecase)
		wantStatus int
		wantCode   string
	}{
		{
			name: "success",
			body: `{"name":"Mina","email":"mina@example.com","password":"Secret123","pet_types":["dog"]}`,
			setupMock: func(authUC *mockUsecase.MockAuthUsecase) {
				authUC.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
					Name:     "Mina",
					Email:    "mina@example.com",
					Password: "Secret123",
					PetTypes: []string{"dog"},
				}).Return(&usecase.AuthOutput{
					AccessToken:  "access",
					RefreshToken: "refresh",
					ExpiresIn:    900,
					User:         &entity.User{ID: uuid.New(), Email: "mina@example.com", Role: entity.RoleUser},
				}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing email",
			body:       `{"name":"Mina","password":"Secret123"}`,
			setupMock:  func(*mockUsecase.MockAuthUsecase) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VALIDATION_FAILED",
		},
		{
			name: "duplicate email",
			body: `{"name":"Mina","email":"mina@example.com","password":"Secret123"}`,
			setupMock: func(authUC *mockUsecase.MockAuthUsecase) {
				authUC.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantCode:   "USER_ALREADY_EXISTS",
		},
		{
			name: "weak password",
			body: `{"name":"Mina","email":"mina@example.com","password":"short"}`,
			setupMock: func(authUC *mockUsecase.MockAuthUsecase) {
				authUC.EXPECT().Register(mock.Anything, mock.Anything).
					Return(nil, domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters"))
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "PASSWORD_STRENGTH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			authUC := mockUsecase.NewMockAuthUsecase(t)
			tt.setupMock(authUC)
			h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})
			e := newTestEcho()
			e.POST("/api/auth/register", h.Register)

			rec := doRequest(e, http.MethodPost, "/api/auth/register", tt.body)

			require.Equal(t, tt.wantStatus, rec.Code)
			env := decodeEnvelope(t, rec)
			if tt.wantCode != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantCode, env.Error.Code)
				return
			}

			var auth AuthResponse
			require.NoError(t, json.Unmarshal(env.Data, &auth))
			assert.Equal(t, "Bearer", auth.TokenType)
			assert.Equal(t, "access", auth.AccessToken)
			assert.Equal(t, int64(900), auth.ExpiresIn)
			assert.Equal(t, "mina@example.com", auth.User.Email)
		})
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})
	e := newTestEcho()
	e.POST("/api/auth/login", h.Login)

	authUC.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "mina@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)

	rec := doRequest(e, http.MethodPost, "/api/auth/login", `{"email":"mina@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "INVALID_CREDENTIALS", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestAuthHandler_Refresh(t *testing.T) {
	authUC := mockUsecase.NewMockAuthUsecase(t)
	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})
	e := newTestEcho()
	e.POST("/api/auth/refresh", h.Refresh)

	authUC.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "refresh"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "next", ExpiresIn: 900}, nil)

	rec := doRequest(e, http.MethodPost, "/api/auth/refresh", `{"refresh_token":"refresh"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var token TokenResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &token))
	assert.Equal(t, "next", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
}

func TestAuthHandler_Me(t *testing.T) {
	t.Run("requires authentication", func(t *testing.T) {
		h := NewAuthHandler(AuthHandlerParams{AuthUC: mockUsecase.NewMockAuthUsecase(t)})
		e := newTestEcho()
		e.GET("/api/auth/me", h.Me)

		rec := doRequest(e, http.MethodGet, "/api/auth/me", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("returns the caller", func(t *testing.T) {
		authUC := mockUsecase.NewMockAuthUsecase(t)
		h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC})
		userID := uuid.New()
		e := newTestEcho()
		e.Use(asUser(userID))
		e.GET("/api/auth/me", h.Me)

		authUC.EXPECT().Me(mock.Anything, userID).Return(&entity.User{ID: userID, Name: "Mina"}, nil)

		rec := doRequest(e, http.MethodGet, "/api/auth/me", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var user entity.User
		require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &user))
		assert.Equal(t, userID, user.ID)
	})
}
