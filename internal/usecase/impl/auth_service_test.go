package impl

import (
	"context"
	"testing"
	"time"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/domain/service"
	mockRepo "petplace/internal/mocks/repository"
	mockSvc "petplace/internal/mocks/service"
	"petplace/internal/usecase"
	"petplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          *authService
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	googleAuth       *mockSvc.MockOAuthAuthService
	publisher        *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
		googleAuth:       mockSvc.NewMockOAuthAuthService(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
	}

	srv := NewAuthService(AuthServiceParams{
		TxManager:         fx.txManager,
		UserRepo:          fx.userRepo,
		AuthRepo:          fx.authRepo,
		RefreshTokenRepo:  fx.refreshTokenRepo,
		Hasher:            fx.hasher,
		TokenService:      fx.tokenService,
		GoogleAuthService: fx.googleAuth,
		Publisher:         fx.publisher,
		Config:            testConfig(),
		Logger:            discardLogger(),
	}).(*authService)
	srv.now = fixedClock
	fx.service = srv

	return fx
}

func (fx authServiceFixtures) expectTokens(userID uuid.UUID, refreshToken string) {
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("access-token", refreshToken, nil).Once()
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(30 * 24 * time.Hour).Once()
	fx.tokenService.EXPECT().GetAccessTokenDuration().Return(time.Hour).Once()
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID &&
				token.TokenHash == util.SHA256Hex(refreshToken) &&
				token.ExpiresAt.Equal(fixedNow.Add(30*24*time.Hour))
		})).
		Return(nil).
		Once()
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()
	input := &usecase.RegisterInput{
		Name:     "  Mina  ",
		Email:    "Mina@Example.com ",
		Password: "walkies123",
	}

	fx.hasher.EXPECT().Hash("walkies123").Return("hashed", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		txAuthRepo := mockRepo.NewMockAuthRepository(t)
		txNotificationRepo := mockRepo.NewMockNotificationRepository(t)

		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		factory.EXPECT().NewAuthRepository().Return(txAuthRepo)
		factory.EXPECT().NewNotificationRepository().Return(txNotificationRepo)

		txAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "mina@example.com").Return(nil, repository.ErrAuthNotFound)
		txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(_ context.Context, user *entity.User) error {
				assert.Equal(t, "Mina", user.Name)
				assert.Equal(t, "mina@example.com", user.Email)
				assert.Equal(t, entity.RoleUser, user.Role)
				assert.True(t, user.IsActive)
				user.ID = userID

				return nil
			})
		txAuthRepo.EXPECT().CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == userID && auth.PasswordHash == "hashed" && auth.Provider == entity.ProviderTypeEmail
		})).Return(nil)
		txNotificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
			RunAndReturn(func(_ context.Context, n *entity.Notification) error {
				assert.Equal(t, userID, n.UserID)
				assert.Equal(t, entity.NotificationTypeSystem, n.Type)
				require.NotNil(t, n.ExpiresAt)
				n.ID = notificationID

				return nil
			})
	})

	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.MatchedBy(func(event *service.NotificationEvent) bool {
			return event.NotificationID == notificationID.String() && event.UserID == userID.String()
		})).
		Return(nil)
	fx.expectTokens(userID, "refresh-token")

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, int64(3600), output.ExpiresIn)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockRepo.NewMockUserRepository(t))
		factory.EXPECT().NewAuthRepository().Return(txAuthRepo)
		txAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "taken@example.com").
			Return(&entity.Authentication{UserID: uuid.New()}, nil)
	})

	output, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Name:     "Taken",
		Email:    "taken@example.com",
		Password: "walkies123",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	output, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		Name:     "Weak",
		Email:    "weak@example.com",
		Password: "short",
	})

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		user := &entity.User{ID: userID, Email: "mina@example.com", Role: entity.RoleUser, IsActive: true}

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "mina@example.com").
			Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("walkies123", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		fx.expectTokens(userID, "refresh-token")
		fx.userRepo.EXPECT().UpdateLastLogin(ctx, userID, fixedNow).Return(nil)

		output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "MINA@example.com", Password: "walkies123"})

		require.NoError(t, err)
		assert.Equal(t, user, output.User)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "mina@example.com").
			Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "mina@example.com", Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@example.com").
			Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "walkies123"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("inactive account", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "mina@example.com").
			Return(&entity.Authentication{UserID: userID, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("walkies123", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, IsActive: false}, nil)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "mina@example.com", Password: "walkies123"})

		assert.True(t, errors.Is(err, domainerrors.ErrUserInactive))
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	userID := uuid.New()

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, util.SHA256Hex("refresh")).
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fixedNow.Add(time.Hour)}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleUser, IsActive: true}, nil)
		fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("new-access", "unused", nil)
		fx.tokenService.EXPECT().GetAccessTokenDuration().Return(15 * time.Minute)

		output, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", output.AccessToken)
		assert.Equal(t, int64(900), output.ExpiresIn)
	})

	t.Run("revoked session", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		revokedAt := fixedNow.Add(-time.Minute)

		fx.tokenService.EXPECT().ValidateRefreshToken("refresh").Return(&service.Claims{UserID: userID}, nil)
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, util.SHA256Hex("refresh")).
			Return(&entity.RefreshToken{UserID: userID, ExpiresAt: fixedNow.Add(time.Hour), RevokedAt: &revokedAt}, nil)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("bad signature", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateRefreshToken("forged").Return(nil, errors.New("signature is invalid"))

		_, err := fx.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "forged"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestAuthService_Logout(t *testing.T) {
	t.Run("revokes the session", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()
		tokenID := uuid.New()

		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, util.SHA256Hex("refresh")).
			Return(&entity.RefreshToken{ID: tokenID, UserID: uuid.New()}, nil)
		fx.refreshTokenRepo.EXPECT().RevokeRefreshToken(ctx, tokenID, fixedNow).Return(nil)

		require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"}))
	})

	t.Run("unknown token is ignored", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, util.SHA256Hex("stale")).
			Return(nil, repository.ErrRefreshTokenNotFound)

		require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"}))
	})
}

func TestAuthService_GoogleLogin_CreatesUser(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "id-token").Return(&service.OAuthUser{
		ID:            "google-sub",
		Email:         "Dog@Example.com",
		Name:          "Dog Person",
		AvatarURL:     "https://example.com/a.png",
		EmailVerified: true,
	}, nil)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txUserRepo := mockRepo.NewMockUserRepository(t)
		txAuthRepo := mockRepo.NewMockAuthRepository(t)
		txNotificationRepo := mockRepo.NewMockNotificationRepository(t)

		factory.EXPECT().NewUserRepository().Return(txUserRepo)
		factory.EXPECT().NewAuthRepository().Return(txAuthRepo)
		factory.EXPECT().NewNotificationRepository().Return(txNotificationRepo)

		txAuthRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub").Return(nil, repository.ErrAuthNotFound)
		txUserRepo.EXPECT().FindByEmail(ctx, "dog@example.com").Return(nil, repository.ErrUserNotFound)
		txUserRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			RunAndReturn(func(_ context.Context, user *entity.User) error {
				assert.True(t, user.IsVerified)
				assert.Equal(t, "https://example.com/a.png", user.ProfileImage)
				user.ID = userID

				return nil
			})
		txNotificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).Return(nil)
		txAuthRepo.EXPECT().CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
			return auth.UserID == userID && auth.Provider == entity.ProviderTypeGoogle && auth.ProviderUserID == "google-sub"
		})).Return(nil)
	})

	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(errors.New("broker down"))
	fx.expectTokens(userID, "refresh-token")
	fx.userRepo.EXPECT().UpdateLastLogin(ctx, userID, fixedNow).Return(nil)

	output, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, userID, output.User.ID)
}

func TestAuthService_GoogleLogin_InvalidToken(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	fx.googleAuth.EXPECT().VerifyIDToken(ctx, "bad").Return(nil, errors.New("token verification failed"))

	_, err := fx.service.GoogleLogin(ctx, &usecase.GoogleLoginInput{IDToken: "bad"})

	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestAuthService_Me_NotFound(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	userID := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Me(ctx, userID)

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
