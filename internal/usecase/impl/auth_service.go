package impl

import (
	"context"
	"log/slog"
	"strings"

	"petplace/config"
	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/domain/service"
	"petplace/internal/usecase"
	"petplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	welcomeTitle   = "Welcome to PetPlace"
	welcomeMessage = "Find pet-friendly places near you and share your experiences with other pet owners."
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	userRepo          repository.UserRepository
	authRepo          repository.AuthRepository
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	notifier          *notifier
	policy            passwordPolicy
	now               clock
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	UserRepo          repository.UserRepository
	AuthRepo          repository.AuthRepository
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Publisher         service.EventPublisher
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:         params.TxManager,
		userRepo:          params.UserRepo,
		authRepo:          params.AuthRepo,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		notifier:          newNotifier(params.Config, params.Publisher, params.Logger),
		policy:            newPasswordPolicy(params.Config),
		now:               utcNow,
		logger:            params.Logger,
	}
}

// Register creates an email account, sends the welcome notification and logs the user in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	logFrom(ctx, srv.logger).Info("Starting registration", slog.String("email", email))

	if err := srv.policy.validate(input.Password); err != nil {
		return nil, err
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var (
		registered *entity.User
		welcome    *entity.Notification
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		_, findErr := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findErr == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(findErr, repository.ErrAuthNotFound) {
			return errors.Wrap(findErr, "failed to find authentication")
		}

		user := newUserEntity(input.Name, email)
		user.Phone = input.Phone
		user.PetTypes = nonNil(input.PetTypes)
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         user.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}); err != nil {
			if errors.Is(err, repository.ErrAuthAlreadyExists) {
				return domainerrors.ErrUserAlreadyExists
			}

			return errors.Wrap(err, "failed to create authentication during registration")
		}

		created, notifyErr := srv.notifier.create(ctx, repoFactory.NewNotificationRepository(), welcomeNotice(user.ID), srv.now())
		if notifyErr != nil {
			return notifyErr
		}

		registered, welcome = user, created

		return nil
	})
	if err != nil {
		logFrom(ctx, srv.logger).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.notifier.publish(ctx, welcome)

	return srv.issueTokens(ctx, registered)
}

// Login orchestrates the email login process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	logFrom(ctx, srv.logger).Debug("Starting user login", slog.String("email", email))

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// bcrypt is CPU-bound, so the check runs outside any transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		logFrom(ctx, srv.logger).Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	user, err := srv.loadActiveUser(ctx, authRecord.UserID)
	if err != nil {
		return nil, err
	}

	output, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, srv.now()); err != nil {
		logFrom(ctx, srv.logger).Warn("Failed to record last login", slog.Any("userID", user.ID), slog.Any("error", err))
	}
	logFrom(ctx, srv.logger).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return output, nil
}

// RefreshToken issues a new access token. The refresh token itself stays valid until it expires or is revoked.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, util.SHA256Hex(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrRefreshTokenInvalid
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if !stored.IsUsable(srv.now()) || stored.UserID != claims.UserID {
		return nil, domainerrors.ErrRefreshTokenInvalid
	}

	user, err := srv.loadActiveUser(ctx, stored.UserID)
	if err != nil {
		return nil, err
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate new access token")
	}

	return &usecase.RefreshTokenOutput{
		AccessToken: accessToken,
		ExpiresIn:   int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
	}, nil
}

// Logout revokes the session of the given refresh token. Unknown tokens are ignored.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	stored, err := srv.refreshTokenRepo.FindRefreshTokenByHash(ctx, util.SHA256Hex(input.RefreshToken))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			logFrom(ctx, srv.logger).Debug("Logout with unknown refresh token")

			return nil
		}

		return errors.Wrap(err, "failed to find refresh token")
	}

	if err := srv.refreshTokenRepo.RevokeRefreshToken(ctx, stored.ID, srv.now()); err != nil {
		return errors.Wrap(err, "failed to revoke refresh token")
	}
	logFrom(ctx, srv.logger).Info("Successfully logged out", slog.Any("userID", stored.UserID))

	return nil
}

// GoogleLogin signs a user in with a Google ID token, linking or creating the account as needed.
func (srv *authService) GoogleLogin(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	var (
		user    *entity.User
		welcome *entity.Notification
	)
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var txErr error
		user, welcome, txErr = srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)

		return txErr
	})
	if err != nil {
		logFrom(ctx, srv.logger).Warn("Google login failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to handle Google user authentication")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	srv.notifier.publish(ctx, welcome)

	output, err := srv.issueTokens(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := srv.userRepo.UpdateLastLogin(ctx, user.ID, srv.now()); err != nil {
		logFrom(ctx, srv.logger).Warn("Failed to record last login", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	return output, nil
}

func (srv *authService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, *entity.Notification, error) {
	userRepo := repoFactory.NewUserRepository()
	authRepo := repoFactory.NewAuthRepository()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err == nil {
		user, findErr := userRepo.FindByID(ctx, authRecord.UserID)
		if findErr != nil {
			return nil, nil, errors.Wrap(findErr, "failed to find linked user")
		}

		return user, nil, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, nil, errors.Wrap(err, "failed to find google authentication")
	}

	email := normalizeEmail(oauthUser.Email)
	user, err := userRepo.FindByEmail(ctx, email)
	var welcome *entity.Notification
	switch {
	case err == nil:
		logFrom(ctx, srv.logger).Info("Linking Google account to existing user", slog.Any("userID", user.ID))
	case errors.Is(err, repository.ErrUserNotFound):
		user = newUserEntity(oauthUser.Name, email)
		user.ProfileImage = oauthUser.AvatarURL
		user.IsVerified = oauthUser.EmailVerified
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, nil, errors.Wrap(err, "failed to create google user")
		}

		welcome, err = srv.notifier.create(ctx, repoFactory.NewNotificationRepository(), welcomeNotice(user.ID), srv.now())
		if err != nil {
			return nil, nil, err
		}
	default:
		return nil, nil, errors.Wrap(err, "failed to find user by email")
	}

	if err := authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}); err != nil {
		return nil, nil, errors.Wrap(err, "failed to link google authentication")
	}

	return user, welcome, nil
}

// Me returns the caller's account.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func (srv *authService) loadActiveUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "user no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}
	if !user.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	return user, nil
}

// issueTokens generates a token pair and stores the refresh token hash as a new session.
func (srv *authService) issueTokens(ctx context.Context, user *entity.User) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := srv.now()
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: util.SHA256Hex(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
		CreatedAt: now,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to create refresh token")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int64(srv.tokenService.GetAccessTokenDuration().Seconds()),
		User:         user,
	}, nil
}

func newUserEntity(name, email string) *entity.User {
	return &entity.User{
		Name:               strings.TrimSpace(name),
		Email:              email,
		Role:               entity.RoleUser,
		IsActive:           true,
		PetTypes:           []string{},
		EmailNotifications: true,
		PushNotifications:  true,
	}
}

func welcomeNotice(userID uuid.UUID) notice {
	return notice{
		UserID:  userID,
		Title:   welcomeTitle,
		Message: welcomeMessage,
		Type:    entity.NotificationTypeSystem,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
