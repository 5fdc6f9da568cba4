package impl

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

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
	dashboardRecentLimit = 5
	minUserQueryLength   = 2
	maxUserSearchPerPage = 50
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	authRepo  repository.AuthRepository
	hasher    service.PasswordHasher
	catalog   catalog
	pager     pager
	now       clock
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	AuthRepo  repository.AuthRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		authRepo:  params.AuthRepo,
		hasher:    params.Hasher,
		catalog:   newCatalog(params.Config),
		pager:     newPager(params.Config),
		now:       utcNow,
		logger:    params.Logger,
	}
}

// UpdateProfile edits the caller's own profile. An empty nickname clears it.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	logFrom(ctx, srv.logger).Info("Updating user profile", slog.Any("userID", userID))

	if input.PetTypes != nil {
		if err := srv.catalog.checkPetTypes(input.PetTypes); err != nil {
			return nil, err
		}
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		// 1. Find the user
		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		// 2. Nicknames are unique across users
		if input.Nickname != nil {
			nickname := strings.TrimSpace(*input.Nickname)
			if nickname == "" {
				user.Nickname = nil
			} else {
				taken, err := userRepo.ExistsByNickname(ctx, nickname, userID)
				if err != nil {
					return errors.Wrap(err, "failed to check nickname")
				}
				if taken {
					return domainerrors.ErrNicknameTaken
				}
				user.Nickname = &nickname
			}
		}

		// 3. Apply the remaining fields
		setString(&user.Name, input.Name)
		setString(&user.Phone, input.Phone)
		setString(&user.ProfileImage, input.ProfileImage)
		setString(&user.Bio, input.Bio)
		setString(&user.Address, input.Address)
		setBool(&user.EmailNotifications, input.EmailNotifications)
		setBool(&user.PushNotifications, input.PushNotifications)
		setBool(&user.MarketingNotifications, input.MarketingNotifications)
		if input.PetTypes != nil {
			user.PetTypes = input.PetTypes
		}
		if input.Latitude != nil {
			user.Latitude = input.Latitude
		}
		if input.Longitude != nil {
			user.Longitude = input.Longitude
		}
		if user.Latitude != nil && user.Longitude != nil && !util.ValidCoordinate(*user.Latitude, *user.Longitude) {
			return domainerrors.ErrInvalidCoordinates
		}

		// 4. Save the updated user
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
		updated = user

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return updated, nil
}

// GetPublicProfile returns what other users may see, with content counts.
func (srv *profileService) GetPublicProfile(ctx context.Context, userID uuid.UUID) (*entity.PublicProfile, error) {
	logFrom(ctx, srv.logger).Debug("Getting public profile", slog.Any("userID", userID))

	var profile *entity.PublicProfile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		businessCounts, err := repoFactory.NewBusinessRepository().CountByOwner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count businesses")
		}
		reviewCounts, err := repoFactory.NewReviewRepository().CountByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count reviews")
		}
		postCounts, err := repoFactory.NewBlogRepository().CountByAuthor(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count posts")
		}

		profile = &entity.PublicProfile{
			ID:                 user.ID,
			Name:               user.Name,
			Nickname:           user.Nickname,
			ProfileImage:       user.ProfileImage,
			Bio:                user.Bio,
			PetTypes:           nonNil(user.PetTypes),
			BusinessCount:      businessCounts[entity.BusinessStatusApproved],
			ReviewCount:        reviewCounts[entity.ReviewStatusApproved],
			PublishedPostCount: postCounts[entity.PostStatusPublished],
			CreatedAt:          user.CreatedAt,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get public profile")
	}

	return profile, nil
}

// GetDashboard returns the caller's per-status counts and recent activity.
func (srv *profileService) GetDashboard(ctx context.Context, userID uuid.UUID) (*usecase.Dashboard, error) {
	var dashboard *usecase.Dashboard
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		businessRepo := repoFactory.NewBusinessRepository()
		reviewRepo := repoFactory.NewReviewRepository()

		user, err := repoFactory.NewUserRepository().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		businessCounts, err := businessRepo.CountByOwner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count businesses")
		}
		reviewCounts, err := reviewRepo.CountByUser(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count reviews")
		}
		postCounts, err := repoFactory.NewBlogRepository().CountByAuthor(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count posts")
		}
		unread, err := repoFactory.NewNotificationRepository().CountUnread(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread notifications")
		}

		recentBusinesses, err := businessRepo.FindRecentByOwner(ctx, userID, dashboardRecentLimit)
		if err != nil {
			return errors.Wrap(err, "failed to find recent businesses")
		}
		recentReviews, _, err := reviewRepo.List(ctx,
			entity.ReviewFilter{UserID: &userID, Sort: entity.ReviewSortNewest},
			entity.Page{Page: 1, PerPage: dashboardRecentLimit},
		)
		if err != nil {
			return errors.Wrap(err, "failed to find recent reviews")
		}

		dashboard = &usecase.Dashboard{
			User:             user,
			BusinessCounts:   businessCounts,
			ReviewCounts:     reviewCounts,
			PostCounts:       postCounts,
			UnreadCount:      unread,
			RecentBusinesses: nonNil(recentBusinesses),
			RecentReviews:    nonNil(recentReviews),
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dashboard")
	}

	return dashboard, nil
}

// DeactivateAccount confirms the email password, clears the active flag and revokes every refresh token.
// Accounts without an email credential cannot confirm a password and are refused.
func (srv *profileService) DeactivateAccount(ctx context.Context, userID uuid.UUID, input *usecase.DeactivateInput) error {
	auths, err := srv.authRepo.FindAuthenticationsByUser(ctx, userID)
	if err != nil {
		return errors.Wrap(err, "failed to find authentications")
	}

	var passwordHash string
	for _, auth := range auths {
		if auth.Provider == entity.ProviderTypeEmail {
			passwordHash = auth.PasswordHash
			break
		}
	}
	if passwordHash == "" || !srv.hasher.Check(input.Password, passwordHash) {
		logFrom(ctx, srv.logger).Warn("Deactivation refused", slog.Any("userID", userID))

		return domainerrors.ErrPasswordMismatch
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound
			}

			return errors.Wrap(err, "failed to find user")
		}

		user.IsActive = false
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to update user")
		}

		if err := repoFactory.NewRefreshTokenRepository().RevokeRefreshTokensByUserID(ctx, userID, srv.now()); err != nil {
			return errors.Wrap(err, "failed to revoke sessions")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to deactivate account")
	}

	logFrom(ctx, srv.logger).Info("User account deactivated",
		slog.Any("userID", userID),
		slog.String("reason", input.Reason),
	)

	return nil
}

// SearchUsers finds active users whose name or nickname contains the trimmed query.
func (srv *profileService) SearchUsers(ctx context.Context, input *usecase.SearchUsersInput) (*usecase.UserPage, error) {
	query := strings.TrimSpace(input.Query)
	if utf8.RuneCountInString(query) < minUserQueryLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("q must be at least 2 characters")
	}
	page := srv.pager.pageWithMax(input.Page, input.PerPage, maxUserSearchPerPage)

	var result *usecase.UserPage
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users, total, err := repoFactory.NewUserRepository().SearchActive(ctx, query, page)
		if err != nil {
			return errors.Wrap(err, "failed to search users")
		}

		summaries := make([]*entity.OwnerSummary, 0, len(users))
		for _, user := range users {
			summaries = append(summaries, user.Summary())
		}
		result = &usecase.UserPage{
			Users:      summaries,
			Pagination: entity.NewPagination(page, total),
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search users")
	}

	return result, nil
}
