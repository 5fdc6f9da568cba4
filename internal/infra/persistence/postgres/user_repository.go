package postgres

import (
	"context"
	"strings"
	"time"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// ExistsByNickname reports whether another user already uses the nickname.
func (repo *userRepository) ExistsByNickname(ctx context.Context, nickname string, excludeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("nickname = ? AND id <> ?", nickname, excludeID).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check nickname")
	}

	return count > 0, nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if strings.Contains(violatedConstraint(err), "nickname") {
				return domainerrors.ErrNicknameTaken
			}

			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// Update modifies the mutable profile columns of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Select(
			"name", "nickname", "phone", "profile_image", "bio", "role", "is_active", "is_verified",
			"is_premium", "pet_types", "address", "latitude", "longitude", "email_notifications",
			"push_notifications", "marketing_notifications", "updated_at",
		).
		Updates(userM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrNicknameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateLastLogin stamps the last successful login time.
func (repo *userRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update last login")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SearchActive matches active users by a case-insensitive substring of name or nickname.
func (repo *userRepository) SearchActive(ctx context.Context, query string, page entity.Page) ([]*entity.User, int64, error) {
	pattern := likePattern(query)
	base := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("is_active = ?", true).
		Where("name ILIKE ? OR nickname ILIKE ?", pattern, pattern).
		Session(&gorm.Session{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count users")
	}

	var userModels []*model.UserModel
	if err := base.
		Order("name").
		Scopes(paginate(page)).
		Find(&userModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to search users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, total, nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                     data.ID,
		Email:                  data.Email,
		Name:                   data.Name,
		Nickname:               data.Nickname,
		Phone:                  data.Phone,
		ProfileImage:           data.ProfileImage,
		Bio:                    data.Bio,
		Role:                   entity.Role(data.Role),
		IsActive:               data.IsActive,
		IsVerified:             data.IsVerified,
		IsPremium:              data.IsPremium,
		PetTypes:               stringsOf(data.PetTypes),
		Address:                data.Address,
		Latitude:               data.Latitude,
		Longitude:              data.Longitude,
		EmailNotifications:     data.EmailNotifications,
		PushNotifications:      data.PushNotifications,
		MarketingNotifications: data.MarketingNotifications,
		LastLoginAt:            data.LastLoginAt,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                     data.ID,
		Email:                  data.Email,
		Name:                   data.Name,
		Nickname:               data.Nickname,
		Phone:                  data.Phone,
		ProfileImage:           data.ProfileImage,
		Bio:                    data.Bio,
		Role:                   string(data.Role),
		IsActive:               data.IsActive,
		IsVerified:             data.IsVerified,
		IsPremium:              data.IsPremium,
		PetTypes:               pq.StringArray(data.PetTypes),
		Address:                data.Address,
		Latitude:               data.Latitude,
		Longitude:              data.Longitude,
		EmailNotifications:     data.EmailNotifications,
		PushNotifications:      data.PushNotifications,
		MarketingNotifications: data.MarketingNotifications,
		LastLoginAt:            data.LastLoginAt,
		CreatedAt:              data.CreatedAt,
		UpdatedAt:              data.UpdatedAt,
	}
}
