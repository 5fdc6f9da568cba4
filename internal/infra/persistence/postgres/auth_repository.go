package postgres

import (
	"context"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication links a credential. Linking an identity that already belongs to any
// account fails with ErrAuthAlreadyExists.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	authM := fromAuthenticationDomain(auth)

	if err := repo.db.WithContext(ctx).Create(authM).Error; err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrAuthAlreadyExists
		case isForeignKeyConstraintViolation(err):
			return errors.Wrap(repository.ErrUserNotFound, "credential owner")
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrUserCreationFailed.WrapMessage("credential is missing its provider identity")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID = authM.ID
	auth.CreatedAt = authM.CreatedAt

	return nil
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	var authM model.AuthenticationModel
	err := repo.db.WithContext(ctx).
		Where(&model.AuthenticationModel{Provider: string(provider), ProviderUserID: providerUserID}).
		Take(&authM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrAuthNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to find %s credential", provider)
	}

	return toAuthenticationDomain(&authM), nil
}

// FindAuthenticationsByUser lists credentials oldest first, so the sign-up method comes first.
func (repo *authRepository) FindAuthenticationsByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Authentication, error) {
	var rows []*model.AuthenticationModel
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list credentials")
	}

	authentications := make([]*entity.Authentication, len(rows))
	for i, row := range rows {
		authentications[i] = toAuthenticationDomain(row)
	}

	return authentications, nil
}

func toAuthenticationDomain(data *model.AuthenticationModel) *entity.Authentication {
	if data == nil {
		return nil
	}

	return &entity.Authentication{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       entity.ProviderType(data.Provider),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}

func fromAuthenticationDomain(data *entity.Authentication) *model.AuthenticationModel {
	if data == nil {
		return nil
	}

	return &model.AuthenticationModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Provider:       string(data.Provider),
		ProviderUserID: data.ProviderUserID,
		PasswordHash:   data.PasswordHash,
		CreatedAt:      data.CreatedAt,
	}
}
