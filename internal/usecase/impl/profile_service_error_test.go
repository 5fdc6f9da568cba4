package impl

import (
	"context"
	"testing"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	mockRepo "petplace/internal/mocks/repository"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	name := "Ghost"

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)
	})

	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: &name})

	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_NicknameTaken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	nickname := "popular"

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockUserRepo.EXPECT().ExistsByNickname(ctx, "popular", userID).Return(true, nil)
	})

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Nickname: &nickname})

	assert.True(t, errors.Is(err, domainerrors.ErrNicknameTaken))
}

func TestProfileService_UpdateProfile_UnknownPetType(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{
		PetTypes: []string{"dragon"},
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPetType))
}

func TestProfileService_UpdateProfile_InvalidCoordinates(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	lat, lng := 91.0, 10.0

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
	})

	_, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Latitude: &lat, Longitude: &lng})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}

func TestProfileService_GetPublicProfile_FindError(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(nil, errors.New("db error"))
	})

	profile, err := fx.service.GetPublicProfile(ctx, userID)

	assert.Nil(t, profile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find user")
}

func TestProfileService_DeactivateAccount_WrongPassword(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().FindAuthenticationsByUser(ctx, userID).Return([]*entity.Authentication{
		{UserID: userID, Provider: entity.ProviderTypeEmail, PasswordHash: "hashed"},
	}, nil)
	fx.hasher.EXPECT().Check("guess", "hashed").Return(false)

	err := fx.service.DeactivateAccount(ctx, userID, &usecase.DeactivateInput{Password: "guess"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
	fx.txManager.AssertNotCalled(t, "Execute")
}

func TestProfileService_DeactivateAccount_NoEmailCredential(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.authRepo.EXPECT().FindAuthenticationsByUser(ctx, userID).Return([]*entity.Authentication{
		{UserID: userID, Provider: entity.ProviderTypeGoogle, ProviderUserID: "g-1"},
	}, nil)

	err := fx.service.DeactivateAccount(ctx, userID, &usecase.DeactivateInput{Password: "anything"})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMismatch))
	fx.hasher.AssertNotCalled(t, "Check")
}

func TestProfileService_SearchUsers_QueryTooShort(t *testing.T) {
	fx := createTestProfileService(t)

	for _, query := range []string{"", "a", "  b  "} {
		result, err := fx.service.SearchUsers(context.Background(), &usecase.SearchUsersInput{Query: query})

		assert.Nil(t, result)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed), query)
	}
	fx.txManager.AssertNotCalled(t, "Execute")
}
