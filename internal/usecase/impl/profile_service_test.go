package impl

import (
	"context"
	"testing"

	"petplace/internal/domain/entity"
	mockRepo "petplace/internal/mocks/repository"
	mockSvc "petplace/internal/mocks/service"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	authRepo  *mockRepo.MockAuthRepository
	hasher    *mockSvc.MockPasswordHasher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	authRepo := mockRepo.NewMockAuthRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	service := NewProfileService(ProfileServiceParams{
		TxManager: txManager,
		AuthRepo:  authRepo,
		Hasher:    hasher,
		Config:    testConfig(),
		Logger:    discardLogger(),
	}).(*profileService)
	service.now = fixedClock

	return profileServiceFixtures{
		service:   service,
		txManager: txManager,
		authRepo:  authRepo,
		hasher:    hasher,
	}
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	name := "Mina"
	nickname := " corgi_mom "
	push := false
	lat, lng := 37.5665, 126.978
	input := &usecase.UpdateProfileInput{
		Name:              &name,
		Nickname:          &nickname,
		PetTypes:          []string{"dog"},
		PushNotifications: &push,
		Latitude:          &lat,
		Longitude:         &lng,
	}
	existingUser := &entity.User{ID: userID, Name: "Old", PushNotifications: true}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().ExistsByNickname(ctx, "corgi_mom", userID).Return(false, nil)
		mockUserRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	})

	user, err := fx.service.UpdateProfile(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "Mina", user.Name)
	require.NotNil(t, user.Nickname)
	assert.Equal(t, "corgi_mom", *user.Nickname)
	assert.Equal(t, []string{"dog"}, user.PetTypes)
	assert.False(t, user.PushNotifications)
	assert.Equal(t, lat, *user.Latitude)
}

func TestProfileService_UpdateProfile_ClearsNickname(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	old := "old"
	empty := ""
	existingUser := &entity.User{ID: userID, Nickname: &old}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().Update(ctx, existingUser).Return(nil)
	})

	user, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Nickname: &empty})

	require.NoError(t, err)
	assert.Nil(t, user.Nickname)
}

func TestProfileService_GetPublicProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)
		mockBlogRepo := mockRepo.NewMockBlogRepository(t)

		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewBusinessRepository().Return(mockBusinessRepo)
		factory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
		factory.EXPECT().NewBlogRepository().Return(mockBlogRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Name: "Mina", Email: "private@example.com"}, nil)
		mockBusinessRepo.EXPECT().CountByOwner(ctx, userID).Return(map[entity.BusinessStatus]int64{
			entity.BusinessStatusApproved: 2,
			entity.BusinessStatusPending:  1,
		}, nil)
		mockReviewRepo.EXPECT().CountByUser(ctx, userID).Return(map[entity.ReviewStatus]int64{
			entity.ReviewStatusApproved: 7,
			entity.ReviewStatusRejected: 1,
		}, nil)
		mockBlogRepo.EXPECT().CountByAuthor(ctx, userID).Return(map[entity.PostStatus]int64{
			entity.PostStatusPublished: 3,
			entity.PostStatusDraft:     4,
		}, nil)
	})

	profile, err := fx.service.GetPublicProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, "Mina", profile.Name)
	assert.Equal(t, int64(2), profile.BusinessCount)
	assert.Equal(t, int64(7), profile.ReviewCount)
	assert.Equal(t, int64(3), profile.PublishedPostCount)
	assert.Equal(t, []string{}, profile.PetTypes)
}

func TestProfileService_GetDashboard(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	recent := []*entity.Business{{ID: uuid.New(), Name: "Bark Cafe"}}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		mockReviewRepo := mockRepo.NewMockReviewRepository(t)
		mockBlogRepo := mockRepo.NewMockBlogRepository(t)
		mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewBusinessRepository().Return(mockBusinessRepo)
		factory.EXPECT().NewReviewRepository().Return(mockReviewRepo)
		factory.EXPECT().NewBlogRepository().Return(mockBlogRepo)
		factory.EXPECT().NewNotificationRepository().Return(mockNotificationRepo)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil)
		mockBusinessRepo.EXPECT().CountByOwner(ctx, userID).Return(map[entity.BusinessStatus]int64{entity.BusinessStatusPending: 1}, nil)
		mockReviewRepo.EXPECT().CountByUser(ctx, userID).Return(map[entity.ReviewStatus]int64{}, nil)
		mockBlogRepo.EXPECT().CountByAuthor(ctx, userID).Return(map[entity.PostStatus]int64{}, nil)
		mockNotificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(4), nil)
		mockBusinessRepo.EXPECT().FindRecentByOwner(ctx, userID, 5).Return(recent, nil)
		mockReviewRepo.EXPECT().
			List(ctx, entity.ReviewFilter{UserID: &userID, Sort: entity.ReviewSortNewest}, entity.Page{Page: 1, PerPage: 5}).
			Return(nil, int64(0), nil)
	})

	dashboard, err := fx.service.GetDashboard(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(4), dashboard.UnreadCount)
	assert.Equal(t, int64(1), dashboard.BusinessCounts[entity.BusinessStatusPending])
	assert.Equal(t, recent, dashboard.RecentBusinesses)
	assert.Empty(t, dashboard.RecentReviews)
	assert.NotNil(t, dashboard.RecentReviews)
}

func TestProfileService_DeactivateAccount(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	user := &entity.User{ID: userID, Name: "Mina", IsActive: true}

	fx.authRepo.EXPECT().FindAuthenticationsByUser(ctx, userID).Return([]*entity.Authentication{
		{UserID: userID, Provider: entity.ProviderTypeGoogle, ProviderUserID: "g-1"},
		{UserID: userID, Provider: entity.ProviderTypeEmail, ProviderUserID: "mina@example.com", PasswordHash: "hashed"},
	}, nil)
	fx.hasher.EXPECT().Check("Secret123", "hashed").Return(true)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		factory.EXPECT().NewRefreshTokenRepository().Return(mockTokenRepo)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockUserRepo.EXPECT().Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == userID && !u.IsActive
		})).Return(nil)
		mockTokenRepo.EXPECT().RevokeRefreshTokensByUserID(ctx, userID, fixedNow).Return(nil)
	})

	err := fx.service.DeactivateAccount(ctx, userID, &usecase.DeactivateInput{Password: "Secret123", Reason: "moving abroad"})

	require.NoError(t, err)
	assert.False(t, user.IsActive)
}

func TestProfileService_SearchUsers(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	nickname := "corgi_mom"
	found := &entity.User{ID: uuid.New(), Name: "Mina", Nickname: &nickname, Email: "private@example.com"}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		mockUserRepo.EXPECT().SearchActive(ctx, "corgi", entity.Page{Page: 1, PerPage: 50}).
			Return([]*entity.User{found}, int64(1), nil)
	})

	result, err := fx.service.SearchUsers(ctx, &usecase.SearchUsersInput{Query: "  corgi ", PerPage: 200})

	require.NoError(t, err)
	require.Len(t, result.Users, 1)
	assert.Equal(t, found.ID, result.Users[0].ID)
	assert.Equal(t, &nickname, result.Users[0].Nickname)
	assert.Equal(t, 50, result.Pagination.PerPage)
	assert.Equal(t, int64(1), result.Pagination.Total)
}

func TestProfileService_SearchUsers_DefaultPerPage(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)

		factory.EXPECT().NewUserRepository().Return(mockUserRepo)
		mockUserRepo.EXPECT().SearchActive(ctx, "미나", entity.Page{Page: 3, PerPage: 20}).
			Return(nil, int64(0), nil)
	})

	result, err := fx.service.SearchUsers(ctx, &usecase.SearchUsersInput{Query: "미나", Page: 3})

	require.NoError(t, err)
	assert.Empty(t, result.Users)
	assert.NotNil(t, result.Users)
	assert.True(t, result.Pagination.HasPrev)
}
