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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// businessServiceFixtures holds all test dependencies for business service tests.
type businessServiceFixtures struct {
	service      usecase.BusinessUsecase
	txManager    *mockRepo.MockTransactionManager
	businessRepo *mockRepo.MockBusinessRepository
	cache        *mockSvc.MockCacheService
	publisher    *mockSvc.MockEventPublisher
}

func createTestBusinessService(t *testing.T) businessServiceFixtures {
	fx := businessServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		businessRepo: mockRepo.NewMockBusinessRepository(t),
		cache:        mockSvc.NewMockCacheService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	srv := NewBusinessService(BusinessServiceParams{
		TxManager:    fx.txManager,
		BusinessRepo: fx.businessRepo,
		Cache:        fx.cache,
		Publisher:    fx.publisher,
		Config:       testConfig(),
		Logger:       discardLogger(),
	})
	srv.(*businessService).now = fixedClock
	fx.service = srv

	return fx
}

func (fx businessServiceFixtures) expectInvalidate() {
	fx.cache.EXPECT().Delete(mock.Anything, cacheKeyCategories).Return(nil).Once()
	fx.cache.EXPECT().Delete(mock.Anything, cacheKeyFeatured).Return(nil).Once()
}

func approvedBusiness(ownerID uuid.UUID) *entity.Business {
	return &entity.Business{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Bark Cafe",
		Category:  "restaurant",
		Address:   "1 Main St",
		Latitude:  37.5,
		Longitude: 127.0,
		Status:    entity.BusinessStatusApproved,
	}
}

func TestBusinessService_Nearby(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	atCenter := &entity.Business{Name: "at center", Latitude: 37.5, Longitude: 127.0}
	farNorth := &entity.Business{Name: "one degree north", Latitude: 38.5, Longitude: 127.0}
	corner := &entity.Business{Name: "box corner", Latitude: 37.58, Longitude: 127.1}
	nearby := &entity.Business{Name: "close", Latitude: 37.52, Longitude: 127.0}

	fx.businessRepo.EXPECT().
		FindWithinBounds(ctx, mock.MatchedBy(func(b entity.GeoBounds) bool {
			return b.MinLat < 37.5 && b.MaxLat > 37.5 && b.MaxLat < 37.6 && b.MinLng < 127.0 && b.MaxLng > 127.0
		}), "restaurant", "dog").
		Return([]*entity.Business{farNorth, corner, nearby, atCenter}, nil)

	result, err := fx.service.Nearby(ctx, &entity.NearbyQuery{
		Latitude:  37.5,
		Longitude: 127.0,
		RadiusKm:  10,
		Category:  "restaurant",
		PetType:   "dog",
	})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "at center", result[0].Name)
	assert.Equal(t, 0.0, *result[0].DistanceKm)
	assert.Equal(t, "close", result[1].Name)
	assert.InDelta(t, 2.22, *result[1].DistanceKm, 0.01)
}

func TestBusinessService_Nearby_TiesKeepStoreOrderAndLimit(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	first := &entity.Business{Name: "best rated", Latitude: 37.51, Longitude: 127.0, AverageRating: 4.9}
	second := &entity.Business{Name: "second", Latitude: 37.51, Longitude: 127.0, AverageRating: 4.1}
	third := &entity.Business{Name: "third", Latitude: 37.51, Longitude: 127.0, AverageRating: 3.0}

	fx.businessRepo.EXPECT().
		FindWithinBounds(ctx, mock.AnythingOfType("entity.GeoBounds"), "", "").
		Return([]*entity.Business{first, second, third}, nil)

	result, err := fx.service.Nearby(ctx, &entity.NearbyQuery{Latitude: 37.5, Longitude: 127.0, Limit: 2})

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "best rated", result[0].Name)
	assert.Equal(t, "second", result[1].Name)
}

func TestBusinessService_Nearby_InvalidCoordinates(t *testing.T) {
	fx := createTestBusinessService(t)

	_, err := fx.service.Nearby(context.Background(), &entity.NearbyQuery{Latitude: 120, Longitude: 0})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCoordinates))
}

func TestBusinessService_List_WithCenterAddsDistance(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	lat, lng := 37.5, 127.0
	row := &entity.Business{Latitude: 37.5, Longitude: 127.0}

	fx.businessRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f entity.BusinessFilter) bool {
			return f.Status == entity.BusinessStatusApproved && f.Bounds != nil && f.Category == "park"
		}), entity.Page{Page: 1, PerPage: 20}).
		Return([]*entity.Business{row}, int64(1), nil)

	page, err := fx.service.List(ctx, &usecase.ListBusinessesInput{
		Category:  "park",
		Latitude:  &lat,
		Longitude: &lng,
	})

	require.NoError(t, err)
	require.Len(t, page.Businesses, 1)
	require.NotNil(t, page.Businesses[0].DistanceKm)
	assert.Equal(t, 0.0, *page.Businesses[0].DistanceKm)
	assert.Equal(t, int64(1), page.Pagination.Total)
}

func TestBusinessService_Get(t *testing.T) {
	ownerID := uuid.New()

	t.Run("approved listing counts a view", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()
		business := approvedBusiness(ownerID)

		fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		fx.businessRepo.EXPECT().IncrementViewCount(ctx, business.ID).Return(nil)

		result, err := fx.service.Get(ctx, usecase.Viewer{}, business.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.ViewCount)
	})

	t.Run("pending listing is hidden from strangers", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()
		business := approvedBusiness(ownerID)
		business.Status = entity.BusinessStatusPending

		fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

		_, err := fx.service.Get(ctx, usecase.Viewer{UserID: uuid.New()}, business.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotVisible))
	})

	t.Run("pending listing is visible to its owner", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()
		business := approvedBusiness(ownerID)
		business.Status = entity.BusinessStatusPending

		fx.businessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)

		result, err := fx.service.Get(ctx, usecase.Viewer{UserID: ownerID}, business.ID)

		require.NoError(t, err)
		assert.Equal(t, int64(0), result.ViewCount)
	})

	t.Run("missing listing", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()
		id := uuid.New()

		fx.businessRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrBusinessNotFound)

		_, err := fx.service.Get(ctx, usecase.Viewer{}, id)

		assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
	})
}

func TestBusinessService_Create(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	name, category, address := "Paw Park", "park", "2 River Rd"
	lat, lng := 37.55, 126.99

	fx.businessRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Business")).Return(nil)

	business, err := fx.service.Create(ctx, ownerID, &usecase.BusinessInput{
		Name:            &name,
		Category:        &category,
		Address:         &address,
		Latitude:        &lat,
		Longitude:       &lng,
		PetAllowedTypes: []string{"dog", "cat"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusPending, business.Status)
	assert.Equal(t, ownerID, business.OwnerID)
	assert.Equal(t, []string{"dog", "cat"}, business.PetAllowedTypes)
	assert.Equal(t, []string{}, business.GalleryImages)
}

func TestBusinessService_Create_UnknownCategory(t *testing.T) {
	fx := createTestBusinessService(t)

	name, category, address := "Space Bar", "spaceport", "Orbit"
	lat, lng := 1.0, 1.0

	_, err := fx.service.Create(context.Background(), uuid.New(), &usecase.BusinessInput{
		Name: &name, Category: &category, Address: &address, Latitude: &lat, Longitude: &lng,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCategory))
}

func TestBusinessService_Update_ImportantFieldResetsToPending(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := approvedBusiness(ownerID)
	newName := "Bark Cafe & Bakery"

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
		txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		txBusinessRepo.EXPECT().Update(ctx, business).Return(nil)
	})
	fx.expectInvalidate()

	updated, err := fx.service.Update(ctx, usecase.Viewer{UserID: ownerID, Roles: entity.Roles{entity.RoleBusiness}}, business.ID,
		&usecase.BusinessInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusPending, updated.Status)
	assert.Equal(t, newName, updated.Name)
}

func TestBusinessService_Update_MinorFieldKeepsApproval(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := approvedBusiness(ownerID)
	phone := "02-123-4567"
	category := "veterinary"

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
		txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		txBusinessRepo.EXPECT().Update(ctx, business).Return(nil)
	})
	fx.expectInvalidate()

	// Non-admins cannot change the category, so the edit stays minor.
	updated, err := fx.service.Update(ctx, usecase.Viewer{UserID: ownerID}, business.ID,
		&usecase.BusinessInput{Phone: &phone, Category: &category})

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusApproved, updated.Status)
	assert.Equal(t, "restaurant", updated.Category)
	assert.Equal(t, phone, updated.Phone)
}

func TestBusinessService_Update_Forbidden(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := approvedBusiness(uuid.New())

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
		txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	})

	_, err := fx.service.Update(ctx, usecase.Viewer{UserID: uuid.New(), Roles: entity.Roles{entity.RoleModerator}}, business.ID,
		&usecase.BusinessInput{})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestBusinessService_Delete_SoftDeletes(t *testing.T) {
	tests := []struct {
		name   string
		status entity.BusinessStatus
		want   entity.BusinessStatus
	}{
		{name: "approved is suspended", status: entity.BusinessStatusApproved, want: entity.BusinessStatusSuspended},
		{name: "pending is rejected", status: entity.BusinessStatusPending, want: entity.BusinessStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBusinessService(t)
			ctx := context.Background()
			ownerID := uuid.New()
			business := approvedBusiness(ownerID)
			business.Status = tt.status

			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
				factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
				txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
				txBusinessRepo.EXPECT().UpdateStatus(ctx, business.ID, tt.want, mock.Anything).Return(nil)
			})
			fx.expectInvalidate()

			require.NoError(t, fx.service.Delete(ctx, usecase.Viewer{UserID: ownerID}, business.ID))
		})
	}
}

func TestBusinessService_ChangeStatus_ApproveNotifiesOwner(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := approvedBusiness(ownerID)
	business.Status = entity.BusinessStatusPending
	notificationID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
		factory.EXPECT().NewNotificationRepository().Return(txNotificationRepo)

		txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		txBusinessRepo.EXPECT().
			UpdateStatus(ctx, business.ID, entity.BusinessStatusApproved, mock.MatchedBy(func(at *time.Time) bool {
				return at != nil && at.Equal(fixedNow)
			})).
			Return(nil)
		txNotificationRepo.EXPECT().CreateNotification(ctx, mock.AnythingOfType("*entity.Notification")).
			RunAndReturn(func(_ context.Context, n *entity.Notification) error {
				assert.Equal(t, ownerID, n.UserID)
				assert.Equal(t, entity.NotificationTypeBusiness, n.Type)
				n.ID = notificationID

				return nil
			})
	})
	fx.publisher.EXPECT().
		PublishNotificationEvent(ctx, mock.MatchedBy(func(e *service.NotificationEvent) bool {
			return e.NotificationID == notificationID.String() && e.Type == "business"
		})).
		Return(nil)
	fx.expectInvalidate()

	result, err := fx.service.ChangeStatus(ctx, business.ID, &usecase.ChangeStatusInput{Status: entity.BusinessStatusApproved})

	require.NoError(t, err)
	assert.Equal(t, entity.BusinessStatusApproved, result.Status)
	require.NotNil(t, result.ApprovedAt)
}

func TestBusinessService_ChangeStatus_InvalidTransition(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	business := approvedBusiness(uuid.New())
	business.Status = entity.BusinessStatusRejected

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
		txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
	})

	_, err := fx.service.ChangeStatus(ctx, business.ID, &usecase.ChangeStatusInput{Status: entity.BusinessStatusApproved})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestBusinessService_Featured(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()

		fx.cache.EXPECT().Get(ctx, cacheKeyFeatured, mock.Anything).
			RunAndReturn(func(_ context.Context, _ string, dest any) error {
				*dest.(*[]*entity.Business) = []*entity.Business{{Name: "a"}, {Name: "b"}, {Name: "c"}}

				return nil
			})

		result, err := fx.service.Featured(ctx, 2)

		require.NoError(t, err)
		assert.Len(t, result, 2)
	})

	t.Run("cache failure falls back to the store", func(t *testing.T) {
		fx := createTestBusinessService(t)
		ctx := context.Background()
		stored := []*entity.Business{{Name: "a"}}

		fx.cache.EXPECT().Get(ctx, cacheKeyFeatured, mock.Anything).Return(errors.New("connection refused"))
		fx.businessRepo.EXPECT().FindFeatured(ctx, maxFeatured).Return(stored, nil)
		fx.cache.EXPECT().Set(ctx, cacheKeyFeatured, stored, time.Minute).Return(errors.New("connection refused"))

		result, err := fx.service.Featured(ctx, 50)

		require.NoError(t, err)
		assert.Equal(t, stored, result)
	})
}

func TestBusinessService_Categories(t *testing.T) {
	fx := createTestBusinessService(t)

	ctx := context.Background()
	fx.cache.EXPECT().Get(ctx, cacheKeyCategories, mock.Anything).Return(service.ErrCacheMiss)
	fx.businessRepo.EXPECT().CountApprovedByCategory(ctx).Return(map[string]int64{"park": 4}, nil)
	fx.cache.EXPECT().Set(ctx, cacheKeyCategories, mock.Anything, time.Minute).Return(nil)

	categories, err := fx.service.Categories(ctx)

	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "restaurant", categories[0].Code)
	assert.Equal(t, "Restaurant", categories[0].Name)
	assert.Equal(t, int64(0), categories[0].Count)
	assert.Equal(t, int64(4), categories[2].Count)
}

func TestBusinessService_Search_TooShort(t *testing.T) {
	fx := createTestBusinessService(t)

	_, err := fx.service.Search(context.Background(), " a ", 1, 20)

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
