package impl

import (
	"context"
	"testing"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	mockRepo "petplace/internal/mocks/repository"
	mockSvc "petplace/internal/mocks/service"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewServiceFixtures holds all test dependencies for review service tests.
type reviewServiceFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	reviewRepo *mockRepo.MockReviewRepository
	publisher  *mockSvc.MockEventPublisher
}

func createTestReviewService(t *testing.T) reviewServiceFixtures {
	fx := reviewServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		reviewRepo: mockRepo.NewMockReviewRepository(t),
		publisher:  mockSvc.NewMockEventPublisher(t),
	}

	srv := NewReviewService(ReviewServiceParams{
		TxManager:  fx.txManager,
		ReviewRepo: fx.reviewRepo,
		Publisher:  fx.publisher,
		Config:     testConfig(),
		Logger:     discardLogger(),
	})
	srv.(*reviewService).now = fixedClock
	fx.service = srv

	return fx
}

func intPtr(v int) *int {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func TestReviewService_Create(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	reviewerID := uuid.New()
	business := approvedBusiness(uuid.New())
	reviewID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		txReviewRepo := mockRepo.NewMockReviewRepository(t)
		txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
		factory.EXPECT().NewReviewRepository().Return(txReviewRepo)
		factory.EXPECT().NewNotificationRepository().Return(txNotificationRepo)

		txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		txReviewRepo.EXPECT().ExistsByUserAndBusiness(ctx, reviewerID, business.ID).Return(false, nil)
		txReviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).
			RunAndReturn(func(_ context.Context, r *entity.Review) error {
				assert.Equal(t, entity.ReviewStatusApproved, r.Status)
				assert.Equal(t, 5, r.Rating)
				r.ID = reviewID

				return nil
			})
		txReviewRepo.EXPECT().AggregateApproved(ctx, business.ID).Return(entity.RatingAggregate{Average: 4.0, Count: 3}, nil)
		txBusinessRepo.EXPECT().UpdateRating(ctx, business.ID, entity.RatingAggregate{Average: 4.0, Count: 3}).Return(nil)
		txNotificationRepo.EXPECT().CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
			return n.UserID == business.OwnerID && n.Type == entity.NotificationTypeReview && *n.RelatedEntityID == reviewID
		})).Return(nil)
	})
	fx.publisher.EXPECT().PublishNotificationEvent(ctx, mock.Anything).Return(nil)

	review, err := fx.service.Create(ctx, reviewerID, &usecase.ReviewInput{
		BusinessID: business.ID,
		Rating:     intPtr(5),
		Content:    strPtr("Water bowls everywhere"),
	})

	require.NoError(t, err)
	assert.Equal(t, reviewID, review.ID)
	assert.Equal(t, []string{}, review.Images)
}

func TestReviewService_Create_OwnReviewIsNotNotified(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	business := approvedBusiness(ownerID)

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		txReviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
		factory.EXPECT().NewReviewRepository().Return(txReviewRepo)

		txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
		txReviewRepo.EXPECT().ExistsByUserAndBusiness(ctx, ownerID, business.ID).Return(false, nil)
		txReviewRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Review")).Return(nil)
		txReviewRepo.EXPECT().AggregateApproved(ctx, business.ID).Return(entity.RatingAggregate{Average: 3, Count: 1}, nil)
		txBusinessRepo.EXPECT().UpdateRating(ctx, business.ID, mock.Anything).Return(nil)
	})

	_, err := fx.service.Create(ctx, ownerID, &usecase.ReviewInput{
		BusinessID: business.ID,
		Rating:     intPtr(3),
		Content:    strPtr("Our own cafe"),
	})

	require.NoError(t, err)
}

func TestReviewService_Create_Duplicate(t *testing.T) {
	tests := []struct {
		name  string
		setup func(ctx context.Context, repo *mockRepo.MockReviewRepository, userID, businessID uuid.UUID)
	}{
		{
			name: "pre-check finds the review",
			setup: func(ctx context.Context, repo *mockRepo.MockReviewRepository, userID, businessID uuid.UUID) {
				repo.EXPECT().ExistsByUserAndBusiness(ctx, userID, businessID).Return(true, nil)
			},
		},
		{
			name: "unique constraint races the pre-check",
			setup: func(ctx context.Context, repo *mockRepo.MockReviewRepository, userID, businessID uuid.UUID) {
				repo.EXPECT().ExistsByUserAndBusiness(ctx, userID, businessID).Return(false, nil)
				repo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateReview)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)
			ctx := context.Background()
			userID := uuid.New()
			business := approvedBusiness(uuid.New())

			// UpdateRating is never expected, so the review count stays unchanged.
			expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
				txReviewRepo := mockRepo.NewMockReviewRepository(t)
				factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
				factory.EXPECT().NewReviewRepository().Return(txReviewRepo)
				txBusinessRepo.EXPECT().FindByID(ctx, business.ID).Return(business, nil)
				tt.setup(ctx, txReviewRepo, userID, business.ID)
			})

			_, err := fx.service.Create(ctx, userID, &usecase.ReviewInput{
				BusinessID: business.ID,
				Rating:     intPtr(4),
				Content:    strPtr("Again"),
			})

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrReviewAlreadyExists))

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 409, appErr.HTTPCode())
		})
	}
}

func TestReviewService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.ReviewInput
		want  error
	}{
		{name: "missing rating", input: &usecase.ReviewInput{Content: strPtr("ok")}, want: domainerrors.ErrValidationFailed},
		{name: "missing content", input: &usecase.ReviewInput{Rating: intPtr(3)}, want: domainerrors.ErrValidationFailed},
		{name: "rating out of range", input: &usecase.ReviewInput{Rating: intPtr(6), Content: strPtr("ok")}, want: domainerrors.ErrInvalidRating},
		{name: "sub rating out of range", input: &usecase.ReviewInput{Rating: intPtr(3), Content: strPtr("ok"), ServiceRating: intPtr(0)}, want: domainerrors.ErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestReviewService(t)

			_, err := fx.service.Create(context.Background(), uuid.New(), tt.input)

			assert.True(t, errors.Is(err, tt.want))
		})
	}
}

func TestReviewService_Create_BusinessNotFound(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	businessID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)
		factory.EXPECT().NewReviewRepository().Return(mockRepo.NewMockReviewRepository(t))
		txBusinessRepo.EXPECT().FindByID(ctx, businessID).Return(nil, repository.ErrBusinessNotFound)
	})

	_, err := fx.service.Create(ctx, uuid.New(), &usecase.ReviewInput{
		BusinessID: businessID,
		Rating:     intPtr(4),
		Content:    strPtr("Where did it go"),
	})

	assert.True(t, errors.Is(err, domainerrors.ErrBusinessNotFound))
}

func TestReviewService_Update_OnlyAuthor(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	review := &entity.Review{ID: uuid.New(), UserID: uuid.New(), BusinessID: uuid.New(), Rating: 4}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txReviewRepo := mockRepo.NewMockReviewRepository(t)
		factory.EXPECT().NewReviewRepository().Return(txReviewRepo)
		txReviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
	})

	_, err := fx.service.Update(ctx, uuid.New(), review.ID, &usecase.ReviewInput{Rating: intPtr(1)})

	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}

func TestReviewService_Update_RecomputesRating(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	authorID := uuid.New()
	review := &entity.Review{ID: uuid.New(), UserID: authorID, BusinessID: uuid.New(), Rating: 4}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txReviewRepo := mockRepo.NewMockReviewRepository(t)
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewReviewRepository().Return(txReviewRepo)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)

		txReviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
		txReviewRepo.EXPECT().Update(ctx, review).Return(nil)
		txReviewRepo.EXPECT().AggregateApproved(ctx, review.BusinessID).Return(entity.RatingAggregate{Average: 2, Count: 1}, nil)
		txBusinessRepo.EXPECT().UpdateRating(ctx, review.BusinessID, entity.RatingAggregate{Average: 2, Count: 1}).Return(nil)
	})

	updated, err := fx.service.Update(ctx, authorID, review.ID, &usecase.ReviewInput{Rating: intPtr(2)})

	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, fixedNow, updated.UpdatedAt)
}

func TestReviewService_Delete(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	authorID := uuid.New()
	review := &entity.Review{ID: uuid.New(), UserID: authorID, BusinessID: uuid.New()}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txReviewRepo := mockRepo.NewMockReviewRepository(t)
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewReviewRepository().Return(txReviewRepo)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)

		txReviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
		txReviewRepo.EXPECT().Delete(ctx, review.ID).Return(nil)
		txReviewRepo.EXPECT().AggregateApproved(ctx, review.BusinessID).Return(entity.RatingAggregate{}, nil)
		txBusinessRepo.EXPECT().UpdateRating(ctx, review.BusinessID, entity.RatingAggregate{}).Return(nil)
	})

	require.NoError(t, fx.service.Delete(ctx, authorID, review.ID))
}

func TestReviewService_Moderate(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	review := &entity.Review{ID: uuid.New(), BusinessID: uuid.New(), Status: entity.ReviewStatusApproved}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txReviewRepo := mockRepo.NewMockReviewRepository(t)
		txBusinessRepo := mockRepo.NewMockBusinessRepository(t)
		factory.EXPECT().NewReviewRepository().Return(txReviewRepo)
		factory.EXPECT().NewBusinessRepository().Return(txBusinessRepo)

		txReviewRepo.EXPECT().FindByID(ctx, review.ID).Return(review, nil)
		txReviewRepo.EXPECT().UpdateStatus(ctx, review.ID, entity.ReviewStatusReported).Return(nil)
		txReviewRepo.EXPECT().AggregateApproved(ctx, review.BusinessID).Return(entity.RatingAggregate{}, nil)
		txBusinessRepo.EXPECT().UpdateRating(ctx, review.BusinessID, entity.RatingAggregate{}).Return(nil)
	})

	moderated, err := fx.service.Moderate(ctx, review.ID, entity.ReviewStatusReported)

	require.NoError(t, err)
	assert.Equal(t, entity.ReviewStatusReported, moderated.Status)
}

func TestReviewService_Moderate_UnknownStatus(t *testing.T) {
	fx := createTestReviewService(t)

	_, err := fx.service.Moderate(context.Background(), uuid.New(), "deleted")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestReviewService_ListForBusiness(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	businessID := uuid.New()
	reviews := []*entity.Review{{Rating: 5}, {Rating: 4}, {Rating: 3}}

	fx.reviewRepo.EXPECT().
		List(ctx, entity.ReviewFilter{BusinessID: &businessID, Status: entity.ReviewStatusApproved, Sort: entity.ReviewSortRatingHigh},
			entity.Page{Page: 1, PerPage: 20}).
		Return(reviews, int64(3), nil)
	fx.reviewRepo.EXPECT().RatingDistribution(ctx, businessID).
		Return(entity.RatingDistribution{5: 1, 4: 1, 3: 1}, nil)
	fx.reviewRepo.EXPECT().AggregateApproved(ctx, businessID).
		Return(entity.RatingAggregate{Average: 4.0, Count: 3}, nil)

	result, err := fx.service.ListForBusiness(ctx, businessID, entity.ReviewSortRatingHigh, 0, 0)

	require.NoError(t, err)
	assert.Len(t, result.Reviews, 3)
	assert.Equal(t, 4.0, result.Average)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, entity.RatingDistribution{5: 1, 4: 1, 3: 1, 2: 0, 1: 0}, result.Distribution)
}

func TestReviewService_List_ClampsPerPage(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	fx.reviewRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(f entity.ReviewFilter) bool {
			return f.MinRating == 4 && f.Sort == entity.ReviewSortNewest
		}), entity.Page{Page: 2, PerPage: 100}).
		Return(nil, int64(0), nil)

	page, err := fx.service.List(ctx, &usecase.ListReviewsInput{MinRating: 4, Page: 2, PerPage: 1000})

	require.NoError(t, err)
	assert.Equal(t, []*entity.Review{}, page.Reviews)
}

func TestReviewService_MarkHelpful(t *testing.T) {
	fx := createTestReviewService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.reviewRepo.EXPECT().IncrementHelpful(ctx, id).Return(repository.ErrReviewNotFound)

	err := fx.service.MarkHelpful(ctx, id)

	assert.True(t, errors.Is(err, domainerrors.ErrReviewNotFound))
}
