package impl

import (
	"context"
	"strings"
	"testing"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	mockRepo "petplace/internal/mocks/repository"
	"petplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// blogServiceFixtures holds all test dependencies for blog service tests.
type blogServiceFixtures struct {
	service   usecase.BlogUsecase
	txManager *mockRepo.MockTransactionManager
	blogRepo  *mockRepo.MockBlogRepository
	tagRepo   *mockRepo.MockTagRepository
}

func createTestBlogService(t *testing.T) blogServiceFixtures {
	fx := blogServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		blogRepo:  mockRepo.NewMockBlogRepository(t),
		tagRepo:   mockRepo.NewMockTagRepository(t),
	}

	srv := NewBlogService(BlogServiceParams{
		TxManager: fx.txManager,
		BlogRepo:  fx.blogRepo,
		TagRepo:   fx.tagRepo,
		Config:    testConfig(),
		Logger:    discardLogger(),
	})
	srv.(*blogService).now = fixedClock
	fx.service = srv

	return fx
}

func TestBlogService_Create(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	authorID := uuid.New()
	content := strings.Repeat("walk ", 500)
	tagID := uuid.New()
	postID := uuid.New()

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBlogRepo := mockRepo.NewMockBlogRepository(t)
		txTagRepo := mockRepo.NewMockTagRepository(t)
		txAffiliateRepo := mockRepo.NewMockAffiliateRepository(t)
		factory.EXPECT().NewBlogRepository().Return(txBlogRepo)
		factory.EXPECT().NewTagRepository().Return(txTagRepo)
		factory.EXPECT().NewAffiliateRepository().Return(txAffiliateRepo)

		txBlogRepo.EXPECT().ExistsBySlug(ctx, "best-dog-parks").Return(false, nil)
		txTagRepo.EXPECT().FindOrCreate(ctx, "parks", entity.TagTypeBlog).Return(&entity.Tag{ID: tagID, Name: "parks"}, nil).Once()
		txTagRepo.EXPECT().FindOrCreate(ctx, "Parks", entity.TagTypeBlog).Return(&entity.Tag{ID: tagID, Name: "parks"}, nil).Once()
		txTagRepo.EXPECT().IncrementUsage(ctx, []uuid.UUID{tagID}).Return(nil)
		txBlogRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BlogPost")).
			RunAndReturn(func(_ context.Context, p *entity.BlogPost) error {
				p.ID = postID

				return nil
			})
		txAffiliateRepo.EXPECT().CreateLink(ctx, mock.MatchedBy(func(l *entity.AffiliateLink) bool {
			return l.BlogPostID == postID && strings.HasPrefix(l.ShortURL, "pet.ly/") && len(l.ShortURL) == len("pet.ly/")+8
		})).Return(nil)
	})

	post, err := fx.service.Create(ctx, authorID, &usecase.PostInput{
		Title:   strPtr("Best Dog Parks!"),
		Content: &content,
		Tags:    []string{"parks", "Parks", " "},
		AffiliateLinks: []*usecase.AffiliateLinkInput{{
			ProductName:    "Leash",
			Partner:        entity.PartnerCoupang,
			OriginalURL:    "https://shop.example/leash",
			AffiliateURL:   "https://link.example/leash?ref=1",
			CommissionRate: 0.05,
		}},
	})

	require.NoError(t, err)
	assert.Equal(t, "best-dog-parks", post.Slug)
	assert.Equal(t, entity.PostStatusDraft, post.Status)
	assert.Equal(t, "general", post.Category)
	assert.Equal(t, 3, post.EstimatedReadTime)
	assert.True(t, strings.HasSuffix(post.Excerpt, "..."))
	assert.Len(t, post.Tags, 1)
	require.Len(t, post.AffiliateLinks, 1)
	assert.Equal(t, entity.CommissionPercentage, post.AffiliateLinks[0].CommissionType)
	assert.True(t, post.AffiliateLinks[0].IsActive)
}

func TestBlogService_Create_SlugCollisionAddsTimestamp(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	published := entity.PostStatusPublished

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBlogRepo := mockRepo.NewMockBlogRepository(t)
		factory.EXPECT().NewBlogRepository().Return(txBlogRepo)
		factory.EXPECT().NewTagRepository().Return(mockRepo.NewMockTagRepository(t))

		txBlogRepo.EXPECT().ExistsBySlug(ctx, "hello").Return(true, nil)
		txBlogRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.BlogPost")).Return(nil)
	})

	post, err := fx.service.Create(ctx, uuid.New(), &usecase.PostInput{
		Title:   strPtr("Hello"),
		Content: strPtr("short"),
		Status:  &published,
	})

	require.NoError(t, err)
	assert.Equal(t, "hello-20260314093000", post.Slug)
	assert.Equal(t, "short", post.Excerpt)
	assert.Equal(t, 1, post.EstimatedReadTime)
	require.NotNil(t, post.PublishedAt)
	assert.Equal(t, fixedNow, *post.PublishedAt)
}

func TestBlogService_Create_Validation(t *testing.T) {
	fx := createTestBlogService(t)

	_, err := fx.service.Create(context.Background(), uuid.New(), &usecase.PostInput{Title: strPtr("No body")})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.Create(context.Background(), uuid.New(), &usecase.PostInput{
		Title:          strPtr("Links"),
		Content:        strPtr("body"),
		AffiliateLinks: []*usecase.AffiliateLinkInput{{ProductName: "x", OriginalURL: "a", AffiliateURL: "b", Partner: "ebay"}},
	})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestBlogService_Update(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	authorID := uuid.New()
	post := &entity.BlogPost{ID: uuid.New(), AuthorID: authorID, Status: entity.PostStatusPublished, Content: "old"}
	archived := entity.PostStatusArchived
	tag := &entity.Tag{ID: uuid.New(), Name: "cats"}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBlogRepo := mockRepo.NewMockBlogRepository(t)
		txTagRepo := mockRepo.NewMockTagRepository(t)
		factory.EXPECT().NewBlogRepository().Return(txBlogRepo)
		factory.EXPECT().NewTagRepository().Return(txTagRepo)

		txBlogRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
		txTagRepo.EXPECT().FindOrCreate(ctx, "cats", entity.TagTypeBlog).Return(tag, nil)
		txTagRepo.EXPECT().IncrementUsage(ctx, []uuid.UUID{tag.ID}).Return(nil)
		txBlogRepo.EXPECT().Update(ctx, post).Return(nil)
	})

	updated, err := fx.service.Update(ctx, authorID, post.ID, &usecase.PostInput{
		Content: strPtr(strings.Repeat("purr ", 700)),
		Status:  &archived,
		Tags:    []string{"cats"},
	})

	require.NoError(t, err)
	assert.Equal(t, entity.PostStatusArchived, updated.Status)
	assert.Equal(t, 4, updated.EstimatedReadTime)
	assert.Equal(t, []*entity.Tag{tag}, updated.Tags)
}

func TestBlogService_Update_InvalidTransition(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	authorID := uuid.New()
	post := &entity.BlogPost{ID: uuid.New(), AuthorID: authorID, Status: entity.PostStatusArchived}
	published := entity.PostStatusPublished

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBlogRepo := mockRepo.NewMockBlogRepository(t)
		factory.EXPECT().NewBlogRepository().Return(txBlogRepo)
		txBlogRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	})

	_, err := fx.service.Update(ctx, authorID, post.ID, &usecase.PostInput{Status: &published})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidStatusTransition))
}

func TestBlogService_Delete_OnlyAuthor(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	post := &entity.BlogPost{ID: uuid.New(), AuthorID: uuid.New()}

	expectTx(t, fx.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		txBlogRepo := mockRepo.NewMockBlogRepository(t)
		factory.EXPECT().NewBlogRepository().Return(txBlogRepo)
		txBlogRepo.EXPECT().FindByID(ctx, post.ID).Return(post, nil)
	})

	err := fx.service.Delete(ctx, uuid.New(), post.ID)

	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestBlogService_GetBySlug(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	post := &entity.BlogPost{ID: uuid.New(), Slug: "hello", ViewCount: 9}

	fx.blogRepo.EXPECT().FindBySlug(ctx, "hello").Return(post, nil)
	fx.blogRepo.EXPECT().IncrementViewCount(ctx, post.ID).Return(nil)

	result, err := fx.service.GetBySlug(ctx, "hello")

	require.NoError(t, err)
	assert.Equal(t, int64(10), result.ViewCount)

	fx.blogRepo.EXPECT().FindBySlug(ctx, "missing").Return(nil, repository.ErrPostNotFound)

	_, err = fx.service.GetBySlug(ctx, "missing")

	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestBlogService_List_DefaultsToPublished(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	fx.blogRepo.EXPECT().
		List(ctx, entity.PostFilter{Status: entity.PostStatusPublished, Tag: "parks", Sort: entity.PostSortNewest}, entity.Page{Page: 1, PerPage: 20}).
		Return(nil, int64(0), nil)

	page, err := fx.service.List(ctx, &usecase.ListPostsInput{Tag: "parks"})

	require.NoError(t, err)
	assert.Equal(t, []*entity.BlogPost{}, page.Posts)
}

func TestBlogService_Like(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.blogRepo.EXPECT().IncrementLikeCount(ctx, id).Return(nil)

	require.NoError(t, fx.service.Like(ctx, id))
}

func TestBlogService_CategoriesAndTags(t *testing.T) {
	fx := createTestBlogService(t)

	ctx := context.Background()
	fx.blogRepo.EXPECT().Categories(ctx).Return(nil, nil)
	fx.tagRepo.EXPECT().ListAll(ctx).Return([]*entity.Tag{{Name: "dogs"}}, nil)

	categories, err := fx.service.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, categories)

	tags, err := fx.service.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
