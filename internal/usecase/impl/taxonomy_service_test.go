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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestTaxonomyService(t *testing.T) (usecase.TaxonomyUsecase, *mockRepo.MockCategoryRepository, *mockRepo.MockTagRepository) {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	tagRepo := mockRepo.NewMockTagRepository(t)

	srv := NewTaxonomyService(TaxonomyServiceParams{
		CategoryRepo: categoryRepo,
		TagRepo:      tagRepo,
		Logger:       discardLogger(),
	})
	srv.(*taxonomyService).now = fixedClock

	return srv, categoryRepo, tagRepo
}

func TestTaxonomyService_ListCategories(t *testing.T) {
	srv, categoryRepo, _ := createTestTaxonomyService(t)

	ctx := context.Background()
	parentID := uuid.New()
	categories := []*entity.Category{
		{ID: parentID, Name: "Food", OrderIndex: 0},
		{ID: uuid.New(), ParentID: &parentID, Name: "Cafe", OrderIndex: 1},
		{ID: uuid.New(), Name: "Health", OrderIndex: 2},
	}
	categoryRepo.EXPECT().ListActiveByType(ctx, entity.CategoryTypeBusiness).Return(categories, nil)

	tree, err := srv.ListCategories(ctx, "")

	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "Food", tree[0].Name)
	require.Len(t, tree[0].Children, 1)
	assert.Equal(t, "Cafe", tree[0].Children[0].Name)
}

func TestTaxonomyService_CreateCategory(t *testing.T) {
	srv, categoryRepo, _ := createTestTaxonomyService(t)

	ctx := context.Background()
	categoryRepo.EXPECT().Create(ctx, mock.MatchedBy(func(c *entity.Category) bool {
		return c.Slug == "dog-cafes" && c.IsActive && c.CreatedAt.Equal(fixedNow)
	})).Return(nil)

	category, err := srv.CreateCategory(ctx, &usecase.CreateCategoryInput{
		Name:         "Dog Cafes",
		CategoryType: entity.CategoryTypeBusiness,
	})

	require.NoError(t, err)
	assert.Equal(t, "Dog Cafes", category.Name)
}

func TestTaxonomyService_CreateCategory_Errors(t *testing.T) {
	t.Run("duplicate slug", func(t *testing.T) {
		srv, categoryRepo, _ := createTestTaxonomyService(t)
		ctx := context.Background()
		categoryRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrDuplicateCategory)

		_, err := srv.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Parks", CategoryType: entity.CategoryTypeBusiness})

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryAlreadyExists))
	})

	t.Run("missing parent", func(t *testing.T) {
		srv, categoryRepo, _ := createTestTaxonomyService(t)
		ctx := context.Background()
		parentID := uuid.New()
		categoryRepo.EXPECT().FindByID(ctx, parentID).Return(nil, repository.ErrCategoryNotFound)

		_, err := srv.CreateCategory(ctx, &usecase.CreateCategoryInput{Name: "Parks", ParentID: &parentID, CategoryType: entity.CategoryTypeBusiness})

		assert.True(t, errors.Is(err, domainerrors.ErrCategoryNotFound))
	})

	t.Run("blank name", func(t *testing.T) {
		srv, _, _ := createTestTaxonomyService(t)

		_, err := srv.CreateCategory(context.Background(), &usecase.CreateCategoryInput{Name: " !! ", CategoryType: entity.CategoryTypeBlog})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestTaxonomyService_TrendingTags(t *testing.T) {
	srv, _, tagRepo := createTestTaxonomyService(t)

	ctx := context.Background()
	tagRepo.EXPECT().ListTrending(ctx, entity.TagTypeBlog, 50).Return([]*entity.Tag{{Name: "walks", UsageCount: 12}}, nil)

	tags, err := srv.TrendingTags(ctx, entity.TagTypeBlog, 99)

	require.NoError(t, err)
	assert.Len(t, tags, 1)
}
