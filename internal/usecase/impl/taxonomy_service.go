package impl

import (
	"context"
	"log/slog"
	"strings"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/usecase"
	"petplace/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultTrendingTags = 10
	maxTrendingTags     = 50
	maxCategorySlugLen  = 120
)

// taxonomyService implements the TaxonomyUsecase interface.
type taxonomyService struct {
	categoryRepo repository.CategoryRepository
	tagRepo      repository.TagRepository
	now          clock
	logger       *slog.Logger
}

// TaxonomyServiceParams holds dependencies for TaxonomyService, injected by Fx.
type TaxonomyServiceParams struct {
	fx.In

	CategoryRepo repository.CategoryRepository
	TagRepo      repository.TagRepository
	Logger       *slog.Logger
}

// NewTaxonomyService is the constructor for taxonomyService.
func NewTaxonomyService(params TaxonomyServiceParams) usecase.TaxonomyUsecase {
	return &taxonomyService{
		categoryRepo: params.CategoryRepo,
		tagRepo:      params.TagRepo,
		now:          utcNow,
		logger:       params.Logger,
	}
}

func (srv *taxonomyService) ListCategories(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	if categoryType == "" {
		categoryType = entity.CategoryTypeBusiness
	}
	if !categoryType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category type " + string(categoryType))
	}

	categories, err := srv.categoryRepo.ListActiveByType(ctx, categoryType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	return entity.BuildCategoryTree(categories), nil
}

func (srv *taxonomyService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	name := strings.TrimSpace(input.Name)
	slug := util.Slugify(name, maxCategorySlugLen)
	if slug == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}
	if !input.CategoryType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown category type " + string(input.CategoryType))
	}

	if input.ParentID != nil {
		parent, err := srv.categoryRepo.FindByID(ctx, *input.ParentID)
		if err != nil {
			if errors.Is(err, repository.ErrCategoryNotFound) {
				return nil, domainerrors.ErrCategoryNotFound.WithDetails("parent category does not exist")
			}

			return nil, errors.Wrap(err, "failed to find parent category")
		}
		if parent.CategoryType != input.CategoryType {
			return nil, domainerrors.ErrValidationFailed.WithDetails("parent category has a different type")
		}
	}

	now := srv.now()
	category := &entity.Category{
		ParentID:     input.ParentID,
		Name:         name,
		Slug:         slug,
		Description:  input.Description,
		Icon:         input.Icon,
		CategoryType: input.CategoryType,
		OrderIndex:   input.OrderIndex,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := srv.categoryRepo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicateCategory) {
			return nil, domainerrors.ErrCategoryAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create category")
	}

	logFrom(ctx, srv.logger).Info("Category created", slog.String("slug", slug), slog.String("type", string(category.CategoryType)))

	return category, nil
}

func (srv *taxonomyService) TrendingTags(ctx context.Context, tagType entity.TagType, limit int) ([]*entity.Tag, error) {
	if limit <= 0 {
		limit = defaultTrendingTags
	}
	limit = min(limit, maxTrendingTags)

	tags, err := srv.tagRepo.ListTrending(ctx, tagType, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list trending tags")
	}

	return nonNil(tags), nil
}
