package postgres

import (
	"context"

	"petplace/internal/domain/entity"
	domainerrors "petplace/internal/domain/errors"
	"petplace/internal/domain/repository"
	"petplace/internal/infra/persistence/model"
	"petplace/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// maxTagSlugLength matches the tags.slug column.
const maxTagSlugLength = 60

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// Create persists a category. Slugs are unique.
func (repo *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	categoryM := fromCategoryDomain(category)

	if err := repo.db.WithContext(ctx).Omit("Children").Create(categoryM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateCategory
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCategoryNotFound.WrapMessage("invalid parent category")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create category")
	}

	category.ID = categoryM.ID
	category.CreatedAt = categoryM.CreatedAt
	category.UpdatedAt = categoryM.UpdatedAt

	return nil
}

// FindByID retrieves a category by its ID.
func (repo *categoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// ListActiveByType returns the active categories of a type as a flat list ordered by order_index.
func (repo *categoryRepository) ListActiveByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error) {
	var categoryModels []*model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("category_type = ? AND is_active = ?", string(categoryType), true).
		Order("order_index ASC").
		Order("name ASC").
		Find(&categoryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]*entity.Category, 0, len(categoryModels))
	for _, categoryM := range categoryModels {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// tagRepository implements the repository.TagRepository interface.
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository is the constructor for tagRepository.
func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{
		db: db,
	}
}

// FindOrCreate returns the tag with the given name, creating it when missing.
func (repo *tagRepository) FindOrCreate(ctx context.Context, name string, tagType entity.TagType) (*entity.Tag, error) {
	var tagM model.TagModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Attrs(model.TagModel{Slug: util.Slugify(name, maxTagSlugLength), TagType: string(tagType)}).
		FirstOrCreate(&tagM).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find or create tag")
	}

	return toTagDomain(&tagM), nil
}

// IncrementUsage bumps usage_count of every given tag atomically.
func (repo *tagRepository) IncrementUsage(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.TagModel{}).
		Where("id IN ?", ids).
		UpdateColumn("usage_count", gorm.Expr("usage_count + ?", 1)).Error; err != nil {
		return errors.Wrap(err, "failed to increment tag usage")
	}

	return nil
}

// ListAll returns every tag by name.
func (repo *tagRepository) ListAll(ctx context.Context) ([]*entity.Tag, error) {
	var tagModels []*model.TagModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&tagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return toTagDomains(tagModels), nil
}

// ListTrending returns the most used tags, optionally of one type.
func (repo *tagRepository) ListTrending(ctx context.Context, tagType entity.TagType, limit int) ([]*entity.Tag, error) {
	query := repo.db.WithContext(ctx)
	if tagType != "" {
		query = query.Where("tag_type = ?", string(tagType))
	}

	var tagModels []*model.TagModel
	if err := query.
		Order("usage_count DESC").
		Order("name ASC").
		Limit(limit).
		Find(&tagModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list trending tags")
	}

	return toTagDomains(tagModels), nil
}

// --- Mapper Functions ---

func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	if data == nil {
		return nil
	}

	return &entity.Category{
		ID:           data.ID,
		ParentID:     data.ParentID,
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		Icon:         data.Icon,
		CategoryType: entity.CategoryType(data.CategoryType),
		OrderIndex:   data.OrderIndex,
		IsActive:     data.IsActive,
		ItemCount:    data.ItemCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCategoryDomain(data *entity.Category) *model.CategoryModel {
	if data == nil {
		return nil
	}

	return &model.CategoryModel{
		ID:           data.ID,
		ParentID:     data.ParentID,
		Name:         data.Name,
		Slug:         data.Slug,
		Description:  data.Description,
		Icon:         data.Icon,
		CategoryType: string(data.CategoryType),
		OrderIndex:   data.OrderIndex,
		IsActive:     data.IsActive,
		ItemCount:    data.ItemCount,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toTagDomains(models []*model.TagModel) []*entity.Tag {
	tags := make([]*entity.Tag, 0, len(models))
	for _, tagM := range models {
		tags = append(tags, toTagDomain(tagM))
	}

	return tags
}

func toTagDomain(data *model.TagModel) *entity.Tag {
	if data == nil {
		return nil
	}

	return &entity.Tag{
		ID:         data.ID,
		Name:       data.Name,
		Slug:       data.Slug,
		TagType:    entity.TagType(data.TagType),
		UsageCount: data.UsageCount,
		IsTrending: data.IsTrending,
		CreatedAt:  data.CreatedAt,
	}
}

func fromTagDomain(data *entity.Tag) *model.TagModel {
	if data == nil {
		return nil
	}

	return &model.TagModel{
		ID:         data.ID,
		Name:       data.Name,
		Slug:       data.Slug,
		TagType:    string(data.TagType),
		UsageCount: data.UsageCount,
		IsTrending: data.IsTrending,
		CreatedAt:  data.CreatedAt,
	}
}
