package repository

import (
	"context"
	"errors"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for taxonomy persistence.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category slug is taken.
	ErrDuplicateCategory = errors.New("category already exists")
)

// CategoryRepository defines the persistence operations of the category taxonomy.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// ListActiveByType returns the active categories of a type ordered by order_index.
	ListActiveByType(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error)
}

// TagRepository defines the persistence operations of tags.
type TagRepository interface {
	// FindOrCreate returns the tag with the given name, creating it when missing.
	FindOrCreate(ctx context.Context, name string, tagType entity.TagType) (*entity.Tag, error)

	// IncrementUsage atomically adds one use to each tag.
	IncrementUsage(ctx context.Context, ids []uuid.UUID) error

	// ListAll returns every tag by name.
	ListAll(ctx context.Context) ([]*entity.Tag, error)

	// ListTrending returns tags by usage descending. An empty type matches all.
	ListTrending(ctx context.Context, tagType entity.TagType, limit int) ([]*entity.Tag, error)
}
