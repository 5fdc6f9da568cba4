package usecase

import (
	"context"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput defines a new taxonomy node.
type CreateCategoryInput struct {
	ParentID     *uuid.UUID
	Name         string
	Description  string
	Icon         string
	CategoryType entity.CategoryType
	OrderIndex   int
}

// TaxonomyUsecase defines category and tag operations.
type TaxonomyUsecase interface {
	// ListCategories returns the active categories of a type as a tree.
	ListCategories(ctx context.Context, categoryType entity.CategoryType) ([]*entity.Category, error)

	// CreateCategory adds a category. The slug is derived from the name.
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)

	// TrendingTags returns the most used tags.
	TrendingTags(ctx context.Context, tagType entity.TagType, limit int) ([]*entity.Tag, error)
}
