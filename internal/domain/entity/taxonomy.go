package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType scopes a category to one kind of content.
type CategoryType string

const (
	CategoryTypeBusiness CategoryType = "business"
	CategoryTypeBlog     CategoryType = "blog"
	CategoryTypeProduct  CategoryType = "product"
	CategoryTypePet      CategoryType = "pet"
)

// IsValid checks if the category type is a known value.
func (t CategoryType) IsValid() bool {
	switch t {
	case CategoryTypeBusiness, CategoryTypeBlog, CategoryTypeProduct, CategoryTypePet:
		return true
	default:
		return false
	}
}

// Category is a node of the hierarchical taxonomy.
type Category struct {
	ID           uuid.UUID    `json:"id"`
	ParentID     *uuid.UUID   `json:"parent_id,omitempty"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	Description  string       `json:"description,omitempty"`
	Icon         string       `json:"icon,omitempty"`
	CategoryType CategoryType `json:"category_type"`
	OrderIndex   int          `json:"order_index"`
	IsActive     bool         `json:"is_active"`
	ItemCount    int64        `json:"item_count"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	Children     []*Category  `json:"children,omitempty"`
}

// BuildCategoryTree nests categories under their parents. The input order, expected to be
// by order_index, is preserved among siblings. Orphans whose parent is absent become roots.
func BuildCategoryTree(categories []*Category) []*Category {
	byID := make(map[uuid.UUID]*Category, len(categories))
	for _, c := range categories {
		c.Children = nil
		byID[c.ID] = c
	}

	roots := make([]*Category, 0, len(categories))
	for _, c := range categories {
		if c.ParentID != nil {
			if parent, ok := byID[*c.ParentID]; ok {
				parent.Children = append(parent.Children, c)

				continue
			}
		}
		roots = append(roots, c)
	}

	return roots
}

// TagType scopes a tag.
type TagType string

const (
	TagTypeBlog     TagType = "blog"
	TagTypeReview   TagType = "review"
	TagTypeBusiness TagType = "business"
	TagTypeGeneral  TagType = "general"
)

// Tag is a free-form label shared by posts.
type Tag struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	TagType    TagType   `json:"tag_type"`
	UsageCount int64     `json:"usage_count"`
	IsTrending bool      `json:"is_trending"`
	CreatedAt  time.Time `json:"created_at"`
}
