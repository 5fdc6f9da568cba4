package repository

import (
	"context"
	"errors"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for blog persistence.
var (
	// ErrPostNotFound is returned when a blog post is not found.
	ErrPostNotFound = errors.New("blog post not found")
	// ErrDuplicateSlug is returned when a slug is already taken.
	ErrDuplicateSlug = errors.New("slug already exists")
)

// BlogRepository defines the persistence operations of blog posts.
type BlogRepository interface {
	// Create persists a new post together with its tag associations.
	Create(ctx context.Context, post *entity.BlogPost) error

	// FindByID retrieves a post with its tags.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BlogPost, error)

	// FindBySlug retrieves a post with its author, tags and affiliate links.
	FindBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)

	// ExistsBySlug reports whether a slug is taken.
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// Update writes the editable fields of a post and replaces its tag associations.
	Update(ctx context.Context, post *entity.BlogPost) error

	// Delete removes a post. Its affiliate links cascade.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns one page of posts matching the filter.
	List(ctx context.Context, filter entity.PostFilter, page entity.Page) ([]*entity.BlogPost, int64, error)

	// IncrementViewCount atomically adds one view.
	IncrementViewCount(ctx context.Context, id uuid.UUID) error

	// IncrementLikeCount atomically adds one like.
	IncrementLikeCount(ctx context.Context, id uuid.UUID) error

	// Categories returns the distinct categories of published posts.
	Categories(ctx context.Context) ([]string, error)

	// CountByAuthor returns the author's posts per status.
	CountByAuthor(ctx context.Context, authorID uuid.UUID) (map[entity.PostStatus]int64, error)
}
