package usecase

import (
	"context"
	"time"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// AffiliateLinkInput describes a partner product link attached to a post.
type AffiliateLinkInput struct {
	ProductName        string
	ProductDescription string
	ProductImage       string
	ProductPrice       *int64
	ProductCategory    string
	Partner            entity.Partner
	PartnerProductID   string
	OriginalURL        string
	AffiliateURL       string
	CommissionRate     float64
	CommissionType     entity.CommissionType
	IsFeatured         bool
	Priority           int
	ExpiresAt          *time.Time
}

// PostInput holds the fields of a blog post. On update, nil fields are left unchanged
// and a non-nil Tags replaces the post's tags.
type PostInput struct {
	Title           *string
	Content         *string
	Excerpt         *string
	FeaturedImage   *string
	Category        *string
	Tags            []string
	Status          *entity.PostStatus
	ScheduledAt     *time.Time
	MetaTitle       *string
	MetaDescription *string
	RelatedPetTypes []string
	AffiliateLinks  []*AffiliateLinkInput
}

// ListPostsInput narrows a blog listing.
type ListPostsInput struct {
	Status   entity.PostStatus
	Search   string
	Category string
	Tag      string
	Sort     entity.PostSort
	Page     int
	PerPage  int
}

// PostPage is one page of posts.
type PostPage struct {
	Posts      []*entity.BlogPost
	Pagination entity.Pagination
}

// BlogUsecase defines the blog operations.
type BlogUsecase interface {
	List(ctx context.Context, input *ListPostsInput) (*PostPage, error)
	GetBySlug(ctx context.Context, slug string) (*entity.BlogPost, error)
	Create(ctx context.Context, authorID uuid.UUID, input *PostInput) (*entity.BlogPost, error)
	Update(ctx context.Context, authorID, id uuid.UUID, input *PostInput) (*entity.BlogPost, error)
	Delete(ctx context.Context, authorID, id uuid.UUID) error
	Like(ctx context.Context, id uuid.UUID) error
	Categories(ctx context.Context) ([]string, error)
	Tags(ctx context.Context) ([]*entity.Tag, error)
}
