package entity

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "petplace/internal/domain/errors"

	"github.com/google/uuid"
)

// PostStatus is the publication state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusScheduled PostStatus = "scheduled"
	PostStatusArchived  PostStatus = "archived"
)

var postTransitions = map[PostStatus][]PostStatus{
	PostStatusDraft:     {PostStatusPublished, PostStatusScheduled, PostStatusArchived},
	PostStatusScheduled: {PostStatusPublished, PostStatusDraft},
	PostStatusPublished: {PostStatusArchived, PostStatusDraft},
	PostStatusArchived:  {PostStatusDraft},
}

// IsValid checks if the status is a known value.
func (s PostStatus) IsValid() bool {
	_, ok := postTransitions[s]

	return ok
}

// CanTransitionTo reports whether a post in status s may move to next.
func (s PostStatus) CanTransitionTo(next PostStatus) bool {
	for _, allowed := range postTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

const (
	excerptRunes   = 200
	wordsPerMinute = 200
)

// BlogPost is an editorial article, optionally carrying affiliate product links.
type BlogPost struct {
	ID                uuid.UUID        `json:"id"`
	AuthorID          uuid.UUID        `json:"author_id"`
	Title             string           `json:"title"`
	Slug              string           `json:"slug"`
	Content           string           `json:"content"`
	Excerpt           string           `json:"excerpt"`
	FeaturedImage     string           `json:"featured_image,omitempty"`
	Category          string           `json:"category"`
	Tags              []*Tag           `json:"tags"`
	Status            PostStatus       `json:"status"`
	PublishedAt       *time.Time       `json:"published_at,omitempty"`
	ScheduledAt       *time.Time       `json:"scheduled_at,omitempty"`
	MetaTitle         string           `json:"meta_title,omitempty"`
	MetaDescription   string           `json:"meta_description,omitempty"`
	ViewCount         int64            `json:"view_count"`
	LikeCount         int64            `json:"like_count"`
	EstimatedReadTime int              `json:"estimated_read_time"`
	RelatedPetTypes   []string         `json:"related_pet_types"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Author            *OwnerSummary    `json:"author,omitempty"`
	AffiliateLinks    []*AffiliateLink `json:"affiliate_links,omitempty"`
}

// TransitionTo changes the publication status, stamping PublishedAt on first publish.
func (p *BlogPost) TransitionTo(next PostStatus, now time.Time) error {
	if p.Status == next {
		return nil
	}
	if !p.Status.CanTransitionTo(next) {
		return domainerrors.ErrInvalidStatusTransition.WithDetails(string(p.Status) + " -> " + string(next))
	}

	p.Status = next
	if next == PostStatusPublished && p.PublishedAt == nil {
		publishedAt := now
		p.PublishedAt = &publishedAt
	}

	return nil
}

// ExcerptOf returns the first 200 runes of content followed by an ellipsis when truncated.
func ExcerptOf(content string) string {
	content = strings.TrimSpace(content)
	if utf8.RuneCountInString(content) <= excerptRunes {
		return content
	}

	return string([]rune(content)[:excerptRunes]) + "..."
}

// ReadTimeMinutes estimates reading time at 200 words per minute, never less than one.
func ReadTimeMinutes(content string) int {
	words := len(strings.Fields(content))
	minutes := int(math.Round(float64(words) / wordsPerMinute))

	return max(1, minutes)
}

// PostSort is the ordering of a blog listing.
type PostSort string

const (
	PostSortNewest  PostSort = "newest"
	PostSortOldest  PostSort = "oldest"
	PostSortPopular PostSort = "popular"
	PostSortTitle   PostSort = "title"
)

// PostFilter narrows a blog listing.
type PostFilter struct {
	Status   PostStatus
	Search   string
	Category string
	Tag      string
	AuthorID *uuid.UUID
	Sort     PostSort
}
