package usecase

import (
	"context"
	"time"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLinkInput attaches a new affiliate link to one of the caller's posts.
type CreateLinkInput struct {
	BlogPostID uuid.UUID
	AffiliateLinkInput
}

// ListLinksInput narrows a link listing. Viewers who are not staff only see their own links.
type ListLinksInput struct {
	Viewer     Viewer
	AuthorID   *uuid.UUID
	BlogPostID *uuid.UUID
	Partner    entity.Partner
	Active     *bool
	Page       int
	PerPage    int
}

// LinkPage is one page of links.
type LinkPage struct {
	Links      []*entity.AffiliateLink
	Pagination entity.Pagination
}

// ClickInput is the request context of a redirect.
type ClickInput struct {
	UserID    *uuid.UUID
	IPAddress string
	UserAgent string
	Referrer  string
}

// ConversionInput reports a purchase attributed to a link.
type ConversionInput struct {
	UserID           *uuid.UUID
	OrderID          string
	OrderAmount      *float64
	CommissionEarned *float64
}

// EarningsReportInput bounds an earnings report. Nil bounds are open.
type EarningsReportInput struct {
	From *time.Time
	To   *time.Time
}

// AffiliateUsecase defines affiliate link tracking and reporting.
type AffiliateUsecase interface {
	CreateLink(ctx context.Context, authorID uuid.UUID, input *CreateLinkInput) (*entity.AffiliateLink, error)
	GetLink(ctx context.Context, viewer Viewer, id uuid.UUID) (*entity.AffiliateLink, error)
	ListLinks(ctx context.Context, input *ListLinksInput) (*LinkPage, error)
	TrackClick(ctx context.Context, linkID uuid.UUID, input *ClickInput) (string, error)
	TrackConversion(ctx context.Context, linkID uuid.UUID, input *ConversionInput) (*entity.AffiliateConversion, error)
	Stats(ctx context.Context, authorID uuid.UUID, period entity.StatsPeriod) (*entity.AffiliateStats, error)
	TopPerforming(ctx context.Context, limit int, partner entity.Partner, days int) ([]*entity.AffiliateLink, error)
	EarningsReport(ctx context.Context, authorID uuid.UUID, input *EarningsReportInput) (*entity.EarningsReport, error)
	LinkQRCode(ctx context.Context, linkID uuid.UUID) ([]byte, error)
}
