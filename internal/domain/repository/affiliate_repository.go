package repository

import (
	"context"
	"errors"
	"time"

	"petplace/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAffiliateLinkNotFound is returned when an affiliate link is not found.
var ErrAffiliateLinkNotFound = errors.New("affiliate link not found")

// AffiliateRepository defines the persistence operations of affiliate links and their events.
type AffiliateRepository interface {
	// CreateLink persists a new link.
	CreateLink(ctx context.Context, link *entity.AffiliateLink) error

	// FindLinkByID retrieves a link.
	FindLinkByID(ctx context.Context, id uuid.UUID) (*entity.AffiliateLink, error)

	// ListLinks returns one page of links matching the filter, newest first.
	ListLinks(ctx context.Context, filter entity.AffiliateLinkFilter, page entity.Page) ([]*entity.AffiliateLink, int64, error)

	// FindLinksByAuthor returns the links of the author's posts created inside [from, to]. Nil bounds are open.
	FindLinksByAuthor(ctx context.Context, authorID uuid.UUID, from, to *time.Time) ([]*entity.AffiliateLink, error)

	// RecordClick appends a click row and atomically increments the link's click counter.
	RecordClick(ctx context.Context, click *entity.AffiliateClick) error

	// RecordConversion appends a conversion row and atomically adds it to the link's counters and revenue.
	RecordConversion(ctx context.Context, conversion *entity.AffiliateConversion) error

	// FindTopPerforming returns active links clicked since the cutoff, by revenue descending.
	FindTopPerforming(ctx context.Context, since time.Time, partner entity.Partner, limit int) ([]*entity.AffiliateLink, error)

	// DailyEarnings sums the commissions of the author's conversions per UTC day inside [from, to].
	DailyEarnings(ctx context.Context, authorID uuid.UUID, from, to *time.Time) ([]*entity.DailyEarnings, error)
}
