package entity

import (
	"sort"
	"time"

	"petplace/internal/util"

	"github.com/google/uuid"
)

// Partner identifies the affiliate network a product link belongs to.
type Partner string

const (
	PartnerCoupang        Partner = "coupang"
	PartnerNaverShopping  Partner = "naver_shopping"
	PartnerGmarket        Partner = "gmarket"
	PartnerEleventhStreet Partner = "eleventh_street"
	PartnerInterpark      Partner = "interpark"
	PartnerAmazon         Partner = "amazon"
	PartnerOther          Partner = "other"
)

// IsValid checks if the partner is a known network.
func (p Partner) IsValid() bool {
	switch p {
	case PartnerCoupang, PartnerNaverShopping, PartnerGmarket, PartnerEleventhStreet,
		PartnerInterpark, PartnerAmazon, PartnerOther:
		return true
	default:
		return false
	}
}

// CommissionType selects how a conversion's commission is computed.
type CommissionType string

const (
	CommissionPercentage CommissionType = "percentage"
	CommissionFixed      CommissionType = "fixed"
)

// ConversionStatus is the settlement state of a conversion.
type ConversionStatus string

const (
	ConversionPending   ConversionStatus = "pending"
	ConversionConfirmed ConversionStatus = "confirmed"
	ConversionCancelled ConversionStatus = "cancelled"
)

// AffiliateLink is a trackable partner product link owned by a blog post.
type AffiliateLink struct {
	ID                 uuid.UUID      `json:"id"`
	BlogPostID         uuid.UUID      `json:"blog_post_id"`
	ProductName        string         `json:"product_name"`
	ProductDescription string         `json:"product_description,omitempty"`
	ProductImage       string         `json:"product_image,omitempty"`
	ProductPrice       *int64         `json:"product_price,omitempty"`
	ProductCategory    string         `json:"product_category,omitempty"`
	Partner            Partner        `json:"partner"`
	PartnerProductID   string         `json:"partner_product_id,omitempty"`
	OriginalURL        string         `json:"original_url"`
	AffiliateURL       string         `json:"affiliate_url"`
	ShortURL           string         `json:"short_url"`
	CommissionRate     float64        `json:"commission_rate"`
	CommissionType     CommissionType `json:"commission_type"`
	ClickCount         int64          `json:"click_count"`
	ConversionCount    int64          `json:"conversion_count"`
	TotalRevenue       float64        `json:"total_revenue"`
	LastClickAt        *time.Time     `json:"last_click_at,omitempty"`
	LastConversionAt   *time.Time     `json:"last_conversion_at,omitempty"`
	IsActive           bool           `json:"is_active"`
	IsFeatured         bool           `json:"is_featured"`
	Priority           int            `json:"priority"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	ExpiresAt          *time.Time     `json:"expires_at,omitempty"`
}

// IsExpired reports whether the link has passed its expiry at now.
func (l *AffiliateLink) IsExpired(now time.Time) bool {
	return l.ExpiresAt != nil && now.After(*l.ExpiresAt)
}

// IsAvailable reports whether the link can still take clicks.
func (l *AffiliateLink) IsAvailable(now time.Time) bool {
	return l.IsActive && !l.IsExpired(now)
}

// ConversionRate is conversions per click as a percentage, two decimals. Zero clicks yield zero.
func (l *AffiliateLink) ConversionRate() float64 {
	return ConversionRate(l.ClickCount, l.ConversionCount)
}

// RevenuePerClick is revenue divided by clicks, two decimals. Zero clicks yield zero.
func (l *AffiliateLink) RevenuePerClick() float64 {
	if l.ClickCount == 0 {
		return 0
	}

	return util.Round(l.TotalRevenue/float64(l.ClickCount), 2)
}

// CommissionFor resolves the commission of a conversion. An explicit commission wins,
// then a fixed commission type, then the order amount times the rate.
func (l *AffiliateLink) CommissionFor(orderAmount, commissionEarned *float64) float64 {
	switch {
	case commissionEarned != nil:
		return *commissionEarned
	case l.CommissionType == CommissionFixed:
		return l.CommissionRate
	case orderAmount != nil:
		return *orderAmount * l.CommissionRate
	default:
		return 0
	}
}

// ConversionRate computes conversions/clicks*100 rounded to two decimals.
func ConversionRate(clicks, conversions int64) float64 {
	if clicks == 0 {
		return 0
	}

	return util.Round(float64(conversions)/float64(clicks)*100, 2)
}

// AffiliateClick records one redirect through a link. Rows are append-only.
type AffiliateClick struct {
	ID              uuid.UUID  `json:"id"`
	AffiliateLinkID uuid.UUID  `json:"affiliate_link_id"`
	UserID          *uuid.UUID `json:"user_id,omitempty"`
	IPAddress       string     `json:"ip_address,omitempty"`
	UserAgent       string     `json:"user_agent,omitempty"`
	Referrer        string     `json:"referrer,omitempty"`
	DeviceType      string     `json:"device_type,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// AffiliateConversion records a purchase attributed to a link. Rows are append-only.
type AffiliateConversion struct {
	ID               uuid.UUID        `json:"id"`
	AffiliateLinkID  uuid.UUID        `json:"affiliate_link_id"`
	UserID           *uuid.UUID       `json:"user_id,omitempty"`
	OrderID          string           `json:"order_id,omitempty"`
	OrderAmount      *float64         `json:"order_amount,omitempty"`
	CommissionEarned float64          `json:"commission_earned"`
	Status           ConversionStatus `json:"status"`
	CreatedAt        time.Time        `json:"created_at"`
}

// StatsPeriod is the trailing window used by affiliate statistics.
type StatsPeriod string

const (
	PeriodDay   StatsPeriod = "day"
	PeriodWeek  StatsPeriod = "week"
	PeriodMonth StatsPeriod = "month"
	PeriodYear  StatsPeriod = "year"
)

// Days returns the window length. Unknown periods fall back to a month.
func (p StatsPeriod) Days() int {
	switch p {
	case PeriodDay:
		return 1
	case PeriodWeek:
		return 7
	case PeriodYear:
		return 365
	default:
		return 30
	}
}

// Since returns the window start for a window ending at now.
func (p StatsPeriod) Since(now time.Time) time.Time {
	return now.AddDate(0, 0, -p.Days())
}

// AffiliateTotals sums the counters of a set of links.
type AffiliateTotals struct {
	TotalLinks       int     `json:"total_links"`
	TotalClicks      int64   `json:"total_clicks"`
	TotalConversions int64   `json:"total_conversions"`
	TotalEarnings    float64 `json:"total_earnings"`
	ConversionRate   float64 `json:"conversion_rate"`
}

// PartnerStats is one partner's share of an author's links.
type PartnerStats struct {
	Partner     Partner `json:"partner"`
	Links       int     `json:"links"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Earnings    float64 `json:"earnings"`
}

// LinkPerformance is the ranking row of one link.
type LinkPerformance struct {
	ID          uuid.UUID `json:"id"`
	ProductName string    `json:"product_name"`
	Partner     Partner   `json:"partner"`
	Clicks      int64     `json:"clicks"`
	Conversions int64     `json:"conversions"`
	Earnings    float64   `json:"earnings"`
}

// AffiliateStats is an author's link performance inside a window.
type AffiliateStats struct {
	Period       StatsPeriod        `json:"period"`
	Totals       AffiliateTotals    `json:"total_stats"`
	PartnerStats []*PartnerStats    `json:"partner_stats"`
	TopLinks     []*LinkPerformance `json:"top_links"`
}

const statsTopLinks = 5

// SummarizeLinks builds the totals, the per-partner breakdown and the top links of links.
// Partners and links are ranked by revenue descending; ties keep input order.
func SummarizeLinks(period StatsPeriod, links []*AffiliateLink) *AffiliateStats {
	stats := &AffiliateStats{Period: period}
	byPartner := make(map[Partner]*PartnerStats)

	for _, link := range links {
		stats.Totals.TotalLinks++
		stats.Totals.TotalClicks += link.ClickCount
		stats.Totals.TotalConversions += link.ConversionCount
		stats.Totals.TotalEarnings += link.TotalRevenue

		ps, ok := byPartner[link.Partner]
		if !ok {
			ps = &PartnerStats{Partner: link.Partner}
			byPartner[link.Partner] = ps
			stats.PartnerStats = append(stats.PartnerStats, ps)
		}
		ps.Links++
		ps.Clicks += link.ClickCount
		ps.Conversions += link.ConversionCount
		ps.Earnings += link.TotalRevenue
	}

	stats.Totals.TotalEarnings = util.Round(stats.Totals.TotalEarnings, 2)
	stats.Totals.ConversionRate = ConversionRate(stats.Totals.TotalClicks, stats.Totals.TotalConversions)
	for _, ps := range stats.PartnerStats {
		ps.Earnings = util.Round(ps.Earnings, 2)
	}
	sort.SliceStable(stats.PartnerStats, func(i, j int) bool {
		return stats.PartnerStats[i].Earnings > stats.PartnerStats[j].Earnings
	})

	ranked := make([]*AffiliateLink, len(links))
	copy(ranked, links)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenue > ranked[j].TotalRevenue
	})
	for _, link := range ranked[:min(statsTopLinks, len(ranked))] {
		stats.TopLinks = append(stats.TopLinks, &LinkPerformance{
			ID:          link.ID,
			ProductName: link.ProductName,
			Partner:     link.Partner,
			Clicks:      link.ClickCount,
			Conversions: link.ConversionCount,
			Earnings:    link.TotalRevenue,
		})
	}

	if stats.PartnerStats == nil {
		stats.PartnerStats = []*PartnerStats{}
	}
	if stats.TopLinks == nil {
		stats.TopLinks = []*LinkPerformance{}
	}

	return stats
}

// DailyEarnings is the commission earned on one calendar day (UTC, yyyy-mm-dd).
type DailyEarnings struct {
	Date     string  `json:"date"`
	Earnings float64 `json:"earnings"`
}

// EarningsReport is an author's commission history over an optional range.
type EarningsReport struct {
	From             *time.Time       `json:"from,omitempty"`
	To               *time.Time       `json:"to,omitempty"`
	DailyEarnings    []*DailyEarnings `json:"daily_earnings"`
	TotalEarnings    float64          `json:"total_earnings"`
	TotalConversions int64            `json:"total_conversions"`
	TotalClicks      int64            `json:"total_clicks"`
}

// AffiliateLinkFilter narrows a link listing.
type AffiliateLinkFilter struct {
	AuthorID   *uuid.UUID
	BlogPostID *uuid.UUID
	Partner    Partner
	Active     *bool
}
