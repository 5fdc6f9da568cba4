package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func TestAffiliateLink_CommissionFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		link       AffiliateLink
		amount     *float64
		commission *float64
		expected   float64
	}{
		{
			name:     "percentage of order amount",
			link:     AffiliateLink{CommissionRate: 0.05, CommissionType: CommissionPercentage},
			amount:   floatPtr(10000),
			expected: 500,
		},
		{
			name:       "explicit commission wins",
			link:       AffiliateLink{CommissionRate: 0.05, CommissionType: CommissionPercentage},
			amount:     floatPtr(10000),
			commission: floatPtr(123),
			expected:   123,
		},
		{
			name:     "no amount and no commission",
			link:     AffiliateLink{CommissionRate: 0.05, CommissionType: CommissionPercentage},
			expected: 0,
		},
		{
			name:     "fixed commission ignores amount",
			link:     AffiliateLink{CommissionRate: 1500, CommissionType: CommissionFixed},
			amount:   floatPtr(10000),
			expected: 1500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.expected, tt.link.CommissionFor(tt.amount, tt.commission), 1e-9)
		})
	}
}

func TestAffiliateLink_DerivedMetrics(t *testing.T) {
	t.Parallel()

	t.Run("zero clicks", func(t *testing.T) {
		t.Parallel()

		link := AffiliateLink{ClickCount: 0, ConversionCount: 3, TotalRevenue: 900}

		assert.Zero(t, link.ConversionRate())
		assert.Zero(t, link.RevenuePerClick())
	})

	t.Run("rounded to two decimals", func(t *testing.T) {
		t.Parallel()

		link := AffiliateLink{ClickCount: 3, ConversionCount: 1, TotalRevenue: 1000}

		assert.InDelta(t, 33.33, link.ConversionRate(), 1e-9)
		assert.InDelta(t, 333.33, link.RevenuePerClick(), 1e-9)
	})
}

func TestAffiliateLink_Availability(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.True(t, (&AffiliateLink{IsActive: true}).IsAvailable(now))
	assert.True(t, (&AffiliateLink{IsActive: true, ExpiresAt: &future}).IsAvailable(now))
	assert.False(t, (&AffiliateLink{IsActive: true, ExpiresAt: &past}).IsAvailable(now))
	assert.False(t, (&AffiliateLink{IsActive: false}).IsAvailable(now))
}

func TestStatsPeriod_Days(t *testing.T) {
	t.Parallel()

	tests := map[StatsPeriod]int{
		PeriodDay:   1,
		PeriodWeek:  7,
		PeriodMonth: 30,
		PeriodYear:  365,
		"decade":    30,
		"":          30,
	}

	for period, days := range tests {
		assert.Equal(t, days, period.Days(), "period %q", period)
	}

	now := time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), PeriodWeek.Since(now))
}

func TestSummarizeLinks(t *testing.T) {
	t.Parallel()

	links := []*AffiliateLink{
		{ID: uuid.New(), ProductName: "kibble", Partner: PartnerCoupang, ClickCount: 100, ConversionCount: 5, TotalRevenue: 500},
		{ID: uuid.New(), ProductName: "leash", Partner: PartnerAmazon, ClickCount: 50, ConversionCount: 1, TotalRevenue: 800},
		{ID: uuid.New(), ProductName: "toy", Partner: PartnerCoupang, ClickCount: 10, ConversionCount: 0, TotalRevenue: 0},
		{ID: uuid.New(), ProductName: "bed", Partner: PartnerGmarket, ClickCount: 40, ConversionCount: 2, TotalRevenue: 500},
		{ID: uuid.New(), ProductName: "bowl", Partner: PartnerGmarket, ClickCount: 1, ConversionCount: 0, TotalRevenue: 10.01},
		{ID: uuid.New(), ProductName: "brush", Partner: PartnerOther, ClickCount: 0, ConversionCount: 0, TotalRevenue: 0},
	}

	stats := SummarizeLinks(PeriodWeek, links)

	assert.Equal(t, PeriodWeek, stats.Period)
	assert.Equal(t, 6, stats.Totals.TotalLinks)
	assert.Equal(t, int64(201), stats.Totals.TotalClicks)
	assert.Equal(t, int64(8), stats.Totals.TotalConversions)
	assert.InDelta(t, 1810.01, stats.Totals.TotalEarnings, 1e-9)
	assert.InDelta(t, 3.98, stats.Totals.ConversionRate, 1e-9)

	require.Len(t, stats.PartnerStats, 4)
	assert.Equal(t, PartnerAmazon, stats.PartnerStats[0].Partner)
	assert.Equal(t, PartnerGmarket, stats.PartnerStats[1].Partner)
	assert.Equal(t, PartnerCoupang, stats.PartnerStats[2].Partner)
	assert.Equal(t, 2, stats.PartnerStats[2].Links)
	assert.Equal(t, PartnerOther, stats.PartnerStats[3].Partner)

	require.Len(t, stats.TopLinks, 5)
	assert.Equal(t, "leash", stats.TopLinks[0].ProductName)
	// kibble and bed tie on revenue and keep their input order.
	assert.Equal(t, "kibble", stats.TopLinks[1].ProductName)
	assert.Equal(t, "bed", stats.TopLinks[2].ProductName)
	assert.Equal(t, "bowl", stats.TopLinks[3].ProductName)

	assert.Equal(t, "kibble", links[0].ProductName, "input order must not be modified")
}

func TestSummarizeLinks_Empty(t *testing.T) {
	t.Parallel()

	stats := SummarizeLinks(PeriodMonth, nil)

	assert.Zero(t, stats.Totals.TotalLinks)
	assert.Zero(t, stats.Totals.ConversionRate)
	assert.NotNil(t, stats.PartnerStats)
	assert.NotNil(t, stats.TopLinks)
}
