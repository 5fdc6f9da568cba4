package postgres

import (
	"context"
	"testing"
	"time"

	"petplace/internal/domain/entity"
	"petplace/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffiliateRepository_RecordClick(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAffiliateRepository(db)

	linkID := uuid.New()
	clickID := uuid.New()
	click := &entity.AffiliateClick{
		AffiliateLinkID: linkID,
		IPAddress:       "203.0.113.7",
		UserAgent:       "Mozilla/5.0 (iPhone) Mobile",
		DeviceType:      "mobile",
		CreatedAt:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(`UPDATE "affiliate_links" SET "click_count"=click_count \+ \$1,"last_click_at"=\$2 WHERE id = \$3`).
		WithArgs(1, click.CreatedAt, linkID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "affiliate_link_clicks"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(clickID.String()))

	err := repo.RecordClick(context.Background(), click)

	require.NoError(t, err)
	assert.Equal(t, clickID, click.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAffiliateRepository_RecordClick_UnknownLink(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAffiliateRepository(db)

	mock.ExpectExec(`UPDATE "affiliate_links" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RecordClick(context.Background(), &entity.AffiliateClick{AffiliateLinkID: uuid.New()})

	require.ErrorIs(t, err, repository.ErrAffiliateLinkNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAffiliateRepository_RecordConversion(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAffiliateRepository(db)

	linkID := uuid.New()
	amount := 10000.0
	conversion := &entity.AffiliateConversion{
		AffiliateLinkID:  linkID,
		OrderID:          "order-1",
		OrderAmount:      &amount,
		CommissionEarned: 500,
		Status:           entity.ConversionPending,
		CreatedAt:        time.Date(2024, 5, 1, 11, 0, 0, 0, time.UTC),
	}

	// The revenue is added in SQL so concurrent conversions cannot overwrite each other.
	mock.ExpectExec(`UPDATE "affiliate_links" SET "conversion_count"=conversion_count \+ \$1,"last_conversion_at"=\$2,"total_revenue"=total_revenue \+ \$3 WHERE id = \$4`).
		WithArgs(1, conversion.CreatedAt, 500.0, linkID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`INSERT INTO "affiliate_link_conversions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))

	err := repo.RecordConversion(context.Background(), conversion)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, conversion.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAffiliateRepository_DailyEarnings(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAffiliateRepository(db)

	mock.ExpectQuery(`SELECT TO_CHAR\(c.created_at, 'YYYY-MM-DD'\) AS date, SUM\(c.commission_earned\) AS earnings FROM affiliate_link_conversions AS c JOIN affiliate_links l`).
		WillReturnRows(sqlmock.NewRows([]string{"date", "earnings"}).
			AddRow("2024-05-01", 500.0).
			AddRow("2024-05-02", 12.5))

	rows, err := repo.DailyEarnings(context.Background(), uuid.New(), nil, nil)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-05-01", rows[0].Date)
	assert.InDelta(t, 12.5, rows[1].Earnings, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}
