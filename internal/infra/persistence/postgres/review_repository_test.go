package postgres

import (
	"context"
	"errors"
	"testing"

	"petplace/internal/domain/entity"
	"petplace/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRepository_Create_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`INSERT INTO "reviews"`).
		WillReturnError(errors.New(`ERROR: duplicate key value violates unique constraint "idx_review_user_business" (SQLSTATE 23505)`))

	err := repo.Create(context.Background(), &entity.Review{
		UserID:     uuid.New(),
		BusinessID: uuid.New(),
		Rating:     5,
		Content:    "great",
		Status:     entity.ReviewStatusApproved,
	})

	require.ErrorIs(t, err, repository.ErrDuplicateReview)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_AggregateApproved(t *testing.T) {
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		expected entity.RatingAggregate
	}{
		{
			// Postgres returns AVG over an integer column as numeric text.
			name:     "ratings five four three",
			rows:     sqlmock.NewRows([]string{"average", "count"}).AddRow("4.0000000000000000", 3),
			expected: entity.RatingAggregate{Average: 4.0, Count: 3},
		},
		{
			name:     "rounds the average to one decimal",
			rows:     sqlmock.NewRows([]string{"average", "count"}).AddRow(4.333333, 3),
			expected: entity.RatingAggregate{Average: 4.3, Count: 3},
		},
		{
			name:     "rounds half up",
			rows:     sqlmock.NewRows([]string{"average", "count"}).AddRow(4.25, 4),
			expected: entity.RatingAggregate{Average: 4.3, Count: 4},
		},
		{
			name:     "single review",
			rows:     sqlmock.NewRows([]string{"average", "count"}).AddRow(1.0, 1),
			expected: entity.RatingAggregate{Average: 1.0, Count: 1},
		},
		{
			name:     "no approved reviews",
			rows:     sqlmock.NewRows([]string{"average", "count"}).AddRow(nil, 0),
			expected: entity.RatingAggregate{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewReviewRepository(db)
			businessID := uuid.New()

			mock.ExpectQuery(`SELECT AVG\(rating\) AS average, COUNT\(\*\) AS count FROM "reviews" WHERE business_id = \$1 AND status = \$2`).
				WithArgs(businessID, "approved").
				WillReturnRows(tt.rows)

			got, err := repo.AggregateApproved(context.Background(), businessID)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepository_RatingDistribution(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)

	mock.ExpectQuery(`SELECT rating, COUNT\(\*\) AS count FROM "reviews"`).
		WillReturnRows(sqlmock.NewRows([]string{"rating", "count"}).
			AddRow(5, 2).
			AddRow(3, 1))

	got, err := repo.RatingDistribution(context.Background(), uuid.New())

	require.NoError(t, err)
	assert.Equal(t, entity.RatingDistribution{5: 2, 4: 0, 3: 1, 2: 0, 1: 0}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_IncrementHelpful(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReviewRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "reviews" SET "helpful_count"=helpful_count \+ \$1 WHERE id = \$2`).
		WithArgs(1, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.IncrementHelpful(context.Background(), id)

	require.ErrorIs(t, err, repository.ErrReviewNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
