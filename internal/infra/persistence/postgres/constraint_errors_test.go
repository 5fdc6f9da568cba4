package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintClassification(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		unique     bool
		foreignKey bool
		notNull    bool
		check      bool
	}{
		{name: "pgx unique", err: &pgconn.PgError{Code: "23505"}, unique: true},
		{name: "wrapped pgx foreign key", err: errors.Wrap(&pgconn.PgError{Code: "23503"}, "insert review"), foreignKey: true},
		{name: "lib/pq check", err: &pq.Error{Code: "23514"}, check: true},
		{name: "gorm duplicated key", err: gorm.ErrDuplicatedKey, unique: true},
		{name: "message with sqlstate", err: errors.New(`null value in column "name" (SQLSTATE 23502)`), notNull: true},
		{name: "unrelated", err: errors.New("connection reset by peer")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.unique, isUniqueConstraintViolation(tt.err))
			assert.Equal(t, tt.foreignKey, isForeignKeyConstraintViolation(tt.err))
			assert.Equal(t, tt.notNull, isNotNullConstraintViolation(tt.err))
			assert.Equal(t, tt.check, isCheckConstraintViolation(tt.err))
		})
	}
}

func TestViolatedConstraint(t *testing.T) {
	assert.Equal(t, "uni_users_nickname", violatedConstraint(&pgconn.PgError{Code: "23505", ConstraintName: "uni_users_nickname"}))
	assert.Equal(t, "reviews_rating_check", violatedConstraint(&pq.Error{Code: "23514", Constraint: "reviews_rating_check"}))
	assert.Empty(t, violatedConstraint(errors.New("duplicate key")))
}
