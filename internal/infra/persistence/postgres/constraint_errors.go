package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL integrity constraint SQLSTATEs.
const (
	sqlStateNotNull    = "23502"
	sqlStateForeignKey = "23503"
	sqlStateUnique     = "23505"
	sqlStateCheck      = "23514"
)

// sqlState extracts the SQLSTATE from pgx or lib/pq errors. Errors that lost their type on the
// way up, as mocked drivers return them, are matched on the code appearing in the message.
func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code)
	}

	msg := err.Error()
	for _, code := range []string{sqlStateNotNull, sqlStateForeignKey, sqlStateUnique, sqlStateCheck} {
		if strings.Contains(msg, code) {
			return code
		}
	}

	return ""
}

// violatedConstraint names the constraint a pgx error reports, or "" when unknown.
func violatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Constraint
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || sqlState(err) == sqlStateUnique {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "duplicate key")
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || sqlState(err) == sqlStateForeignKey
}

func isNotNullConstraintViolation(err error) bool {
	if sqlState(err) == sqlStateNotNull {
		return true
	}

	return strings.Contains(strings.ToLower(err.Error()), "null value")
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || sqlState(err) == sqlStateCheck
}
