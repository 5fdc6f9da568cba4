package postgres

import (
	"context"
	"testing"

	"petplace/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_SearchActive(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "users" WHERE is_active = \$1 AND \(name ILIKE \$2 OR nickname ILIKE \$3\)`).
		WithArgs(true, "%corgi%", "%corgi%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(21))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE is_active = \$1 AND \(name ILIKE \$2 OR nickname ILIKE \$3\) ORDER BY name LIMIT \$4 OFFSET \$5`).
		WithArgs(true, "%corgi%", "%corgi%", 20, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "nickname", "is_active"}).
			AddRow(id.String(), "Mina", "corgi_mom", true))

	users, total, err := repo.SearchActive(context.Background(), "corgi", entity.Page{Page: 2, PerPage: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(21), total)
	require.Len(t, users, 1)
	assert.Equal(t, id, users[0].ID)
	require.NotNil(t, users[0].Nickname)
	assert.Equal(t, "corgi_mom", *users[0].Nickname)
	assert.Equal(t, []string{}, users[0].PetTypes)
	require.NoError(t, mock.ExpectationsWereMet())
}
