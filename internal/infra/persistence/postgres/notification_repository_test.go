package postgres

import (
	"context"
	"testing"
	"time"

	"petplace/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepository_MarkAllRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)
	userID := uuid.New()
	now := time.Now()

	mock.ExpectExec(`UPDATE "notifications" SET "is_read"=\$1,"read_at"=\$2 WHERE user_id = \$3 AND is_read = \$4`).
		WithArgs(true, now, userID, false).
		WillReturnResult(sqlmock.NewResult(0, 3))

	updated, err := repo.MarkAllRead(context.Background(), userID, now)

	require.NoError(t, err)
	assert.Equal(t, int64(3), updated)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotificationRepository_FindNotificationsByUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewNotificationRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "notifications" WHERE user_id = \$1 AND is_read = \$2`).
		WithArgs(userID, false).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT \* FROM "notifications" WHERE user_id = \$1 AND is_read = \$2 ORDER BY created_at DESC LIMIT \$3`).
		WithArgs(userID, false, 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "type", "is_read"}).
			AddRow(uuid.New().String(), userID.String(), "New review", "review", false))

	notifications, total, err := repo.FindNotificationsByUser(context.Background(), userID,
		entity.NotificationFilter{UnreadOnly: true}, entity.Page{Page: 1, PerPage: 20})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationType("review"), notifications[0].Type)
	require.NoError(t, mock.ExpectationsWereMet())
}
