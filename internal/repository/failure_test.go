package repository_test

import (
	"context"
	"errors"
	"testing"

	"employee-management/internal/apperr"
	"employee-management/internal/models"
	"employee-management/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var errUnreachable = errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestProjectRepository_StoreFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("insert", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`INSERT INTO "projects"`).WillReturnError(errUnreachable)

		id, err := repository.NewProjectRepository(db).Insert(ctx, newProject())
		assert.Zero(t, id)
		assert.True(t, errors.Is(err, apperr.ErrPersistence))
		assert.True(t, errors.Is(err, errUnreachable))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "projects"`).WillReturnError(errUnreachable)

		got, err := repository.NewProjectRepository(db).Get(ctx, 1)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, apperr.ErrPersistence))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("list by status", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "projects" WHERE status = \$1`).
			WithArgs("COMPLETED").
			WillReturnError(errUnreachable)

		got, err := repository.NewProjectRepository(db).GetAllByStatus(ctx, models.StatusCompleted)
		assert.Nil(t, got)
		assert.True(t, errors.Is(err, apperr.ErrPersistence))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery(`SELECT count\(\*\) FROM "projects"`).WillReturnError(errUnreachable)

		_, err := repository.NewProjectRepository(db).Count(ctx)
		assert.True(t, errors.Is(err, apperr.ErrPersistence))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("delete", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectExec(`DELETE FROM "projects"`).WillReturnError(errUnreachable)

		ok, err := repository.NewProjectRepository(db).Delete(ctx, 1)
		assert.False(t, ok)

		var pe *apperr.PersistenceError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "delete project", pe.Op)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("update reports no match", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectExec(`UPDATE "projects"`).WillReturnResult(sqlmock.NewResult(0, 0))

		p := newProject()
		p.ID = 9
		ok, err := repository.NewProjectRepository(db).Update(ctx, p)
		require.NoError(t, err)
		assert.False(t, ok)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
