package postgres

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"localguide/internal/domain/entity"
	domainerrors "localguide/internal/domain/errors"
	"localguide/internal/domain/repository"
	"localguide/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
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

func TestReviewRepository_DeleteOwned(t *testing.T) {
	deleteSQL := regexp.QuoteMeta(`DELETE FROM "reviews" WHERE id = $1 AND user_id = $2`)

	tests := []struct {
		name      string
		setupMock func(sqlmock.Sqlmock)
		wantErr   error
	}{
		{
			name: "owner deletes own review",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(deleteSQL).
					WithArgs(int64(7), "user-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "missing or foreign review is reported as not found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(deleteSQL).
					WithArgs(int64(7), "user-1").
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: repository.ErrReviewNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.setupMock(mock)

			err := NewReviewRepository(db).DeleteOwned(context.Background(), 7, "user-1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestReviewRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "reviews" WHERE id = $1`)).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := NewReviewRepository(db).Delete(context.Background(), 3)

	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReviewRepository_DeleteDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec(`DELETE FROM "reviews"`).WillReturnError(sql.ErrConnDone)

	err := NewReviewRepository(db).Delete(context.Background(), 3)

	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrReviewNotFound)
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestImageRepository_FindByEntitiesUsesSingleQuery(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"id", "entity_type", "entity_id", "url", "is_primary", "order_index"}).
		AddRow(1, "spot", "a", "/a-primary.jpg", true, 0).
		AddRow(2, "spot", "b", "/b-1.jpg", false, 0).
		AddRow(3, "spot", "a", "/a-1.jpg", false, 1)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "images" WHERE entity_type = $1 AND entity_id IN ($2,$3) ORDER BY order_index ASC, id ASC`)).
		WithArgs("spot", "a", "b").
		WillReturnRows(rows)

	images, err := NewImageRepository(db).FindByEntities(context.Background(), entity.EntityTypeSpot, []string{"a", "b"})

	require.NoError(t, err)
	require.Len(t, images, 3)
	assert.Equal(t, "/a-primary.jpg", images[0].URL)
	assert.True(t, images[0].IsPrimary)
	assert.Equal(t, entity.EntityTypeSpot, images[1].EntityType)
	assert.Equal(t, 1, images[2].OrderIndex)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImageRepository_FindByEntitiesEmpty(t *testing.T) {
	db, mock := newMockDB(t)

	images, err := NewImageRepository(db).FindByEntities(context.Background(), entity.EntityTypeLandmark, nil)

	require.NoError(t, err)
	assert.Empty(t, images)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLandmarkRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "landmarks" WHERE id = $1`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	landmark, err := NewLandmarkRepository(db).FindByID(context.Background(), "abc")

	assert.Nil(t, landmark)
	assert.ErrorIs(t, err, repository.ErrLandmarkNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSpotRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	rows := sqlmock.NewRows([]string{"id", "name", "category", "image", "price_range", "rating"}).
		AddRow("tsukiji", "Tsukiji Sushi", "restaurant", "/legacy.jpg", "$$", 4.5)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "spots" WHERE id = $1`)).
		WillReturnRows(rows)

	spot, err := NewSpotRepository(db).FindByID(context.Background(), "tsukiji")

	require.NoError(t, err)
	assert.Equal(t, "Tsukiji Sushi", spot.Name)
	assert.Equal(t, "/legacy.jpg", spot.Image)
	assert.Equal(t, "$$", spot.PriceRange)
	assert.InDelta(t, 4.5, spot.Rating, 0.001)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateRole(t *testing.T) {
	updateSQL := regexp.QuoteMeta(`UPDATE "users" SET "role"=$1,"updated_at"=$2 WHERE id = $3`)

	t.Run("promotes existing user", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(updateSQL).
			WithArgs("admin", sqlmock.AnyArg(), "user-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewUserRepository(db).UpdateRole(context.Background(), "user-1", entity.RoleAdmin)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(updateSQL).
			WithArgs("admin", sqlmock.AnyArg(), "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewUserRepository(db).UpdateRole(context.Background(), "ghost", entity.RoleAdmin)

		assert.ErrorIs(t, err, repository.ErrUserNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUserRepository_CountByRole(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "users" WHERE role = $1`)).
		WithArgs("admin").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := NewUserRepository(db).CountByRole(context.Background(), entity.RoleAdmin)

	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConstraintHelpers(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isForeignKeyConstraintViolation(assert.AnError))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isNotNullConstraintViolation(nil))
}

func TestTransactionManager_CommitFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("connection lost"))

	err := NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		return nil
	})

	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionManager_BeginFailure(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	called := false
	err := NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.False(t, called)
}

func TestTransactionManager_RollsBackCallbackError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()
	errSeed := errors.New("failed to seed spots")

	err := NewTransactionManager(db).Execute(context.Background(), func(repository.RepositoryFactory) error {
		return errSeed
	})

	assert.ErrorIs(t, err, errSeed)
	assert.NotErrorIs(t, err, domainerrors.ErrTransactionFailed)
	require.NoError(t, mock.ExpectationsWereMet())
}
