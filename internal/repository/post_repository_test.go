package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"microblogLite/internal/models"
	"microblogLite/internal/repository"
)

const (
	insertPostQuery = `INSERT INTO posts (text, owner_id) VALUES ($1, $2) RETURNING id`
	selectPosts     = `SELECT id, text, owner_id FROM posts WHERE owner_id = $1 ORDER BY id`
	deletePostQuery = `DELETE FROM posts WHERE id = $1 AND owner_id = $2`
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	t.Cleanup(func() { sqlxDB.Close() })

	return sqlxDB, mock
}

func TestNewPostRepository(t *testing.T) {
	db, _ := setupMockDB(t)

	repo := repository.NewPostRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.DB)
}

func TestPostRepositoryImpl_Create(t *testing.T) {
	tests := []struct {
		name        string
		post        *models.Post
		setupMock   func(mock sqlmock.Sqlmock)
		expectedID  int64
		expectedErr error
		errorMsg    string
	}{
		{
			name: "Успешное создание поста",
			post: &models.Post{Text: "Hello", OwnerID: 42},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertPostQuery).
					WithArgs("Hello", int64(42)).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
			},
			expectedID: 10,
		},
		{
			name: "Владелец удален",
			post: &models.Post{Text: "Hello", OwnerID: 42},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertPostQuery).
					WithArgs("Hello", int64(42)).
					WillReturnError(errors.New(`pq: insert or update on table "posts" violates foreign key constraint "posts_owner_id_fkey"`))
			},
			expectedErr: repository.ErrUserNotFound,
		},
		{
			name: "Ошибка базы данных",
			post: &models.Post{Text: "Hello", OwnerID: 42},
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(insertPostQuery).
					WithArgs("Hello", int64(42)).
					WillReturnError(errors.New("connection failed"))
			},
			errorMsg: "ошибка при создании поста",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := setupMockDB(t)
			repo := repository.NewPostRepository(db)
			tt.setupMock(mock)

			err := repo.Create(context.Background(), tt.post)

			switch {
			case tt.expectedErr != nil:
				assert.ErrorIs(t, err, tt.expectedErr)
			case tt.errorMsg != "":
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.expectedID, tt.post.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostRepositoryImpl_GetByOwnerID(t *testing.T) {
	t.Run("Посты владельца", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewPostRepository(db)

		mock.ExpectQuery(selectPosts).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "owner_id"}).
				AddRow(1, "first", 42).
				AddRow(2, "second", 42))

		posts, err := repo.GetByOwnerID(context.Background(), 42)

		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, models.Post{ID: 1, Text: "first", OwnerID: 42}, posts[0])
		assert.Equal(t, "second", posts[1].Text)
	})

	t.Run("Нет постов", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewPostRepository(db)

		mock.ExpectQuery(selectPosts).
			WithArgs(int64(42)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "text", "owner_id"}))

		posts, err := repo.GetByOwnerID(context.Background(), 42)

		require.NoError(t, err)
		assert.NotNil(t, posts)
		assert.Empty(t, posts)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewPostRepository(db)

		mock.ExpectQuery(selectPosts).
			WithArgs(int64(42)).
			WillReturnError(errors.New("connection failed"))

		posts, err := repo.GetByOwnerID(context.Background(), 42)

		assert.Nil(t, posts)
		assert.Error(t, err)
	})
}

func TestPostRepositoryImpl_Delete(t *testing.T) {
	t.Run("Успешное удаление", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewPostRepository(db)

		mock.ExpectExec(deletePostQuery).
			WithArgs(int64(5), int64(42)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 5, 42)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Чужой или отсутствующий пост", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewPostRepository(db)

		mock.ExpectExec(deletePostQuery).
			WithArgs(int64(5), int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 5, 99)

		assert.ErrorIs(t, err, repository.ErrPostNotFound)
	})

	t.Run("Ошибка базы данных", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := repository.NewPostRepository(db)

		mock.ExpectExec(deletePostQuery).
			WithArgs(int64(5), int64(42)).
			WillReturnError(errors.New("connection failed"))

		err := repo.Delete(context.Background(), 5, 42)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ошибка при удалении поста")
	})
}
