package repository

import (
	"context"
	"fmt"
	"microblogLite/internal/models"
	"strings"

	"github.com/jmoiron/sqlx"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

type CreatePostRequest struct {
	OwnerID int64  `json:"owner_id"`
	Text    string `json:"text"`
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts (text, owner_id)
        VALUES ($1, $2)
        RETURNING id
    `

	err := r.DB.QueryRowxContext(ctx, query, post.Text, post.OwnerID).Scan(&post.ID)
	if err != nil {
		// the owner was removed after the request was authorized
		if strings.Contains(err.Error(), "foreign key") {
			return fmt.Errorf("владелец поста %d: %w", post.OwnerID, ErrUserNotFound)
		}
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByOwnerID(ctx context.Context, ownerID int64) ([]models.Post, error) {
	query := `
        SELECT id, text, owner_id FROM posts
        WHERE owner_id = $1
        ORDER BY id
    `

	posts := []models.Post{}
	err := r.DB.SelectContext(ctx, &posts, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов: %w", err)
	}

	return posts, nil
}

// Delete removes a post only when it belongs to ownerID.
func (r *PostRepositoryImpl) Delete(ctx context.Context, postID, ownerID int64) error {
	query := `DELETE FROM posts WHERE id = $1 AND owner_id = $2`

	result, err := r.DB.ExecContext(ctx, query, postID, ownerID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %d: %w", postID, ErrPostNotFound)
	}

	return nil
}
