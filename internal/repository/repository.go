package repository

import (
	"context"
	"errors"
	"github.com/jmoiron/sqlx"
	"microblogLite/internal/models"
)

var (
	ErrUserNotFound  = errors.New("пользователь не найден")
	ErrPostNotFound  = errors.New("пост не найден")
	ErrEmailTaken    = errors.New("email уже зарегистрирован")
	ErrWrongPassword = errors.New("неверный пароль")

	ErrPasswordTooLong = errors.New("пароль длиннее 72 байт")
)

// MaxPasswordBytes is the bcrypt input limit.
const MaxPasswordBytes = 72

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByOwnerID(ctx context.Context, ownerID int64) ([]models.Post, error)
	Delete(ctx context.Context, postID, ownerID int64) error
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User   UserRepository
	Post   PostRepository
	Tables TablesRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:   NewUserRepository(db),
		Post:   NewPostRepository(db),
		Tables: NewTablesRepository(db),
	}
}
