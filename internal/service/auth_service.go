package service

import (
	"context"
	"errors"
	"fmt"

	"microblogLite/internal/models"
	"microblogLite/internal/repository"
)

var ErrInvalidCredentials = errors.New("неверный email или пароль")

type TokenIssuer interface {
	Issue(userID int64) (string, error)
}

type AuthService interface {
	Signup(ctx context.Context, req repository.CreateUserRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenIssuer) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Signup creates the user and returns a session token for it.
func (s *authService) Signup(ctx context.Context, req repository.CreateUserRequest) (string, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return "", fmt.Errorf("пользователь с email %s: %w", req.Email, repository.ErrEmailTaken)
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return "", fmt.Errorf("ошибка проверки email: %w", err)
	}

	user := &models.User{Email: req.Email}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return "", fmt.Errorf("ошибка при регистрации: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return token, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		// unknown email and wrong password look the same to the client
		if errors.Is(err, repository.ErrUserNotFound) || errors.Is(err, repository.ErrWrongPassword) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("ошибка аутентификации: %w", err)
	}

	token, err := s.tokens.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации токена: %w", err)
	}

	return token, nil
}
