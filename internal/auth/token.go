package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"microblogLite/internal/models"
	"microblogLite/internal/repository"
)

// UserFinder resolves the user a token was issued for.
type UserFinder interface {
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
}

// TokenConfig is the signing configuration, loaded once at startup.
type TokenConfig struct {
	Secret string
	TTL    time.Duration
}

// Claims is the token payload: user_id plus the registered exp/iat claims.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type Option func(*TokenService)

// WithClock replaces time.Now for issuance and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

// TokenService issues and verifies stateless HS256 session tokens.
// It is immutable after construction and safe for concurrent use.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	users  UserFinder
	now    func() time.Time
}

func NewTokenService(cfg TokenConfig, users UserFinder, opts ...Option) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, errors.New("секрет подписи токена не задан")
	}
	if cfg.TTL < 0 {
		return nil, fmt.Errorf("время жизни токена не может быть отрицательным: %s", cfg.TTL)
	}
	if users == nil {
		return nil, errors.New("хранилище пользователей не задано")
	}

	s := &TokenService{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
		users:  users,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Issue signs a token for userID that expires after the configured TTL.
func (s *TokenService) Issue(userID int64) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}

	return tokenString, nil
}

// Verify checks the signature and expiry of tokenString and resolves its user.
// Failures are ErrInvalidSignature, ErrExpired or ErrUserNotFound; store errors are wrapped.
func (s *TokenService) Verify(ctx context.Context, tokenString string) (*models.User, error) {
	userID, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка при получении пользователя токена: %w", err)
	}

	return user, nil
}

func (s *TokenService) parse(tokenString string) (int64, error) {
	claims := &Claims{}

	// the signature is checked before exp, so a forged expired token is reported as invalid
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrInvalidSignature
	}

	if claims.UserID <= 0 {
		return 0, ErrInvalidSignature
	}

	return claims.UserID, nil
}
