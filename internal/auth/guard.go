package auth

import (
	"context"
	"errors"
	"strings"

	"microblogLite/internal/models"
)

const bearerPrefix = "Bearer "

type Verifier interface {
	Verify(ctx context.Context, tokenString string) (*models.User, error)
}

// Guard resolves the Authorization header of a request to a user.
type Guard struct {
	tokens Verifier
}

func NewGuard(tokens Verifier) *Guard {
	return &Guard{tokens: tokens}
}

// Authenticate expects rawHeader to be exactly "Bearer <token>".
// On failure it returns a *RejectedError wrapping the reason.
func (g *Guard) Authenticate(ctx context.Context, rawHeader string) (*models.User, error) {
	tokenString, ok := strings.CutPrefix(rawHeader, bearerPrefix)
	if !ok {
		return nil, &RejectedError{Stage: StageReceived, Reason: ErrMalformedHeader}
	}

	user, err := g.tokens.Verify(ctx, tokenString)
	if err != nil {
		stage := StageTokenVerified
		if errors.Is(err, ErrInvalidSignature) || errors.Is(err, ErrExpired) {
			stage = StageHeaderChecked
		}
		return nil, &RejectedError{Stage: stage, Reason: err}
	}

	return user, nil
}
