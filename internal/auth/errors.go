package auth

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHeader  = errors.New("неверный формат заголовка Authorization")
	ErrInvalidSignature = errors.New("недействительный токен")
	ErrExpired          = errors.New("токен истек")
	ErrUserNotFound     = errors.New("пользователь токена не найден")
)

// Stage is the last step a request reached in the guard.
// Verify resolves the user together with the token, so a resolved user is Authorized.
type Stage int

const (
	StageReceived Stage = iota
	StageHeaderChecked
	StageTokenVerified
	StageAuthorized
)

func (s Stage) String() string {
	switch s {
	case StageReceived:
		return "Received"
	case StageHeaderChecked:
		return "HeaderChecked"
	case StageTokenVerified:
		return "TokenVerified"
	case StageAuthorized:
		return "Authorized"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// RejectedError is the terminal Rejected state. Reason is one of the sentinels above
// or a store error.
type RejectedError struct {
	Stage  Stage
	Reason error
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("запрос отклонен на этапе %s: %v", e.Stage, e.Reason)
}

func (e *RejectedError) Unwrap() error {
	return e.Reason
}
