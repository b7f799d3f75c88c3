package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"microblogLite/internal/auth"
	"microblogLite/internal/repository"
	"microblogLite/internal/service"
)

type SignupRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

func (h *Handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверный email или длина пароля не от 8 до 72 символов", http.StatusBadRequest)
		return
	}

	// max=72 counts runes, bcrypt limits bytes
	if len(req.Password) > repository.MaxPasswordBytes {
		WriteError(w, repository.ErrPasswordTooLong.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Signup(r.Context(), repository.CreateUserRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			WriteError(w, "Email already registered", http.StatusBadRequest)
			return
		}
		if errors.Is(err, repository.ErrPasswordTooLong) {
			WriteError(w, err.Error(), http.StatusBadRequest)
			return
		}
		log.Printf("Ошибка регистрации: %v", err)
		WriteError(w, "Ошибка при регистрации", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверный email или пустой пароль", http.StatusBadRequest)
		return
	}

	token, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			WriteError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Printf("Ошибка входа: %v", err)
		WriteError(w, "Ошибка при входе", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, TokenResponse{Token: token}, http.StatusOK)
}

// Me returns the identity resolved by the auth middleware.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	writeSuccess(w, UserResponse{ID: user.ID, Email: user.Email}, http.StatusOK)
}
