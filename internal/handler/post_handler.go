package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"microblogLite/internal/auth"
	"microblogLite/internal/repository"
	"microblogLite/internal/service"
)

type AddPostRequest struct {
	Text string `json:"text" validate:"required,min=1,max=1000000"`
}

type AddPostResponse struct {
	PostID int64 `json:"postID"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (h *Handlers) AddPost(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	var req AddPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Текст поста должен содержать от 1 до 1000000 символов", http.StatusBadRequest)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), repository.CreatePostRequest{
		OwnerID: user.ID,
		Text:    req.Text,
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			WriteError(w, "Пользователь не найден", http.StatusUnauthorized)
			return
		}
		log.Printf("Ошибка создания поста: %v", err)
		WriteError(w, "Ошибка при создании поста", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, AddPostResponse{PostID: post.ID}, http.StatusOK)
}

func (h *Handlers) GetPosts(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	posts, err := h.PostService.ListPosts(r.Context(), user.ID)
	if err != nil {
		log.Printf("Ошибка получения постов: %v", err)
		WriteError(w, "Ошибка при получении постов", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	postID, err := strconv.ParseInt(r.URL.Query().Get("postID"), 10, 64)
	if err != nil || postID <= 0 {
		WriteError(w, "Неверный postID", http.StatusBadRequest)
		return
	}

	err = h.PostService.DeletePost(r.Context(), postID, user.ID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			WriteError(w, "Post not found", http.StatusNotFound)
			return
		}
		log.Printf("Ошибка удаления поста: %v", err)
		WriteError(w, "Ошибка при удалении поста", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, MessageResponse{Message: "Post deleted"}, http.StatusOK)
}

// ExportPosts stores a snapshot of the caller's posts in object storage.
func (h *Handlers) ExportPosts(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		WriteError(w, "Требуется авторизация", http.StatusUnauthorized)
		return
	}

	result, err := h.PostService.ExportPosts(r.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrStorageDisabled) {
			WriteError(w, "Экспорт недоступен", http.StatusServiceUnavailable)
			return
		}
		log.Printf("Ошибка экспорта постов: %v", err)
		WriteError(w, "Ошибка при экспорте постов", http.StatusInternalServerError)
		return
	}

	writeSuccess(w, result, http.StatusCreated)
}
