package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"microblogLite/internal/models"
	"microblogLite/internal/repository"
	"microblogLite/internal/storage"
)

var ErrStorageDisabled = errors.New("хранилище экспорта не настроено")

type ExportResult struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
	Count      int    `json:"count"`
}

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	ListPosts(ctx context.Context, ownerID int64) ([]models.Post, error)
	DeletePost(ctx context.Context, postID, ownerID int64) error
	ExportPosts(ctx context.Context, ownerID int64) (*ExportResult, error)
}

type postService struct {
	postRepo repository.PostRepository
	storage  storage.Storage
}

func NewPostService(postRepo repository.PostRepository, exportStorage storage.Storage) PostService {
	return &postService{
		postRepo: postRepo,
		storage:  exportStorage,
	}
}

func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	post := &models.Post{
		Text:    req.Text,
		OwnerID: req.OwnerID,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) ListPosts(ctx context.Context, ownerID int64) ([]models.Post, error) {
	return p.postRepo.GetByOwnerID(ctx, ownerID)
}

func (p *postService) DeletePost(ctx context.Context, postID, ownerID int64) error {
	return p.postRepo.Delete(ctx, postID, ownerID)
}

// ExportPosts uploads a JSON snapshot of the owner's posts and returns a download link.
func (p *postService) ExportPosts(ctx context.Context, ownerID int64) (*ExportResult, error) {
	if p.storage == nil {
		return nil, ErrStorageDisabled
	}

	posts, err := p.postRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(posts)
	if err != nil {
		return nil, fmt.Errorf("ошибка сериализации постов: %w", err)
	}

	objectName, err := p.storage.UploadExport(ctx, ownerID, data)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки экспорта: %w", err)
	}

	url, err := p.storage.GetExportURL(ctx, objectName)
	if err != nil {
		if delErr := p.storage.DeleteExport(ctx, objectName); delErr != nil {
			log.Printf("Предупреждение: не удалось удалить экспорт %s: %v", objectName, delErr)
		}
		return nil, fmt.Errorf("ошибка получения ссылки на экспорт: %w", err)
	}

	return &ExportResult{
		ObjectName: objectName,
		URL:        url,
		Count:      len(posts),
	}, nil
}
