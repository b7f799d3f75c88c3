package storage

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"microblogLite/internal/config"
)

const exportContentType = "application/json"

// Storage keeps JSON snapshots of a user's posts.
type Storage interface {
	UploadExport(ctx context.Context, userID int64, data []byte) (string, error)
	GetExportURL(ctx context.Context, objectName string) (string, error)
	DeleteExport(ctx context.Context, objectName string) error
}

type MinIOClient struct {
	client *minio.Client
	config config.MinIO
}

// NewMinIOClient connects to MinIO and creates the export bucket if it is missing.
func NewMinIOClient(ctx context.Context, cfg config.MinIO) (*MinIOClient, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания клиента MinIO: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.BucketName)
	if err != nil {
		return nil, fmt.Errorf("ошибка проверки бакета %s: %w", cfg.BucketName, err)
	}

	if !exists {
		err = client.MakeBucket(ctx, cfg.BucketName, minio.MakeBucketOptions{Region: cfg.Region})
		if err != nil {
			return nil, fmt.Errorf("ошибка создания бакета %s: %w", cfg.BucketName, err)
		}
	}

	return &MinIOClient{client: client, config: cfg}, nil
}

// ObjectName builds the key of an export: exports/<userID>/<uuid>.json.
func ObjectName(userID int64) string {
	return fmt.Sprintf("exports/%d/%s.json", userID, uuid.New().String())
}

func (m *MinIOClient) UploadExport(ctx context.Context, userID int64, data []byte) (string, error) {
	objectName := ObjectName(userID)

	_, err := m.client.PutObject(ctx, m.config.BucketName, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{
			ContentType: exportContentType,
			UserMetadata: map[string]string{
				"user-id":     strconv.FormatInt(userID, 10),
				"exported-at": time.Now().UTC().Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки в MinIO: %w", err)
	}

	return objectName, nil
}

// GetExportURL returns a presigned download link valid for the configured expiry.
func (m *MinIOClient) GetExportURL(ctx context.Context, objectName string) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.config.BucketName, objectName, m.config.URLExpiry, nil)
	if err != nil {
		return "", fmt.Errorf("ошибка получения ссылки MinIO: %w", err)
	}

	return u.String(), nil
}

func (m *MinIOClient) DeleteExport(ctx context.Context, objectName string) error {
	err := m.client.RemoveObject(ctx, m.config.BucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("ошибка удаления из MinIO: %w", err)
	}
	return nil
}
