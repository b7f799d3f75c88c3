package app

import (
	"context"
	"log"
	"net/http"

	"microblogLite/internal/auth"
	"microblogLite/internal/config"
	"microblogLite/internal/database"
	handlers "microblogLite/internal/handler"
	"microblogLite/internal/repository"
	"microblogLite/internal/service"
	"microblogLite/internal/storage"
)

// App connects the dependencies and returns the database and the root HTTP handler.
func App(ctx context.Context, cfg *config.Config) (*database.DB, http.Handler) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	repo := repository.NewRepository(db.DB)

	tokens, err := auth.NewTokenService(auth.TokenConfig{
		Secret: cfg.JWTSecretKey,
		TTL:    cfg.SessionTTL(),
	}, repo.User)
	if err != nil {
		log.Fatalf("Не удалось создать сервис токенов: %v", err)
	}

	// connection MinIO, only when export is configured
	var exportStorage storage.Storage
	if cfg.MinIO.ExportEnabled() {
		minioClient, err := storage.NewMinIOClient(ctx, cfg.MinIO)
		if err != nil {
			log.Fatalf("Не удалось инициализировать MinIO: %v", err)
		}
		exportStorage = minioClient
	} else {
		log.Println("MINIO_ENDPOINT не задан, экспорт постов отключен")
	}

	services := service.NewService(repo, tokens, exportStorage)
	h := handlers.NewHandlers(services)

	return db, NewRouter(h, auth.NewGuard(tokens))
}
