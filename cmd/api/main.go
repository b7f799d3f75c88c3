package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"microblogLite/cmd/app"
	"microblogLite/internal/config"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Неверная конфигурация: %v", err)
	}

	db, handler := app.App(context.Background(), cfg)
	defer db.CloseDB()

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	shutdownSignal := make(chan os.Signal, 1)
	signal.Notify(shutdownSignal, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Сервер запущен на %s, база данных: %s, время жизни токена: %s", addr, cfg.DB.DbNAME, cfg.SessionTTL())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	<-shutdownSignal
	log.Println("Получен сигнал остановки, завершаем работу...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Ошибка при остановке сервера: %v", err)
	}

	log.Println("Сервер остановлен")
}
