package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi"
	"go.uber.org/zap"

	"github.com/bekzat/shortly/config"
	"github.com/bekzat/shortly/internal/app/handlers"
	"github.com/bekzat/shortly/internal/app/storage"
	"github.com/bekzat/shortly/internal/logger"
	"github.com/bekzat/shortly/pkg/base62"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.NewConfig()

	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}

	codec, err := base62.New(cfg.Alphabet)
	if err != nil {
		return fmt.Errorf("short code alphabet: %w", err)
	}

	var (
		store     storage.URLStorage
		fileStore *handlers.Producer
	)
	if cfg.DSN != "" {
		if err := storage.Migrate(cfg.DSN, "migrations"); err != nil {
			return err
		}
		pg, err := storage.NewPostgresStorage(context.Background(), cfg.DSN)
		if err != nil {
			return err
		}
		store = pg
	} else {
		mem := storage.NewMemoryStorage()
		if cfg.FileStoragePath != "" {
			records, err := handlers.LoadRecords(cfg.FileStoragePath)
			if err != nil {
				return err
			}
			for _, rec := range records {
				mem.Restore(rec.ID, rec.OriginalURL)
			}
			logger.Log.Info("restored links from file",
				zap.Int("count", len(records)),
				zap.String("path", cfg.FileStoragePath))

			fileStore, err = handlers.NewProducer(cfg.FileStoragePath)
			if err != nil {
				return err
			}
			defer fileStore.Close()
		}
		store = mem
	}
	defer store.Close()

	shortener := handlers.NewURLShortener(cfg, codec, store, fileStore)

	r := chi.NewRouter()
	r.Use(logger.LoggerMiddleware)
	r.Use(logger.RecoveryMiddleware)
	r.Use(handlers.GzipMiddleware)
	r.Use(handlers.AuthMiddleware([]byte(cfg.AuthSecret)))
	r.Mount("/", shortener.Router())

	logger.Log.Info("server is starting", zap.String("address", cfg.ServerAddress))
	return http.ListenAndServe(cfg.ServerAddress, r)
}
