package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/leondli/diary/internal/adapter/handler"
	"github.com/leondli/diary/internal/adapter/repository"
	"github.com/leondli/diary/internal/infrastructure/config"
	"github.com/leondli/diary/internal/infrastructure/database"
	"github.com/leondli/diary/internal/infrastructure/logger"
	"github.com/leondli/diary/internal/infrastructure/server"
	"github.com/leondli/diary/internal/usecase/entry"
	"github.com/leondli/diary/internal/usecase/tag"
)

func main() {
	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize logger
	logger.Init(&cfg.Log)
	log.Info().Msg("Starting diary server...")

	// Initialize database
	db, err := database.Init(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer database.Close()

	// Sync schema and seed the tag vocabulary
	if err := repository.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	// Initialize repositories
	entryRepo := repository.NewEntryRepository(db)
	tagRepo := repository.NewTagRepository(db)

	// Initialize use cases
	entryUseCase := entry.NewUseCase(entryRepo)
	tagUseCase := tag.NewUseCase(tagRepo)

	// Initialize handlers
	handlers := &handler.Handlers{
		Entry: handler.NewEntryHandler(entryUseCase),
		Tag:   handler.NewTagHandler(tagUseCase),
	}

	// Initialize HTTP server
	srv := server.New(&cfg.Server)
	handler.RegisterRoutes(srv.Router(), handlers)

	// Start server in goroutine
	go func() {
		if err := srv.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
