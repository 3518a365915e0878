// Command api is the Scoracle chat server.
//
// Usage:
//
//	scoracle-chat
//	DATASET_PATH=data/player_stats.json API_PORT=8080 scoracle-chat

// @title Scoracle Chat API
// @version 1.0.0
// @description Conversational Premier League player stats: ask about a player's numbers, compare players, or find stat leaders.
// @host localhost:5000
// @BasePath /api/v1
// @schemes http https
// @contact.name Scoracle
// @license.name MIT
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/albapepper/scoracle-chat/internal/api"
	"github.com/albapepper/scoracle-chat/internal/cache"
	"github.com/albapepper/scoracle-chat/internal/chat"
	"github.com/albapepper/scoracle-chat/internal/config"
	"github.com/albapepper/scoracle-chat/internal/dataset"
	"github.com/albapepper/scoracle-chat/internal/db"
	"github.com/albapepper/scoracle-chat/internal/render"
	"github.com/albapepper/scoracle-chat/internal/vocab"

	_ "github.com/albapepper/scoracle-chat/docs" // swagger docs
)

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	store, err := loadDataset(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to load dataset", "source", cfg.DatasetSource, "error", err)
		os.Exit(1)
	}
	logger.Info("Dataset loaded",
		"source", cfg.DatasetSource,
		"players", store.Len(),
		"teams", len(store.Teams()))

	v := vocab.Default()
	engine := chat.New(store, v, chat.Options{
		Picker:               render.Random{},
		PlayerMatchLimit:     cfg.PlayerMatchLimit,
		PlayerMatchThreshold: cfg.PlayerMatchThreshold,
		StatMatchThreshold:   cfg.StatMatchThreshold,
		TeamMatchThreshold:   cfg.TeamMatchThreshold,
	}, logger)

	appCache := cache.New(cfg.CacheEnabled)
	logger.Info("Cache initialized", "enabled", cfg.CacheEnabled)

	router := api.NewRouter(engine, v, appCache, cfg, logger)

	addr := fmt.Sprintf("%s:%d", cfg.APIHost, cfg.APIPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Starting Scoracle Chat API",
			"addr", addr,
			"environment", cfg.Environment,
			"docs", fmt.Sprintf("http://localhost:%d/docs/", cfg.APIPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("Server stopped")
}

// loadDataset reads the player records from the configured source. The
// Postgres pool is only needed for the initial read and is closed after.
func loadDataset(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*dataset.Store, error) {
	if cfg.DatasetSource != config.SourcePostgres {
		return dataset.LoadFile(cfg.DatasetPath)
	}

	logger.Info("Connecting to database...")
	pool, err := db.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	defer pool.Close()
	logger.Info("Database connected",
		"min_conns", cfg.DBPoolMinConns,
		"max_conns", cfg.DBPoolMaxConns)

	return dataset.LoadPostgres(ctx, pool)
}
