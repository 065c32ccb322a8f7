// Package main is the entry point for the staffdesk API server. It loads
// configuration, sets up logging, and hands control to internal/server.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/staffdesk/internal/config"
	"github.com/sakif/staffdesk/internal/server"
)

const (
	envLocal = "local"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad(os.Getenv("CONFIG_PATH"))

	logger := setupLogger(cfg.Env)

	// The SQLite file lives under a data directory that may not exist yet.
	if dir := filepath.Dir(cfg.DB.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// setupLogger picks the handler for the environment: readable text with
// debug detail locally, JSON at info level in production.
func setupLogger(env string) *slog.Logger {
	if env == envProd {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
	// envLocal and anything unrecognised get the verbose text handler.
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}
