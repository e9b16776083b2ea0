// Package main is the entry point for the copyforge API server.
// It initializes configuration, sets up logging, wires the generation
// pipeline together, and runs the HTTP server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/phrazzld/copyforge-api/internal/config"
	"github.com/phrazzld/copyforge-api/internal/platform/gemini"
	"github.com/phrazzld/copyforge-api/internal/platform/logger"
	"github.com/phrazzld/copyforge-api/internal/prompt"
	"github.com/phrazzld/copyforge-api/internal/service"
	"github.com/phrazzld/copyforge-api/internal/task"
)

// application holds the wired dependencies of the running server.
type application struct {
	config       *config.Config
	logger       *slog.Logger
	batchService *service.BatchService
}

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

// run loads configuration, wires the application, and serves until a
// shutdown signal arrives.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"batch_concurrency", cfg.Batch.Concurrency,
		"max_batch_size", cfg.Batch.MaxSize)

	app, err := wireApplication(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(context.Background(), app.setupRouter())
}

// wireApplication builds the generation pipeline bottom-up:
// generator → prompt builder → executor → batch service.
func wireApplication(cfg *config.Config, log *slog.Logger) (*application, error) {
	generator, err := gemini.NewGeminiGenerator(context.Background(), log, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini generator: %w", err)
	}

	prompts, err := prompt.NewBuilder()
	if err != nil {
		return nil, fmt.Errorf("failed to create prompt builder: %w", err)
	}

	executor, err := task.NewExecutor(
		generator,
		prompts,
		time.Duration(cfg.LLM.RequestTimeoutMs)*time.Millisecond,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create executor: %w", err)
	}

	batchService, err := service.NewBatchService(
		executor,
		cfg.Batch.Concurrency,
		cfg.Batch.MaxSize,
		log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create batch service: %w", err)
	}

	return &application{
		config:       cfg,
		logger:       log,
		batchService: batchService,
	}, nil
}
