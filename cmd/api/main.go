package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"weather-agent/config"
	_ "weather-agent/docs" // Swagger docs
	"weather-agent/internal/app"
	"weather-agent/internal/httpserver"
	"weather-agent/internal/middleware"
	"weather-agent/pkg/log"
)

// @title       Ollama Weather Agent API
// @description Conversational assistant answering weather questions with OpenWeatherMap and everything else with a local Ollama model.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Ollama Weather Agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Ollama: %s (model %s)", cfg.Ollama.BaseURL, cfg.Ollama.DefaultModel)

	// 3. Pipeline
	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Host:         cfg.API.Host,
		Port:         cfg.API.Port,
		Mode:         cfg.API.Mode,
		Environment:  cfg.Environment.Name,
		Middleware:   middleware.New(logger, cfg.RateLimit),
		Orchestrator: a.Orchestrator,
		Models:       a.Ollama,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
