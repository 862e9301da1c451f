package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"weather-agent/config"
	"weather-agent/internal/app"
	"weather-agent/pkg/log"
)

const (
	banner = "Ollama Weather Agent Example\nType 'exit' to quit\n" +
		"--------------------------------------------------"
	promptLine = "\nYour query: "
)

var exitWords = map[string]bool{"exit": true, "quit": true, "q": true}

// main runs the same pipeline as the API in an interactive loop.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to build pipeline: %v", err)
		os.Exit(1)
	}

	fmt.Printf("Initializing Ollama with model: %s\n", cfg.Ollama.DefaultModel)
	fmt.Println(banner)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(promptLine)
		if !scanner.Scan() {
			fmt.Println()
			return
		}

		query := strings.TrimSpace(scanner.Text())
		if exitWords[strings.ToLower(query)] {
			fmt.Println("Goodbye!")
			return
		}
		if query == "" {
			continue
		}

		reply, err := a.Orchestrator.ProcessQuery(ctx, query)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}
		fmt.Println("\nResponse:", reply)

		if ctx.Err() != nil {
			return
		}
	}
}
