package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"weather-agent/config"
	"weather-agent/pkg/ollama"
)

const (
	maxAttempts = 3
	retryDelay  = 2 * time.Second
)

var errModelMissing = errors.New("model not pulled")

// main checks that Ollama answers and the configured model is pulled. Exit 0 on success.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	client, err := ollama.New(ollama.Config{
		BaseURL:    cfg.Ollama.BaseURL,
		Model:      cfg.Ollama.DefaultModel,
		HTTPClient: &http.Client{Timeout: cfg.Ollama.Timeout},
	})
	if err != nil {
		fmt.Println("Invalid Ollama config: ", err)
		os.Exit(1)
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if check(context.Background(), client) == nil {
			os.Exit(0)
		}
		if attempt < maxAttempts {
			fmt.Printf("Retrying in %s... (Attempt %d/%d)\n", retryDelay, attempt, maxAttempts)
			time.Sleep(retryDelay)
		}
	}

	fmt.Println("Failed to connect to Ollama after multiple attempts.")
	os.Exit(1)
}

func check(ctx context.Context, client ollama.IOllama) error {
	fmt.Printf("Checking Ollama at %s...\n", client.BaseURL())

	models, err := client.ListModels(ctx)
	if err != nil {
		fmt.Printf("Error: could not reach Ollama: %v\n", err)
		fmt.Println("Make sure Ollama is running. You can start it with:")
		fmt.Println("  ollama serve")
		return err
	}

	if !ollama.HasModel(models, client.Model()) {
		fmt.Printf("Warning: Model '%s' not found in available models.\n", client.Model())
		fmt.Printf("Available models: %s\n", strings.Join(models, ", "))
		fmt.Printf("You may need to run: ollama pull %s\n", client.Model())
		return errModelMissing
	}

	fmt.Printf("Ollama is running and model '%s' is available.\n", client.Model())
	return nil
}
