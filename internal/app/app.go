// Package app wires the query pipeline from configuration. cmd/api and
// cmd/cli both start from Build.
package app

import (
	"context"
	"fmt"
	"net/http"

	"weather-agent/config"
	"weather-agent/internal/agent/orchestrator"
	locationUC "weather-agent/internal/location/usecase"
	"weather-agent/internal/router"
	weatherUC "weather-agent/internal/weather/usecase"
	"weather-agent/pkg/llmprovider"
	"weather-agent/pkg/log"
	"weather-agent/pkg/ollama"
	"weather-agent/pkg/openweather"
)

// App is the wired pipeline plus the clients entry points may probe.
type App struct {
	Orchestrator *orchestrator.Orchestrator
	LLM          *llmprovider.Manager
	Ollama       ollama.IOllama
	Weather      openweather.IClient
}

// Build constructs every client and use case. It never contacts upstreams.
func Build(ctx context.Context, cfg *config.Config, l log.Logger) (*App, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	managerCfg, err := llmprovider.ConfigFromLLM(cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}
	manager := llmprovider.NewManager(providers, managerCfg, l)
	l.Infof(ctx, "LLM providers: %v", manager.Providers())

	ollamaClient, err := ollama.New(ollama.Config{
		BaseURL:    cfg.Ollama.BaseURL,
		Model:      cfg.Ollama.DefaultModel,
		HTTPClient: &http.Client{Timeout: cfg.Ollama.Timeout},
	})
	if err != nil {
		return nil, fmt.Errorf("ollama client: %w", err)
	}

	weatherClient, err := openweather.New(openweather.Config{
		APIKey:       cfg.Weather.APIKey,
		APIURL:       cfg.Weather.APIURL,
		GeoURL:       cfg.Weather.GeoURL,
		HTTPClient:   &http.Client{Timeout: cfg.Weather.Timeout},
		RateLimitRPS: cfg.Weather.RateLimitRPS,
	})
	if err != nil {
		return nil, fmt.Errorf("openweather client: %w", err)
	}
	if !weatherClient.Configured() {
		l.Warn(ctx, "weather.api_key is empty, weather queries will report a configuration error")
	}

	tz, err := cfg.Weather.Location()
	if err != nil {
		return nil, fmt.Errorf("weather.timezone: %w", err)
	}

	orch := orchestrator.New(
		l,
		manager,
		router.New(l),
		locationUC.New(l, manager, weatherClient),
		weatherUC.New(l, weatherClient, tz),
		cfg.Weather.Units,
	)

	return &App{
		Orchestrator: orch,
		LLM:          manager,
		Ollama:       ollamaClient,
		Weather:      weatherClient,
	}, nil
}
