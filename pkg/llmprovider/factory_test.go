package llmprovider

import (
	"context"
	"testing"

	"weather-agent/config"
)

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.LLMConfig
		wantErr   bool
		wantNames []string
	}{
		{
			name: "sorted by priority",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "gemini", Enabled: true, Priority: 2, APIKey: "k", Model: "gemini-2.5-flash", Timeout: "30s"},
					{Name: "ollama", Enabled: true, Priority: 1, Model: "llama3"},
					{Name: "qwen", Enabled: true, Priority: 3, APIKey: "k"},
				},
			},
			wantNames: []string{"ollama", "gemini", "qwen"},
		},
		{
			name:    "nil config",
			cfg:     nil,
			wantErr: true,
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: true,
		},
		{
			name: "all providers disabled",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{{Name: "ollama", Enabled: false, Priority: 1}},
			},
			wantErr: true,
		},
		{
			name: "missing API key is skipped",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "deepseek", Enabled: true, Priority: 1},
					{Name: "ollama", Enabled: true, Priority: 2},
				},
			},
			wantNames: []string{"ollama"},
		},
		{
			name: "only broken providers",
			cfg: &config.LLMConfig{
				Providers: []config.ProviderConfig{
					{Name: "unknown", Enabled: true, Priority: 1, APIKey: "k"},
					{Name: "ollama", Enabled: true, Priority: 2, Timeout: "soon"},
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := InitializeProviders(context.Background(), tt.cfg, &mockLogger{})
			if tt.wantErr {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if len(providers) != len(tt.wantNames) {
				t.Fatalf("Expected %d providers, got %d", len(tt.wantNames), len(providers))
			}
			for i, want := range tt.wantNames {
				if providers[i].Name() != want {
					t.Errorf("Provider %d: expected %s, got %s", i, want, providers[i].Name())
				}
			}
		})
	}
}

func TestConfigFromLLM(t *testing.T) {
	cfg, err := ConfigFromLLM(config.LLMConfig{
		FallbackEnabled: true,
		RetryAttempts:   0,
		RetryDelay:      "1s",
		MaxTotalTimeout: "60s",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.RetryAttempts != 1 {
		t.Errorf("Expected RetryAttempts clamped to 1, got %d", cfg.RetryAttempts)
	}
	if cfg.RetryDelay.Seconds() != 1 || cfg.MaxTotalTimeout.Seconds() != 60 {
		t.Errorf("Unexpected durations: %+v", cfg)
	}

	if _, err := ConfigFromLLM(config.LLMConfig{RetryDelay: "fast"}); err == nil {
		t.Error("Expected error for invalid retry delay")
	}
}
