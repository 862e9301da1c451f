package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.API.Port)
	}
	if cfg.Ollama.BaseURL != "http://localhost:11434" || cfg.Ollama.DefaultModel != "llama3" {
		t.Errorf("unexpected ollama defaults: %+v", cfg.Ollama)
	}
	if cfg.Ollama.Timeout != 120*time.Second {
		t.Errorf("expected 120s ollama timeout, got %v", cfg.Ollama.Timeout)
	}
	if cfg.Weather.Units != "metric" {
		t.Errorf("expected metric units, got %q", cfg.Weather.Units)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].Name != "ollama" {
		t.Fatalf("expected default ollama provider, got %+v", cfg.LLM.Providers)
	}
	if cfg.LLM.Providers[0].Model != "llama3" {
		t.Errorf("expected default provider to use ollama model, got %q", cfg.LLM.Providers[0].Model)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := writeConfig(t, `
api:
  port: 9000
ollama:
  default_model: mistral
weather:
  api_key: from-file
  units: imperial
llm:
  providers:
    - name: ollama
      enabled: true
      priority: 1
      model: mistral
    - name: gemini
      enabled: true
      priority: 2
      api_key: ${TEST_GEMINI_KEY}
      model: gemini-2.5-flash
`)

	t.Setenv("API_PORT", "9100")
	t.Setenv("OPENWEATHER_API_KEY", "from-env")
	t.Setenv("TEST_GEMINI_KEY", "gem-key")

	cfg, err := load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.API.Port != 9100 {
		t.Errorf("expected env port override 9100, got %d", cfg.API.Port)
	}
	if cfg.Weather.APIKey != "from-env" {
		t.Errorf("expected OPENWEATHER_API_KEY to override file, got %q", cfg.Weather.APIKey)
	}
	if cfg.Weather.Units != "imperial" {
		t.Errorf("expected imperial units from file, got %q", cfg.Weather.Units)
	}
	if cfg.Ollama.DefaultModel != "mistral" {
		t.Errorf("expected file model, got %q", cfg.Ollama.DefaultModel)
	}
	if len(cfg.LLM.Providers) != 2 {
		t.Fatalf("expected 2 providers, got %d", len(cfg.LLM.Providers))
	}
	if cfg.LLM.Providers[1].APIKey != "gem-key" {
		t.Errorf("expected expanded API key, got %q", cfg.LLM.Providers[1].APIKey)
	}
}

func TestLoad_ModelAlias(t *testing.T) {
	t.Setenv("OLLAMA_MODEL", "phi3")

	cfg, err := load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Ollama.DefaultModel != "phi3" {
		t.Errorf("expected OLLAMA_MODEL alias, got %q", cfg.Ollama.DefaultModel)
	}
}

func TestLoad_ShippedConfigFollowsOllamaEnv(t *testing.T) {
	t.Setenv("OLLAMA_BASE_URL", "http://ollama-host:11434")
	t.Setenv("OLLAMA_MODEL", "phi3")

	cfg, err := load(".")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Ollama.BaseURL != "http://ollama-host:11434" || cfg.Ollama.DefaultModel != "phi3" {
		t.Errorf("unexpected ollama section: %+v", cfg.Ollama)
	}

	var found bool
	for _, p := range cfg.LLM.Providers {
		if p.Name != "ollama" {
			continue
		}
		found = true
		if p.BaseURL != cfg.Ollama.BaseURL {
			t.Errorf("expected provider base url %q, got %q", cfg.Ollama.BaseURL, p.BaseURL)
		}
		if p.Model != "phi3" {
			t.Errorf("expected provider model phi3, got %q", p.Model)
		}
		if p.Timeout != "2m0s" {
			t.Errorf("expected inherited 2m0s timeout, got %q", p.Timeout)
		}
	}
	if !found {
		t.Fatal("expected an ollama provider in config.yaml")
	}
}

func TestLoad_OllamaProviderKeepsExplicitFields(t *testing.T) {
	dir := writeConfig(t, `
llm:
  providers:
    - name: ollama
      enabled: true
      priority: 1
      base_url: http://gpu-box:11434
      model: mistral
      timeout: 30s
`)
	t.Setenv("OLLAMA_MODEL", "phi3")

	cfg, err := load(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := cfg.LLM.Providers[0]
	if p.BaseURL != "http://gpu-box:11434" || p.Model != "mistral" || p.Timeout != "30s" {
		t.Errorf("explicit provider fields overwritten: %+v", p)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "bad port",
			body: "api:\n  port: 70000\n",
			want: "Port",
		},
		{
			name: "duplicate priority",
			body: `
llm:
  providers:
    - name: ollama
      enabled: true
      priority: 1
    - name: gemini
      enabled: true
      priority: 1
      api_key: k
`,
			want: "duplicate priority",
		},
		{
			name: "unknown timezone",
			body: "weather:\n  timezone: Mars/Olympus\n",
			want: "weather.timezone",
		},
		{
			name: "all disabled",
			body: `
llm:
  providers:
    - name: ollama
      enabled: false
      priority: 1
`,
			want: "no enabled LLM providers",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(writeConfig(t, tt.body))
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %v", tt.want, err)
			}
		})
	}
}

func TestWeatherConfig_Location(t *testing.T) {
	loc, err := WeatherConfig{Timezone: "Europe/London"}.Location()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loc.String() != "Europe/London" {
		t.Errorf("unexpected location %v", loc)
	}

	loc, err = WeatherConfig{}.Location()
	if err != nil || loc != time.Local {
		t.Errorf("expected time.Local, got %v, %v", loc, err)
	}
}
