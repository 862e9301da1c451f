package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig
	API         APIConfig
	Logger      LoggerConfig

	// Language models
	Ollama OllamaConfig
	LLM    LLMConfig

	Weather   WeatherConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string `validate:"required"`
}

type APIConfig struct {
	Host  string
	Port  int    `validate:"min=1,max=65535"`
	Mode  string `validate:"oneof=debug release test"`
	Debug bool
}

type LoggerConfig struct {
	Level        string `validate:"oneof=debug info warn error dpanic panic fatal"`
	Mode         string
	Encoding     string `validate:"oneof=console json"`
	ColorEnabled bool
}

// OllamaConfig is the local model server used for the default provider
type OllamaConfig struct {
	BaseURL      string        `validate:"required,url"`
	DefaultModel string        `validate:"required"`
	Timeout      time.Duration `validate:"gt=0"`
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `validate:"dive"`
	FallbackEnabled bool
	RetryAttempts   int `validate:"min=0,max=10"`
	RetryDelay      string
	MaxTotalTimeout string // Global timeout for entire fallback chain
	Temperature     float64 `validate:"min=0,max=2"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `validate:"required"`
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  string
}

// WeatherConfig configures the OpenWeatherMap endpoints
type WeatherConfig struct {
	APIKey       string
	APIURL       string        `validate:"required,url"`
	GeoURL       string        `validate:"required,url"`
	Units        string        `validate:"required"`
	Timeout      time.Duration `validate:"gt=0"`
	Timezone     string
	RateLimitRPS float64 `validate:"min=0"`
}

type RateLimitConfig struct {
	RequestsPerMin int `validate:"min=0"`
}

// DefaultSearchPaths are the directories searched for config.yaml
var DefaultSearchPaths = []string{"./config", ".", "/etc/weather-agent/"}

// Load loads configuration using Viper.
// A .env file in the working directory is loaded into the environment first.
// Config file name: config.yaml, searched in DefaultSearchPaths.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(DefaultSearchPaths...)
}

func load(paths ...string) (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Environment names accepted in addition to the dotted-key mapping
	_ = v.BindEnv("weather.api_key", "WEATHER_API_KEY", "OPENWEATHER_API_KEY")
	_ = v.BindEnv("ollama.default_model", "OLLAMA_DEFAULT_MODEL", "OLLAMA_MODEL")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.API.Host = v.GetString("api.host")
	cfg.API.Port = v.GetInt("api.port")
	cfg.API.Mode = v.GetString("api.mode")
	cfg.API.Debug = v.GetBool("api.debug")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	cfg.Ollama.BaseURL = strings.TrimRight(v.GetString("ollama.base_url"), "/")
	cfg.Ollama.DefaultModel = v.GetString("ollama.default_model")
	cfg.Ollama.Timeout = v.GetDuration("ollama.timeout")

	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					})
				}
			}
		}
	}

	// Without an explicit provider list the local Ollama server is the only backend
	if len(cfg.LLM.Providers) == 0 {
		cfg.LLM.Providers = []ProviderConfig{cfg.Ollama.Provider()}
	}
	cfg.LLM.Providers = inheritOllama(cfg.LLM.Providers, cfg.Ollama)

	cfg.Weather.APIKey = v.GetString("weather.api_key")
	cfg.Weather.APIURL = strings.TrimRight(v.GetString("weather.api_url"), "/")
	cfg.Weather.GeoURL = v.GetString("weather.geo_url")
	cfg.Weather.Units = v.GetString("weather.units")
	cfg.Weather.Timeout = v.GetDuration("weather.timeout")
	cfg.Weather.Timezone = v.GetString("weather.timezone")
	cfg.Weather.RateLimitRPS = v.GetFloat64("weather.rate_limit_rps")

	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Provider returns the single-provider LLM entry for the Ollama server
func (o OllamaConfig) Provider() ProviderConfig {
	return ProviderConfig{
		Name:     "ollama",
		Enabled:  true,
		Priority: 1,
		BaseURL:  o.BaseURL,
		Model:    o.DefaultModel,
		Timeout:  o.Timeout.String(),
	}
}

// inheritOllama fills unset connection fields of ollama providers from the ollama section,
// so /ready and the generating provider talk to the same server.
func inheritOllama(providers []ProviderConfig, o OllamaConfig) []ProviderConfig {
	for i := range providers {
		if !strings.EqualFold(providers[i].Name, "ollama") {
			continue
		}
		if providers[i].BaseURL == "" {
			providers[i].BaseURL = o.BaseURL
		}
		if providers[i].Model == "" {
			providers[i].Model = o.DefaultModel
		}
		if providers[i].Timeout == "" {
			providers[i].Timeout = o.Timeout.String()
		}
	}
	return providers
}

// Location resolves Weather.Timezone, defaulting to the process local zone
func (w WeatherConfig) Location() (*time.Location, error) {
	if w.Timezone == "" || strings.EqualFold(w.Timezone, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(w.Timezone)
}

// Validate checks struct tags and the cross-field rules that tags cannot express
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if _, err := c.Weather.Location(); err != nil {
		return fmt.Errorf("invalid config: weather.timezone: %w", err)
	}
	return validateLLMConfig(&c.LLM)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8000)
	v.SetDefault("api.mode", "debug")
	v.SetDefault("api.debug", true)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("ollama.base_url", "http://localhost:11434")
	v.SetDefault("ollama.default_model", "llama3")
	v.SetDefault("ollama.timeout", "120s")

	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 1)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "180s")
	v.SetDefault("llm.temperature", 0.1)

	v.SetDefault("weather.api_url", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.geo_url", "https://api.openweathermap.org/geo/1.0/direct")
	v.SetDefault("weather.units", "metric")
	v.SetDefault("weather.timeout", "10s")
	v.SetDefault("weather.timezone", "Local")
	v.SetDefault("weather.rate_limit_rps", 5)

	v.SetDefault("rate_limit.requests_per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return ""
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("no LLM providers configured")
	}

	enabledCount := 0
	priorityMap := make(map[int]bool)

	for _, provider := range cfg.Providers {
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
