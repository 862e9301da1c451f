package openweather

import (
	"context"
	"errors"
	"net/http"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// IClient is the OpenWeatherMap HTTP client used by the weather and
// location domains. Implementations are safe for concurrent use.
type IClient interface {
	// Current fetches current conditions for coordinates
	Current(ctx context.Context, lat, lon float64, units string) (*CurrentPayload, error)

	// Forecast fetches the 5 day / 3 hour forecast for coordinates
	Forecast(ctx context.Context, lat, lon float64, units string) (*ForecastPayload, error)

	// Geocode resolves a place name with the direct geocoding API
	Geocode(ctx context.Context, query string, limit int) ([]GeoResult, error)

	// Configured reports whether an API key is set
	Configured() bool
}

// New creates a new OpenWeatherMap client
func New(cfg Config) (IClient, error) {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.GeoURL == "" {
		cfg.GeoURL = DefaultGeoURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if cfg.Backoff == (BackoffConfig{}) {
		cfg.Backoff = DefaultBackoff
	}
	if cfg.Backoff.MaxRetries < 0 || cfg.Backoff.InitialInterval <= 0 {
		return nil, errInvalidConfig
	}
	if cfg.RateLimitRPS < 0 {
		return nil, errInvalidConfig
	}

	limit := rate.Inf
	if cfg.RateLimitRPS > 0 {
		limit = rate.Limit(cfg.RateLimitRPS)
	}

	return &client{
		apiKey:     cfg.APIKey,
		apiURL:     trimSlash(cfg.APIURL),
		geoURL:     cfg.GeoURL,
		httpClient: cfg.HTTPClient,
		backoff:    cfg.Backoff,
		limiter:    rate.NewLimiter(limit, 1),
		circuit: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        circuitName,
			MaxRequests: circuitMaxRequests,
			Interval:    circuitInterval,
			Timeout:     circuitTimeout,
			// A 4xx answer means the service is up
			IsSuccessful: func(err error) bool {
				var apiErr *APIError
				if errors.As(err, &apiErr) {
					return !apiErr.Retryable()
				}
				return err == nil
			},
		}),
	}, nil
}
