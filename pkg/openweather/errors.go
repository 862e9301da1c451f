package openweather

import (
	"errors"
	"fmt"
)

var (
	// ErrAPIKeyMissing is returned before any request when no API key is configured
	ErrAPIKeyMissing = errors.New("OpenWeather API key not configured")

	// ErrCircuitOpen is returned while the breaker rejects calls
	ErrCircuitOpen = errors.New("circuit breaker open")

	errRateLimited   = errors.New("rate limited")
	errServerError   = errors.New("server error")
	errInvalidConfig = errors.New("invalid backoff configuration")
)

// APIError is a non-2xx response from OpenWeatherMap
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		class := "Client"
		if e.StatusCode >= 500 {
			class = "Server"
		}
		return fmt.Sprintf("%d %s Error: %s for url: %s", e.StatusCode, class, e.Message, e.URL)
	}
	return fmt.Sprintf("unexpected status code %d for url: %s", e.StatusCode, e.URL)
}

// Retryable reports whether the status is worth another attempt
func (e *APIError) Retryable() bool {
	return e.StatusCode == 429 || e.StatusCode >= 500
}

func (e *APIError) Unwrap() error {
	switch {
	case e.StatusCode == 429:
		return errRateLimited
	case e.StatusCode >= 500:
		return errServerError
	}
	return nil
}
