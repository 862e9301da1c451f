package openweather

import "time"

const (
	// DefaultAPIURL is the base of the current weather and forecast endpoints
	DefaultAPIURL = "https://api.openweathermap.org/data/2.5"

	// DefaultGeoURL is the direct geocoding endpoint
	DefaultGeoURL = "https://api.openweathermap.org/geo/1.0/direct"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	// UnitsMetric selects Celsius and m/s
	UnitsMetric = "metric"

	// UnitsImperial selects Fahrenheit and mph
	UnitsImperial = "imperial"

	circuitName        = "openweather"
	circuitMaxRequests = 5
	circuitInterval    = 1 * time.Minute
	circuitTimeout     = 2 * time.Minute
)

// DefaultBackoff retries 429 and 5xx twice with exponential delay.
var DefaultBackoff = BackoffConfig{
	MaxRetries:      2,
	InitialInterval: 500 * time.Millisecond,
	MaxInterval:     5 * time.Second,
}
