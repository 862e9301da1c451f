package openweather

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Config holds client configuration
type Config struct {
	APIKey     string
	APIURL     string
	GeoURL     string
	HTTPClient *http.Client

	// RateLimitRPS caps outbound requests per second. Zero means unlimited.
	RateLimitRPS float64
	Backoff      BackoffConfig
}

type client struct {
	apiKey     string
	apiURL     string
	geoURL     string
	httpClient *http.Client
	backoff    BackoffConfig
	limiter    *rate.Limiter
	circuit    *gobreaker.CircuitBreaker
}

// CurrentPayload is the /weather response. Pointer fields stay nil when the
// provider omits them so callers can tell absent from zero.
type CurrentPayload struct {
	Name     *string     `json:"name"`
	Sys      *Sys        `json:"sys"`
	Main     *Main       `json:"main"`
	Weather  []Condition `json:"weather"`
	Wind     *Wind       `json:"wind"`
	Dt       int64       `json:"dt"`
	Timezone int         `json:"timezone"`
}

type Sys struct {
	Country *string `json:"country"`
}

type Main struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	Humidity  *float64 `json:"humidity"`
}

type Condition struct {
	Main        string  `json:"main"`
	Description *string `json:"description"`
}

type Wind struct {
	Speed *float64 `json:"speed"`
}

// ForecastPayload is the 5 day / 3 hour /forecast response
type ForecastPayload struct {
	List []ForecastItem `json:"list"`
	City *ForecastCity  `json:"city"`
}

type ForecastItem struct {
	Dt      int64       `json:"dt"`
	Main    *Main       `json:"main"`
	Weather []Condition `json:"weather"`
	Wind    *Wind       `json:"wind"`
	DtTxt   string      `json:"dt_txt"`
}

type ForecastCity struct {
	Name     string `json:"name"`
	Country  string `json:"country"`
	Timezone int    `json:"timezone"`
}

// GeoResult is one entry of the direct geocoding response
type GeoResult struct {
	Name    string   `json:"name"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
	Country string   `json:"country"`
	State   string   `json:"state"`
}

type apiErrorBody struct {
	Message string `json:"message"`
}
