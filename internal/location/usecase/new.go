package usecase

import (
	"context"

	"weather-agent/pkg/llmprovider"
	pkgLog "weather-agent/pkg/log"
	"weather-agent/pkg/openweather"
)

// GeocodingClient is the subset of the OpenWeatherMap client used by the web tier
type GeocodingClient interface {
	Geocode(ctx context.Context, query string, limit int) ([]openweather.GeoResult, error)
}

type implUseCase struct {
	l   pkgLog.Logger
	llm llmprovider.Completer
	geo GeocodingClient
}

// New creates a new location UseCase instance.
func New(l pkgLog.Logger, llm llmprovider.Completer, geo GeocodingClient) *implUseCase {
	return &implUseCase{
		l:   l,
		llm: llm,
		geo: geo,
	}
}
