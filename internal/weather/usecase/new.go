package usecase

import (
	"context"
	"time"

	pkgLog "weather-agent/pkg/log"
	"weather-agent/pkg/openweather"
)

// Client is the subset of the OpenWeatherMap client used by the weather domain
type Client interface {
	Current(ctx context.Context, lat, lon float64, units string) (*openweather.CurrentPayload, error)
	Forecast(ctx context.Context, lat, lon float64, units string) (*openweather.ForecastPayload, error)
}

type implUseCase struct {
	l        pkgLog.Logger
	client   Client
	timezone *time.Location
	now      func() time.Time
}

// New creates a new weather UseCase instance. A nil timezone means time.Local.
func New(l pkgLog.Logger, client Client, timezone *time.Location) *implUseCase {
	if timezone == nil {
		timezone = time.Local
	}
	return &implUseCase{
		l:        l,
		client:   client,
		timezone: timezone,
		now:      time.Now,
	}
}
