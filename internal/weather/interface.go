package weather

import (
	"context"

	"weather-agent/internal/model"
)

// UseCase defines the business logic interface for the weather domain.
// Failures are always returned as *Error.
type UseCase interface {
	// FetchCurrent fetches, validates and formats current conditions.
	FetchCurrent(ctx context.Context, coords model.Coordinates, units string) (CurrentOutput, error)

	// FetchForecast fetches the forecast and keeps the rest of today only.
	FetchForecast(ctx context.Context, coords model.Coordinates, units string) (ForecastOutput, error)

	// Format renders a snapshot as one line of text.
	Format(s Snapshot) string
}
