package usecase

import (
	"context"
	"time"

	"weather-agent/internal/model"
	"weather-agent/internal/weather"
	"weather-agent/pkg/openweather"
)

// FetchForecast returns the entries for the rest of today, in provider order
func (uc *implUseCase) FetchForecast(ctx context.Context, coords model.Coordinates, units string) (weather.ForecastOutput, error) {
	payload, err := uc.client.Forecast(ctx, coords.Latitude, coords.Longitude, units)
	if err != nil {
		uc.l.Warnf(ctx, "%s: request for %s failed: %v", LogPrefixFetchForecast, coords, err)
		return weather.ForecastOutput{}, fetchError(err)
	}

	entries := uc.filterToday(ctx, payload, units, uc.now().In(uc.timezone))
	uc.l.Debugf(ctx, "%s: %d of %d entries remain today", LogPrefixFetchForecast, len(entries), len(payload.List))
	return weather.ForecastOutput{Entries: entries}, nil
}

// filterToday keeps entries on now's calendar date strictly after now.
// Incomplete entries are skipped.
func (uc *implUseCase) filterToday(ctx context.Context, p *openweather.ForecastPayload, units string, now time.Time) []weather.ForecastEntry {
	var city, country string
	if p.City != nil {
		city, country = p.City.Name, p.City.Country
	}

	year, month, day := now.Date()
	entries := make([]weather.ForecastEntry, 0, len(p.List))

	for _, item := range p.List {
		ts := time.Unix(item.Dt, 0).In(uc.timezone)
		y, m, d := ts.Date()
		if y != year || m != month || d != day || !ts.After(now) {
			continue
		}

		s, err := parseConditions(item.Main, item.Weather, item.Wind, units)
		if err != nil {
			uc.l.Debugf(ctx, "%s: skipping entry at %s: %v", LogPrefixFetchForecast, ts.Format(time.RFC3339), err)
			continue
		}
		s.City, s.Country = city, country

		entries = append(entries, weather.ForecastEntry{
			Snapshot:  s,
			Timestamp: ts,
			LocalTime: ts.Format(FormatHourMin),
		})
	}
	return entries
}
