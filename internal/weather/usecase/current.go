package usecase

import (
	"context"
	"errors"

	"weather-agent/internal/model"
	"weather-agent/internal/weather"
	"weather-agent/pkg/openweather"
)

// FetchCurrent fetches current conditions and formats them
func (uc *implUseCase) FetchCurrent(ctx context.Context, coords model.Coordinates, units string) (weather.CurrentOutput, error) {
	payload, err := uc.client.Current(ctx, coords.Latitude, coords.Longitude, units)
	if err != nil {
		uc.l.Warnf(ctx, "%s: request for %s failed: %v", LogPrefixFetchCurrent, coords, err)
		return weather.CurrentOutput{}, fetchError(err)
	}

	snapshot, err := ParseCurrent(payload, units)
	if err != nil {
		uc.l.Warnf(ctx, "%s: %v", LogPrefixFetchCurrent, err)
		return weather.CurrentOutput{}, err
	}

	return weather.CurrentOutput{
		Text:     uc.Format(snapshot),
		Snapshot: snapshot,
	}, nil
}

// ParseCurrent validates a /weather payload into a Snapshot
func ParseCurrent(p *openweather.CurrentPayload, units string) (weather.Snapshot, error) {
	if p == nil {
		return weather.Snapshot{}, parseError("name")
	}
	switch {
	case p.Name == nil:
		return weather.Snapshot{}, parseError("name")
	case p.Sys == nil || p.Sys.Country == nil:
		return weather.Snapshot{}, parseError("sys.country")
	}

	s, err := parseConditions(p.Main, p.Weather, p.Wind, units)
	if err != nil {
		return weather.Snapshot{}, err
	}
	s.City = *p.Name
	s.Country = *p.Sys.Country
	return s, nil
}

// parseConditions validates the blocks shared by current and forecast payloads
func parseConditions(main *openweather.Main, conds []openweather.Condition, wind *openweather.Wind, units string) (weather.Snapshot, error) {
	switch {
	case main == nil || main.Temp == nil:
		return weather.Snapshot{}, parseError("main.temp")
	case main.FeelsLike == nil:
		return weather.Snapshot{}, parseError("main.feels_like")
	case main.Humidity == nil:
		return weather.Snapshot{}, parseError("main.humidity")
	case len(conds) == 0 || conds[0].Description == nil:
		return weather.Snapshot{}, parseError("weather[0].description")
	case wind == nil || wind.Speed == nil:
		return weather.Snapshot{}, parseError("wind.speed")
	}

	return weather.Snapshot{
		Description: *conds[0].Description,
		Temp:        *main.Temp,
		FeelsLike:   *main.FeelsLike,
		Humidity:    *main.Humidity,
		WindSpeed:   *wind.Speed,
		Units:       units,
	}, nil
}

func parseError(field string) *weather.Error {
	return &weather.Error{Kind: weather.KindParse, Field: field}
}

func fetchError(err error) *weather.Error {
	if errors.Is(err, openweather.ErrAPIKeyMissing) {
		return &weather.Error{Kind: weather.KindNotConfigured, Err: err}
	}
	return &weather.Error{Kind: weather.KindFetch, Err: err}
}
