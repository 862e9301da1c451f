package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"weather-agent/internal/clothing"
	"weather-agent/internal/location"
	"weather-agent/internal/weather"
)

var alphaToken = regexp.MustCompile(`\p{L}+`)

// handleWeather always produces a message; panics become FormatProcessingError
func (o *Orchestrator) handleWeather(ctx context.Context, query string) (reply string) {
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "%s: "+LogMsgRecoveredPanic, LogPrefixRecoverWeather, r)
			reply = fmt.Sprintf(FormatProcessingError, r)
		}
	}()

	loc, err := o.location.Extract(ctx, query)
	if err != nil {
		o.l.Warnf(ctx, "%s: "+LogMsgExtractFallback, LogPrefixHandleWeather, err)
		loc = o.location.ExtractFromText(query)
		if location.IsUnknown(loc) {
			return MsgExtractionFailed
		}
	}
	if location.IsUnknown(loc) {
		return MsgLocationRequired
	}
	o.l.Debugf(ctx, "%s: "+LogMsgLocation, LogPrefixHandleWeather, loc)

	geo, err := o.location.Geocode(ctx, loc)
	if errors.Is(err, location.ErrLocationNotFound) {
		return locationNotFound(loc)
	}
	if err != nil {
		return fmt.Sprintf(FormatProcessingError, err)
	}
	o.l.Infof(ctx, "%s: "+LogMsgResolved, LogPrefixHandleWeather, loc, geo.Coordinates, geo.Source)

	current, err := o.weather.FetchCurrent(ctx, geo.Coordinates, o.units)
	if err != nil {
		var wxErr *weather.Error
		if errors.As(err, &wxErr) {
			return fmt.Sprintf(FormatWeatherUnavailable, loc, wxErr)
		}
		return fmt.Sprintf(FormatProcessingError, err)
	}

	forecast := o.fetchForecast(ctx, geo.Coordinates)
	advice := clothing.Recommend(&current.Snapshot, forecast)

	return fmt.Sprintf(FormatWeatherAnswer, loc, current.Text, advice)
}

// fetchForecast returns nil on failure so advice covers current conditions only
func (o *Orchestrator) fetchForecast(ctx context.Context, coords location.Coordinates) []weather.ForecastEntry {
	out, err := o.weather.FetchForecast(ctx, coords, o.units)
	if err != nil {
		o.l.Warnf(ctx, "%s: "+LogMsgForecastFailed, LogPrefixFetchForecast, err)
		return nil
	}
	return out.Entries
}

func locationNotFound(loc string) string {
	msg := fmt.Sprintf(FormatLocationNotFound, loc)
	if token := alphaToken.FindString(loc); token != "" && token != loc {
		msg += fmt.Sprintf(FormatLocationSuggestion, token)
	}
	return msg
}
