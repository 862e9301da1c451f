package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Configured reports whether an API key is set
func (c *client) Configured() bool {
	return c.apiKey != ""
}

// Current calls GET {api}/weather
func (c *client) Current(ctx context.Context, lat, lon float64, units string) (*CurrentPayload, error) {
	var payload CurrentPayload
	if err := c.getJSON(ctx, c.apiURL+"/weather", coordParams(lat, lon, units), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Forecast calls GET {api}/forecast
func (c *client) Forecast(ctx context.Context, lat, lon float64, units string) (*ForecastPayload, error) {
	var payload ForecastPayload
	if err := c.getJSON(ctx, c.apiURL+"/forecast", coordParams(lat, lon, units), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// Geocode calls GET {geo}?q=...&limit=...
func (c *client) Geocode(ctx context.Context, query string, limit int) ([]GeoResult, error) {
	if limit <= 0 {
		limit = 1
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var results []GeoResult
	if err := c.getJSON(ctx, c.geoURL, params, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *client) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	if c.apiKey == "" {
		return ErrAPIKeyMissing
	}
	params.Set("appid", c.apiKey)
	target := endpoint + "?" + params.Encode()

	resp, err := c.do(ctx, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("openweather: failed to decode response: %w", err)
	}
	return nil
}

func coordParams(lat, lon float64, units string) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	if units != "" {
		params.Set("units", units)
	}
	return params
}

func trimSlash(s string) string {
	return strings.TrimRight(s, "/")
}
