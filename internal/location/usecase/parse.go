package usecase

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"weather-agent/internal/location"
	"weather-agent/pkg/parsechain"
)

var (
	jsonObjectPattern     = regexp.MustCompile(`\{[^{}]*\}`)
	locationKeyPattern    = regexp.MustCompile(`(?i)["']?location["']?\s*[:=]\s*["']([^"']+)["']`)
	weatherPhrasePattern  = regexp.MustCompile(`(?i)\bweather\s+(?:in|for|at|of)\s+([^?.!\n"]+)`)
	trailingTimePattern   = regexp.MustCompile(`(?i)\s+(?:today|tomorrow|tonight|right now|now|this (?:morning|afternoon|evening|week))$`)
	coordinatePairPattern = regexp.MustCompile(`(-?\d+\.?\d*)[,\s]+(-?\d+\.?\d*)`)
)

// locationChain parses model output for a place name
var locationChain = parsechain.New(
	parsechain.Strategy[string]{Name: "json_substring", Parse: func(raw string) (string, bool) {
		return locationFromJSON(jsonObjectPattern.FindString(raw))
	}},
	parsechain.Strategy[string]{Name: "json_whole", Parse: func(raw string) (string, bool) {
		return locationFromJSON(strings.TrimSpace(raw))
	}},
).Then(keyValueStrategy).Then(weatherPhraseStrategy)

// textChain is the pattern-only subset used on arbitrary text
var textChain = parsechain.New(keyValueStrategy, weatherPhraseStrategy)

var keyValueStrategy = parsechain.Strategy[string]{Name: "key_value", Parse: func(raw string) (string, bool) {
	m := locationKeyPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return cleanPlace(m[1])
}}

var weatherPhraseStrategy = parsechain.Strategy[string]{Name: "weather_phrase", Parse: func(raw string) (string, bool) {
	m := weatherPhrasePattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return cleanPlace(m[1])
}}

// coordinatesChain parses model output for a latitude/longitude pair
var coordinatesChain = parsechain.New(
	parsechain.Strategy[location.Coordinates]{Name: "json_substring", Parse: func(raw string) (location.Coordinates, bool) {
		return coordinatesFromJSON(jsonObjectPattern.FindString(raw))
	}},
	parsechain.Strategy[location.Coordinates]{Name: "json_whole", Parse: func(raw string) (location.Coordinates, bool) {
		return coordinatesFromJSON(strings.TrimSpace(raw))
	}},
	parsechain.Strategy[location.Coordinates]{Name: "numeric_pair", Parse: func(raw string) (location.Coordinates, bool) {
		m := coordinatePairPattern.FindStringSubmatch(raw)
		if m == nil {
			return location.Coordinates{}, false
		}
		lat, err1 := strconv.ParseFloat(m[1], 64)
		lon, err2 := strconv.ParseFloat(m[2], 64)
		if err1 != nil || err2 != nil {
			return location.Coordinates{}, false
		}
		return location.Coordinates{Latitude: lat, Longitude: lon}, true
	}},
)

func decodeObject(raw string) (map[string]interface{}, bool) {
	if raw == "" {
		return nil, false
	}
	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

func locationFromJSON(raw string) (string, bool) {
	obj, ok := decodeObject(raw)
	if !ok {
		return "", false
	}
	value, ok := obj["location"].(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(value), true
}

func coordinatesFromJSON(raw string) (location.Coordinates, bool) {
	obj, ok := decodeObject(raw)
	if !ok {
		return location.Coordinates{}, false
	}
	lat, ok := toFloat(obj["latitude"])
	if !ok {
		return location.Coordinates{}, false
	}
	lon, ok := toFloat(obj["longitude"])
	if !ok {
		return location.Coordinates{}, false
	}
	return location.Coordinates{Latitude: lat, Longitude: lon}, true
}

// toFloat accepts JSON numbers and numeric strings
func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	}
	return 0, false
}

// cleanPlace trims quotes, punctuation and trailing time words from a captured place
func cleanPlace(s string) (string, bool) {
	s = strings.Trim(strings.TrimSpace(s), `"'`)
	s = trailingTimePattern.ReplaceAllString(s, "")
	s = strings.TrimRight(strings.TrimSpace(s), ",;:")
	s = strings.TrimSpace(s)
	return s, s != ""
}
