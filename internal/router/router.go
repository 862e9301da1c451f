package router

import (
	"context"
	"strings"
)

// Classify returns IntentWeather when the message contains "weather" in any
// case, IntentGeneral otherwise.
func (r *KeywordRouter) Classify(ctx context.Context, message string) RouterOutput {
	out := RouterOutput{
		Intent:     IntentGeneral,
		Confidence: ConfidenceFallback,
		Reasoning:  ReasonNoKeyword,
	}
	if IsWeather(message) {
		out = RouterOutput{
			Intent:     IntentWeather,
			Confidence: ConfidenceKeyword,
			Reasoning:  ReasonKeywordMatch,
		}
	}

	r.l.Debugf(ctx, "%s: Classified as %s (confidence: %d%%)", LogPrefixClassify, out.Intent, out.Confidence)
	return out
}

// IsWeather reports whether message mentions weather
func IsWeather(message string) bool {
	return strings.Contains(strings.ToLower(message), WeatherKeyword)
}
