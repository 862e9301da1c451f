package router

import (
	"context"
	"testing"

	"weather-agent/pkg/log"
)

func TestClassify(t *testing.T) {
	r := New(log.NewNop())

	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"lowercase", "What's the weather in Paris?", IntentWeather},
		{"uppercase", "WEATHER London", IntentWeather},
		{"mixed case inside word", "any WeAtHeRproof jackets?", IntentWeather},
		{"general", "Tell me a joke", IntentGeneral},
		{"empty", "", IntentGeneral},
		{"near miss", "is it raining in Oslo", IntentGeneral},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := r.Classify(context.Background(), tc.message)
			if got.Intent != tc.want {
				t.Errorf("Classify(%q) = %s, want %s", tc.message, got.Intent, tc.want)
			}
		})
	}
}

func TestClassify_Confidence(t *testing.T) {
	r := New(log.NewNop())
	if got := r.Classify(context.Background(), "weather"); got.Confidence != ConfidenceKeyword {
		t.Errorf("expected confidence %d, got %d", ConfidenceKeyword, got.Confidence)
	}
	if got := r.Classify(context.Background(), "hi"); got.Confidence != ConfidenceFallback {
		t.Errorf("expected confidence %d, got %d", ConfidenceFallback, got.Confidence)
	}
}
