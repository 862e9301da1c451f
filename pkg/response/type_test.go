package response_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"weather-agent/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	// Marshals in Local(), so only the shape is checked.
	b, err := json.Marshal(response.DateTime(tm))
	if err != nil {
		t.Fatalf("unexpected error marshaling DateTime: %v", err)
	}

	str := string(b)
	if !strings.HasPrefix(str, `"`) || !strings.HasSuffix(str, `"`) {
		t.Errorf("expected string JSON format, got %s", str)
	}
	if len(str) != len(response.DateTimeFormat)+2 {
		t.Errorf("unexpected length: %s", str)
	}
}
