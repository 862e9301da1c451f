package orchestrator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	locationUC "weather-agent/internal/location/usecase"
	"weather-agent/internal/router"
	weatherUC "weather-agent/internal/weather/usecase"
	"weather-agent/pkg/log"
	"weather-agent/pkg/openweather"
)

const londonPayload = `{"name":"London","sys":{"country":"GB"},"main":{"temp":15.5,"feels_like":14.8,"humidity":76},"weather":[{"description":"light rain"}],"wind":{"speed":4.1}}`

// scriptedLLM answers by the kind of prompt it receives
type scriptedLLM struct {
	location    string
	coordinates string
	general     string
}

func (s *scriptedLLM) Complete(ctx context.Context, prompt string) (string, error) {
	switch {
	case strings.Contains(prompt, "Extract the location"):
		return s.location, nil
	case strings.Contains(prompt, "geographic coordinates"):
		return s.coordinates, nil
	default:
		return s.general, nil
	}
}

type upstream struct {
	server       *httptest.Server
	geoHits      atomic.Int32
	weatherHits  atomic.Int32
	forecastHits atomic.Int32
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/geo/1.0/direct":
			u.geoHits.Add(1)
			w.Write([]byte(`[]`))
		case "/data/2.5/weather":
			u.weatherHits.Add(1)
			w.Write([]byte(londonPayload))
		case "/data/2.5/forecast":
			u.forecastHits.Add(1)
			w.Write([]byte(`{"list":[]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(u.server.Close)
	return u
}

func newPipeline(t *testing.T, llm *scriptedLLM, u *upstream) *Orchestrator {
	t.Helper()
	l := log.NewNop()

	client, err := openweather.New(openweather.Config{
		APIKey: "test-key",
		APIURL: u.server.URL + "/data/2.5",
		GeoURL: u.server.URL + "/geo/1.0/direct",
		Backoff: openweather.BackoffConfig{
			MaxRetries:      0,
			InitialInterval: time.Millisecond,
			MaxInterval:     time.Millisecond,
		},
	})
	if err != nil {
		t.Fatalf("openweather.New: %v", err)
	}

	return New(l, llm, router.New(l),
		locationUC.New(l, llm, client),
		weatherUC.New(l, client, time.UTC),
		"metric",
	)
}

func TestPipeline_London(t *testing.T) {
	u := newUpstream(t)
	o := newPipeline(t, &scriptedLLM{
		location:    `{"location": "London"}`,
		coordinates: `{"latitude": 51.5074, "longitude": -0.1278}`,
	}, u)

	got, err := o.ProcessQuery(context.Background(), "What's the weather in London?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"London", "light rain", "Clothing recommendations", "15.5°C", "light sweater or long sleeves", "raincoat"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
	if u.geoHits.Load() != 0 {
		t.Errorf("model tier resolved the location, geocoding API should not be called")
	}
	if u.weatherHits.Load() != 1 || u.forecastHits.Load() != 1 {
		t.Errorf("expected one current and one forecast call, got %d/%d", u.weatherHits.Load(), u.forecastHits.Load())
	}
}

func TestPipeline_GeneralQuery(t *testing.T) {
	u := newUpstream(t)
	o := newPipeline(t, &scriptedLLM{general: "Python is a programming language created by Guido van Rossum."}, u)

	got, err := o.ProcessQuery(context.Background(), "Tell me about Python")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Python is a programming language created by Guido van Rossum." {
		t.Errorf("expected verbatim model output, got %q", got)
	}
	if u.geoHits.Load()+u.weatherHits.Load()+u.forecastHits.Load() != 0 {
		t.Errorf("general query reached the weather provider")
	}
}

func TestPipeline_NonExistentPlace(t *testing.T) {
	u := newUpstream(t)
	o := newPipeline(t, &scriptedLLM{
		location:    `{"location": "NonExistentPlace"}`,
		coordinates: "I do not know where that is.",
	}, u)

	got, err := o.ProcessQuery(context.Background(), "What's the weather in NonExistentPlace?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "couldn't find") || !strings.Contains(got, "NonExistentPlace") {
		t.Errorf("unexpected response %q", got)
	}
	if u.geoHits.Load() == 0 {
		t.Errorf("expected the geocoding API tier to be tried")
	}
	if u.weatherHits.Load() != 0 {
		t.Errorf("weather must not be fetched for an unresolved location")
	}
}
