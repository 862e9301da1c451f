package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"weather-agent/config"
	"weather-agent/internal/middleware"
	"weather-agent/pkg/log"
)

type fakeOrchestrator struct{ reply string }

func (f fakeOrchestrator) ProcessQuery(ctx context.Context, text string) (string, error) {
	return f.reply, nil
}

type panickingOrchestrator struct{}

func (panickingOrchestrator) ProcessQuery(ctx context.Context, text string) (string, error) {
	panic("model client is nil")
}

type fakeModels struct {
	models []string
	err    error
}

func (f fakeModels) ListModels(ctx context.Context) ([]string, error) {
	return f.models, f.err
}

func newTestServer(t *testing.T, models ModelLister) http.Handler {
	t.Helper()
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:       l,
		Port:         8000,
		Mode:         gin.TestMode,
		Environment:  "development",
		Middleware:   middleware.New(l, config.RateLimitConfig{}),
		Orchestrator: fakeOrchestrator{reply: "hello"},
		Models:       models,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return srv.Handler()
}

func TestNew_Validate(t *testing.T) {
	l := log.NewNop()
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing mode", Config{Port: 1, Orchestrator: fakeOrchestrator{}}},
		{"missing port", Config{Mode: gin.TestMode, Orchestrator: fakeOrchestrator{}}},
		{"missing orchestrator", Config{Mode: gin.TestMode, Port: 1}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := New(l, tc.cfg); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
	if _, err := New(nil, Config{Mode: gin.TestMode, Port: 1, Orchestrator: fakeOrchestrator{}}); err == nil {
		t.Errorf("expected error for nil logger")
	}
}

func TestRoutes(t *testing.T) {
	h := newTestServer(t, nil)

	tests := []struct {
		method string
		path   string
		body   string
		code   int
		want   string
	}{
		{http.MethodGet, "/", "", http.StatusOK, "Ollama Weather Agent API is running"},
		{http.MethodPost, "/chat", `{"text":"hi"}`, http.StatusOK, `"response":"hello"`},
		{http.MethodPost, "/chat", `{}`, http.StatusUnprocessableEntity, `"detail"`},
		{http.MethodGet, "/health", "", http.StatusOK, `"status":"healthy"`},
		{http.MethodGet, "/live", "", http.StatusOK, `"status":"alive"`},
		{http.MethodGet, "/ready", "", http.StatusOK, `"status":"ready"`},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			req.Header.Set("Content-Type", "application/json")
			h.ServeHTTP(w, req)

			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d: %s", tc.code, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tc.want) {
				t.Errorf("expected %s in body %s", tc.want, w.Body.String())
			}
			if w.Header().Get(middleware.HeaderRequestID) == "" {
				t.Errorf("expected request id header")
			}
		})
	}
}

func TestReadyCheck_Models(t *testing.T) {
	t.Run("reachable", func(t *testing.T) {
		w := httptest.NewRecorder()
		newTestServer(t, fakeModels{models: []string{"llama3:latest"}}).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Models []string `json:"models"`
		}
		json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Models) != 1 || body.Models[0] != "llama3:latest" {
			t.Errorf("unexpected models %v", body.Models)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		w := httptest.NewRecorder()
		newTestServer(t, fakeModels{err: errors.New("connection refused")}).
			ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "connection refused") {
			t.Errorf("expected error detail in %s", w.Body.String())
		}
	})
}

func TestChat_PanicBecomesDetail(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:       l,
		Port:         8000,
		Mode:         gin.TestMode,
		Middleware:   middleware.New(l, config.RateLimitConfig{}),
		Orchestrator: panickingOrchestrator{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(`{"text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	var body struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	if body.Detail != "model client is nil" {
		t.Errorf("expected panic text as detail, got %q", body.Detail)
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	l := log.NewNop()
	srv, err := New(l, Config{
		Logger:       l,
		Host:         "127.0.0.1",
		Port:         18089,
		Mode:         gin.TestMode,
		Middleware:   middleware.New(l, config.RateLimitConfig{}),
		Orchestrator: fakeOrchestrator{},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := srv.Run(ctx); err != nil {
		t.Errorf("expected clean shutdown, got %v", err)
	}
}
