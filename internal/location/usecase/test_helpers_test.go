package usecase

import (
	"context"
	"errors"
	"strings"

	"weather-agent/pkg/openweather"
)

// fakeLLM answers prompts by the first matching substring key
type fakeLLM struct {
	answers map[string]string
	err     error
	prompts []string
}

func (f *fakeLLM) Complete(ctx context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	if f.err != nil {
		return "", f.err
	}
	for key, answer := range f.answers {
		if strings.Contains(prompt, key) {
			return answer, nil
		}
	}
	return "", errors.New("no answer configured")
}

type fakeGeo struct {
	results map[string][]openweather.GeoResult
	errs    map[string]error
	queries []string
}

func (f *fakeGeo) Geocode(ctx context.Context, query string, limit int) ([]openweather.GeoResult, error) {
	f.queries = append(f.queries, query)
	if err := f.errs[query]; err != nil {
		return nil, err
	}
	return f.results[query], nil
}

func ptr(f float64) *float64 { return &f }

// mockLogger is a no-op implementation of the Logger interface
type mockLogger struct {
	warnings []string
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any) {
	m.warnings = append(m.warnings, template)
}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
