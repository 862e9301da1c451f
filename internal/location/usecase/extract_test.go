package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"weather-agent/internal/location"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"strict json", `{"location": "Paris"}`, "Paris"},
		{"json inside prose", `Sure! Here you go: {"location": "New York City"} Hope that helps.`, "New York City"},
		{"json in code fence", "```json\n{\"location\": \"Paris, France\"}\n```", "Paris, France"},
		{"unknown from model", `{"location": "unknown"}`, location.Unknown},
		{"empty from model", `{"location": ""}`, location.Unknown},
		{"key value pattern", `location: "Berlin"`, "Berlin"},
		{"single quoted key value", `The answer is location='Tokyo'`, "Tokyo"},
		{"weather phrase", "You asked about the weather in Madrid.", "Madrid"},
		{"weather phrase with time word", "the weather for Rome today", "Rome"},
		{"no pattern", "The city is probably London, I think", location.Unknown},
		{"non string location", `{"location": 42}`, location.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			llm := &fakeLLM{answers: map[string]string{"Extract the location": tt.output}}
			uc := New(&mockLogger{}, llm, &fakeGeo{})

			got, err := uc.Extract(context.Background(), "What's the weather?")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Extract() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtract_PromptCarriesQuery(t *testing.T) {
	llm := &fakeLLM{answers: map[string]string{"Extract the location": `{"location": "London"}`}}
	uc := New(&mockLogger{}, llm, &fakeGeo{})

	if _, err := uc.Extract(context.Background(), "What's the weather in London?"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(llm.prompts) != 1 || !strings.Contains(llm.prompts[0], "Query: What's the weather in London?") {
		t.Errorf("unexpected prompt: %v", llm.prompts)
	}
}

func TestExtract_LLMFailure(t *testing.T) {
	uc := New(&mockLogger{}, &fakeLLM{err: errors.New("connection refused")}, &fakeGeo{})

	_, err := uc.Extract(context.Background(), "weather in London")
	if !errors.Is(err, location.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestExtractFromText(t *testing.T) {
	uc := New(&mockLogger{}, &fakeLLM{}, &fakeGeo{})

	tests := []struct {
		text string
		want string
	}{
		{"What's the weather in London?", "London"},
		{"how is the weather at San Francisco right now?", "San Francisco"},
		{"WEATHER OF Paris, France!", "Paris, France"},
		{"What's the weather like?", location.Unknown},
		{`{"location": "Oslo"}`, "Oslo"},
		{"", location.Unknown},
	}

	for _, tt := range tests {
		if got := uc.ExtractFromText(tt.text); got != tt.want {
			t.Errorf("ExtractFromText(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}
