package ollama

import (
	"fmt"
	"net/http"
	"strings"
)

// Config holds Ollama client configuration
type Config struct {
	BaseURL    string
	Model      string
	HTTPClient *http.Client
}

// Validate fills defaults and checks the configuration
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("ollama: invalid base URL %q", c.BaseURL)
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// ollamaImpl is the internal implementation of IOllama
type ollamaImpl struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request is a completion request
type Request struct {
	Model       string // overrides the client default when set
	System      string
	Prompt      string
	Temperature float64
	MaxTokens   int
}

// Response is a completion response
type Response struct {
	Text  string
	Model string
	Usage *Usage
}

// Usage tracks token consumption as reported by Ollama
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type generateRequest struct {
	Model   string           `json:"model"`
	Prompt  string           `json:"prompt"`
	System  string           `json:"system,omitempty"`
	Stream  bool             `json:"stream"`
	Options *generateOptions `json:"options,omitempty"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature,omitempty"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type generateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int    `json:"prompt_eval_count"`
	EvalCount       int    `json:"eval_count"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}
