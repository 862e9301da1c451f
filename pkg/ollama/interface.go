package ollama

import "context"

// IOllama defines the interface for the Ollama API client.
// Implementations are safe for concurrent use.
type IOllama interface {
	// Generate runs a single non-streaming completion
	Generate(ctx context.Context, req *Request) (*Response, error)

	// ListModels returns the names of locally available models
	ListModels(ctx context.Context) ([]string, error)

	// Model returns the default model
	Model() string

	// BaseURL returns the server address
	BaseURL() string
}

// New creates a new Ollama client with the given configuration
func New(cfg Config) (IOllama, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOllamaImpl(cfg), nil
}
