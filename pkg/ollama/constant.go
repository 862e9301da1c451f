package ollama

import "time"

const (
	// DefaultBaseURL is the default local Ollama endpoint
	DefaultBaseURL = "http://localhost:11434"

	// DefaultModel is the default Ollama model
	DefaultModel = "llama3"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 120 * time.Second
)
