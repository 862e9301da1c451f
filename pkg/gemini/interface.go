package gemini

import "context"

// IGemini is a text-only client for the generateContent endpoint.
type IGemini interface {
	// GenerateContent sends one prompt and returns the joined text of the first candidate
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	Model() string
}

// New validates cfg, filling defaults, and returns a client safe for concurrent use.
func New(cfg Config) (IGemini, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
