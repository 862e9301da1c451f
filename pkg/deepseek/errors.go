package deepseek

import (
	"errors"
	"fmt"
)

var (
	ErrAPIKeyRequired  = errors.New("deepseek: API key is required")
	ErrEmptyCompletion = errors.New("deepseek: response has no choices")
)

// APIError is a non-200 reply from a chat completions endpoint
type APIError struct {
	Vendor     Vendor
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s API error %d: %s", e.Vendor, e.StatusCode, e.Message)
}
