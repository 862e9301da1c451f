package weather

import "fmt"

// Kind classifies a weather failure
type Kind int

const (
	KindFetch Kind = iota + 1
	KindParse
	KindNotConfigured
)

// Error is the failure result of every weather operation.
type Error struct {
	Kind  Kind
	Field string // missing payload field for KindParse
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindParse:
		return fmt.Sprintf("Error parsing weather data: missing field %s", e.Field)
	case KindNotConfigured:
		return "Error: OpenWeather API key not configured."
	default:
		return fmt.Sprintf("Error fetching weather data: %v", e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}
