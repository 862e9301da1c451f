package log

import "context"

const (
	ModeProduction = "production"
	EncodingJSON   = "json"

	FieldRequestID = "request_id"
)

type requestIDKey struct{}

// WithRequestID stores the request id so every log line emitted with ctx carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext returns the request id stored by WithRequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
