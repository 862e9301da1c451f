package agent

import "context"

// Orchestrator answers one user query end to end.
type Orchestrator interface {
	// ProcessQuery returns the response text for a query. Weather queries
	// always resolve to a message; only general-intent LLM failures are errors.
	ProcessQuery(ctx context.Context, text string) (string, error)
}
