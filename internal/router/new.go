package router

import (
	"context"

	"weather-agent/pkg/log"
)

// Router is the interface for intent routing
type Router interface {
	Classify(ctx context.Context, message string) RouterOutput
}

// KeywordRouter classifies intent by keyword
type KeywordRouter struct {
	l log.Logger
}

var _ Router = (*KeywordRouter)(nil)

// New creates a new KeywordRouter
func New(l log.Logger) *KeywordRouter {
	return &KeywordRouter{l: l}
}
