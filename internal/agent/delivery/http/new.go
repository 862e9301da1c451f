package http

import (
	"github.com/gin-gonic/gin"

	"weather-agent/internal/agent"
	"weather-agent/pkg/log"
)

// Handler is the public interface for the agent HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Root(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc agent.Orchestrator
}

// New creates a new HTTP handler for the agent domain.
func New(l log.Logger, uc agent.Orchestrator) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
