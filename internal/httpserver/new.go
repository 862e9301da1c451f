package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"weather-agent/internal/agent"
	"weather-agent/internal/middleware"
	"weather-agent/pkg/log"
)

// ModelLister reports the models available on the LLM backend
type ModelLister interface {
	ListModels(ctx context.Context) ([]string, error)
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Agent domain
	orchestrator agent.Orchestrator

	// Readiness
	models ModelLister
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	// Agent domain
	Orchestrator agent.Orchestrator

	// Models is probed by /ready. Optional.
	Models ModelLister
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		host:         cfg.Host,
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		mw:           cfg.Middleware,
		orchestrator: cfg.Orchestrator,
		models:       cfg.Models,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.orchestrator == nil {
		return errors.New("orchestrator is required")
	}
	return nil
}
