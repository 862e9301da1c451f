package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	agentHTTP "weather-agent/internal/agent/delivery/http"
)

// setupAgentDomain registers GET / and POST /chat at the root of the router.
func (srv HTTPServer) setupAgentDomain(ctx context.Context, r gin.IRoutes) error {
	h := agentHTTP.New(srv.l, srv.orchestrator)

	agentHTTP.RegisterRoutes(r, h, srv.mw)

	srv.l.Infof(ctx, "Agent domain registered")
	return nil
}
