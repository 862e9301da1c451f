package httpserver

import (
	"context"
	"net/http"
	"time"

	"weather-agent/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "weather-agent"

	readyProbeTimeout = 3 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":    "healthy",
		"version":   HealthVersion,
		"service":   ServiceName,
		"timestamp": response.DateTime(time.Now()),
	})
}

// readyCheck reports ready when the LLM backend answers.
// @Summary Readiness Check
// @Description Check if the API and its language model backend are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "LLM backend unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	}

	if srv.models != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), readyProbeTimeout)
		defer cancel()

		models, err := srv.models.ListModels(ctx)
		if err != nil {
			srv.l.Warnf(ctx, "readyCheck: LLM backend unreachable: %v", err)
			body["status"] = "not ready"
			body["detail"] = err.Error()
			c.JSON(http.StatusServiceUnavailable, body)
			return
		}
		body["models"] = models
	}

	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
