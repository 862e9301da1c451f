package http

import (
	"github.com/gin-gonic/gin"

	"weather-agent/internal/middleware"
)

// RegisterRoutes maps the agent endpoints. Only /chat is rate limited.
func RegisterRoutes(r gin.IRoutes, h Handler, mw middleware.Middleware) {
	r.GET("/", h.Root)
	r.POST("/chat", mw.RateLimit(), h.Chat)
}
