package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog writes one line per request through the service logger
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		mw.l.Infof(c.Request.Context(), "%s: %s %s %d %s",
			LogPrefixAccessLog, c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}
