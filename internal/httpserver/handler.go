package httpserver

import (
	"context"
	"fmt"

	"weather-agent/internal/model"
	"weather-agent/pkg/response"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(srv.recovery(), srv.mw.RequestID(), srv.mw.AccessLog())

	ctx := context.Background()
	if model.IsProduction(srv.environment) {
		srv.l.Infof(ctx, "Server mode: production")
	} else {
		srv.l.Infof(ctx, "Server mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	if err := srv.setupAgentDomain(ctx, srv.gin); err != nil {
		return err
	}

	return nil
}

// recovery turns a panic in any handler into 500 {"detail": <panic value>}
func (srv HTTPServer) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		srv.l.Errorf(c.Request.Context(), "internal.httpserver.recovery: %s %s panicked: %v", c.Request.Method, c.Request.URL.Path, rec)
		response.InternalError(c, fmt.Errorf("%v", rec))
		c.Abort()
	})
}
