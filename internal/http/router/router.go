package router

import (
	"github.com/gin-gonic/gin"

	"bugtrail.app/server/internal/http/handler"
	"bugtrail.app/server/internal/http/middleware"
	"bugtrail.app/server/internal/service"
)

type RouterConfig struct {
	// CookieMaxAge is the session cookie lifetime in seconds, matching the
	// token TTL.
	CookieMaxAge int
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authService := services.Auth()
	requireAuth := middleware.RequireAuth(authService)

	api := router.Group("/api")
	{
		authHandler := handler.NewAuthHandler(authService, services.Workspaces(), cfg.CookieMaxAge, cfg.IsProduction)
		AuthRouter(api.Group("/auth"), authHandler, requireAuth)

		workspaceHandler := handler.NewWorkspaceHandler(services.Workspaces())
		WorkspaceRouter(api.Group("/workspaces", requireAuth), workspaceHandler)

		bugHandler := handler.NewBugHandler(services.Bugs())
		BugRouter(api.Group("/bugs", requireAuth), bugHandler)
	}
}
