package router

import (
	"github.com/gin-gonic/gin"

	"bugtrail.app/server/internal/http/handler"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler, requireAuth gin.HandlerFunc) {
	rg.POST("/register", h.Register)
	rg.POST("/login", h.Login)
	rg.POST("/logout", h.Logout)
	rg.POST("/join-workspace", requireAuth, h.JoinWorkspace)
}
