package router

import (
	"github.com/gin-gonic/gin"

	"bugtrail.app/server/internal/http/handler"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.GET("", h.ListMine)
	rg.POST("/create", h.Create)
	rg.GET("/:workspaceId/members", h.Members)
	rg.DELETE("/:workspaceId/members/:memberId", h.RemoveMember)
}
