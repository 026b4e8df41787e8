package router

import (
	"github.com/gin-gonic/gin"

	"bugtrail.app/server/internal/http/handler"
)

func BugRouter(rg *gin.RouterGroup, h *handler.BugHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
}
