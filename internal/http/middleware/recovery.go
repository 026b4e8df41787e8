package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"bugtrail.app/server/internal/http/response"
)

// Recovery converts panics into 500 responses with the standard envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(c.Request.Context(), "panic recovered",
					"panic", r,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)
				response.AbortError(c, http.StatusInternalServerError, "Something went wrong")
			}
		}()
		c.Next()
	}
}
