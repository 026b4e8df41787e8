package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail.app/server/core/config"
)

// CORS allows credentialed requests from the configured frontend origin.
// The session cookie requires credentials, so the origin is echoed exactly
// rather than wildcarded.
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == cfg.AllowedOrigin {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Requested-With")
			c.Header("Access-Control-Max-Age", "300")
			c.Header("Vary", "Origin")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
