package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bugtrail.app/server/common/logger"
	"bugtrail.app/server/internal/http/response"
	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/service"
)

type contextKey string

const (
	SessionCookieName            = "token"
	userContextKey    contextKey = "user"
)

// RequireAuth resolves the session token (cookie first, bearer header as
// fallback) to a user and attaches it to the request context. The token
// carries only the user ID, so membership and role checks downstream always
// see current data.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		user, err := authService.ValidateToken(c.Request.Context(), token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "Not authorized to access this route")
			return
		}

		ctx := context.WithValue(c.Request.Context(), userContextKey, user)
		ctx = logger.WithLogFields(ctx, logger.LogFields{UserID: &user.ID})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetUser returns the authenticated user from the request context, or nil.
func GetUser(ctx context.Context) *model.User {
	user, _ := ctx.Value(userContextKey).(*model.User)
	return user
}

func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}
	header := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return token
	}
	return ""
}
