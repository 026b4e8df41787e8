package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail.app/server/internal/http/dto"
	"bugtrail.app/server/internal/http/middleware"
	"bugtrail.app/server/internal/http/response"
	"bugtrail.app/server/internal/service"
)

type AuthHandler struct {
	authService      service.AuthService
	workspaceService service.WorkspaceService
	cookieMaxAge     int
	isProduction     bool
}

func NewAuthHandler(authService service.AuthService, workspaceService service.WorkspaceService, cookieMaxAge int, isProduction bool) *AuthHandler {
	return &AuthHandler{
		authService:      authService,
		workspaceService: workspaceService,
		cookieMaxAge:     cookieMaxAge,
		isProduction:     isProduction,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide a username, email and password")
		return
	}

	result, err := h.authService.Register(ctx, service.RegisterInput{
		Username:      req.Username,
		Email:         req.Email,
		Password:      req.Password,
		WorkspaceName: req.WorkspaceName,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": dto.ToAuthResponse(result)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide an email and password")
		return
	}

	result, err := h.authService.Login(ctx, service.LoginInput{
		Email:         req.Email,
		Password:      req.Password,
		WorkspaceCode: req.WorkspaceCode,
	})
	if err != nil {
		// The login flow words membership failures differently from the
		// workspace endpoints.
		if errors.Is(err, service.ErrNotMember) {
			response.Error(c, http.StatusForbidden, "You are not a member of this workspace")
			return
		}
		respondServiceError(c, err)
		return
	}

	h.setSessionCookie(c, result.Token)
	response.OK(c, dto.ToAuthResponse(result))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	response.OK(c, gin.H{})
}

func (h *AuthHandler) JoinWorkspace(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	var req dto.JoinWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Please provide a workspace code")
		return
	}

	ws, err := h.workspaceService.Join(ctx, req.WorkspaceCode, user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, dto.ToWorkspaceResponse(ws))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		h.cookieMaxAge,
		"/",
		"",
		h.isProduction,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(
		middleware.SessionCookieName,
		"",
		-1,
		"/",
		"",
		h.isProduction,
		true,
	)
}
