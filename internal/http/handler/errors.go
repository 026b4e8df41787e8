package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail.app/server/internal/http/response"
	"bugtrail.app/server/internal/service"
)

// respondServiceError maps service sentinel errors to HTTP status codes and
// the API's message strings. Anything unmapped is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMissingFields):
		response.Error(c, http.StatusBadRequest, "Please provide a username, email and password")
	case errors.Is(err, service.ErrMissingCredentials):
		response.Error(c, http.StatusBadRequest, "Please provide an email and password")
	case errors.Is(err, service.ErrUserExists):
		response.Error(c, http.StatusConflict, "User with this email or username already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidToken):
		response.Error(c, http.StatusUnauthorized, "Not authorized to access this route")
	case errors.Is(err, service.ErrWorkspaceNameRequired):
		response.Error(c, http.StatusBadRequest, "Workspace name is required")
	case errors.Is(err, service.ErrInvalidCategory):
		response.Error(c, http.StatusBadRequest, "Invalid workspace category")
	case errors.Is(err, service.ErrInvalidVisibility):
		response.Error(c, http.StatusBadRequest, "Invalid workspace visibility")
	case errors.Is(err, service.ErrWorkspaceNotFound):
		response.Error(c, http.StatusNotFound, "Workspace not found")
	case errors.Is(err, service.ErrNotMember):
		response.Error(c, http.StatusForbidden, "Not authorized to access this workspace")
	case errors.Is(err, service.ErrNotAdmin):
		response.Error(c, http.StatusForbidden, "Not authorized to remove members")
	case errors.Is(err, service.ErrMemberNotFound):
		response.Error(c, http.StatusNotFound, "Member not found in this workspace")
	case errors.Is(err, service.ErrAlreadyMember):
		response.Error(c, http.StatusConflict, "You are already a member of this workspace")
	case errors.Is(err, service.ErrLastAdmin):
		response.Error(c, http.StatusBadRequest, "Cannot remove yourself as the only admin")
	case errors.Is(err, service.ErrCodeExhausted):
		response.Error(c, http.StatusInternalServerError, "Could not generate unique workspace code")
	case errors.Is(err, service.ErrWorkspaceIDRequired):
		response.Error(c, http.StatusBadRequest, "Workspace ID is required")
	case errors.Is(err, service.ErrBugNotFound):
		response.Error(c, http.StatusNotFound, "Bug not found")
	case errors.Is(err, service.ErrBugTitleRequired):
		response.Error(c, http.StatusBadRequest, "Please add a title")
	case errors.Is(err, service.ErrBugDescriptionRequired):
		response.Error(c, http.StatusBadRequest, "Please add a description")
	case errors.Is(err, service.ErrBugProjectTitleRequired):
		response.Error(c, http.StatusBadRequest, "Please add a project title")
	case errors.Is(err, service.ErrInvalidStatus):
		response.Error(c, http.StatusBadRequest, "Invalid bug status")
	case errors.Is(err, service.ErrInvalidPriority):
		response.Error(c, http.StatusBadRequest, "Invalid bug priority")
	case errors.Is(err, service.ErrAssigneeNotMember):
		response.Error(c, http.StatusBadRequest, "Assignee must be a workspace member")
	case errors.Is(err, service.ErrNotAssignee):
		response.Error(c, http.StatusForbidden, "Only the assigned user can change bug status")
	case errors.Is(err, service.ErrNotReporterOrAssignee):
		response.Error(c, http.StatusForbidden, "Only the reporter or assignee can delete this bug")
	default:
		slog.ErrorContext(c.Request.Context(), "unhandled service error",
			"error", err,
			"path", c.Request.URL.Path,
		)
		response.Error(c, http.StatusInternalServerError, "Something went wrong")
	}
}
