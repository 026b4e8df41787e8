package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bugtrail.app/server/internal/http/dto"
	"bugtrail.app/server/internal/http/middleware"
	"bugtrail.app/server/internal/http/response"
	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/service"
)

type BugHandler struct {
	bugService service.BugService
}

func NewBugHandler(bugService service.BugService) *BugHandler {
	return &BugHandler{bugService: bugService}
}

func (h *BugHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	raw := c.Query("workspaceId")
	if raw == "" {
		response.Error(c, http.StatusBadRequest, "Workspace ID is required")
		return
	}
	workspaceID, err := parseID(raw)
	if err != nil {
		response.Error(c, http.StatusNotFound, "Workspace not found")
		return
	}

	bugs, err := h.bugService.List(ctx, workspaceID, user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OKCount(c, len(bugs), dto.ToBugResponses(bugs))
}

func (h *BugHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	var req dto.CreateBugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Workspace ID is required")
		return
	}

	bug, err := h.bugService.Create(ctx, service.CreateBugInput{
		WorkspaceID:  req.WorkspaceID,
		Title:        req.Title,
		Description:  req.Description,
		Priority:     model.Priority(req.Priority),
		ProjectTitle: req.ProjectTitle,
		GithubRepo:   req.GithubRepo,
		AssigneeID:   req.AssigneeID,
	}, user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, dto.ToBugResponse(bug))
}

func (h *BugHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	bugID, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Bug not found")
		return
	}

	var req dto.UpdateBugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	input := service.UpdateBugInput{
		Title:        req.Title,
		Description:  req.Description,
		ProjectTitle: req.ProjectTitle,
		GithubRepo:   req.GithubRepo,
		AssigneeID:   req.AssigneeID,
	}
	if req.Status != nil {
		status := model.Status(*req.Status)
		input.Status = &status
	}
	if req.Priority != nil {
		priority := model.Priority(*req.Priority)
		input.Priority = &priority
	}

	bug, err := h.bugService.Update(ctx, bugID, input, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotMember) {
			response.Error(c, http.StatusForbidden, "Not authorized to update this bug")
			return
		}
		respondServiceError(c, err)
		return
	}

	response.OK(c, dto.ToBugResponse(bug))
}

func (h *BugHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	bugID, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Bug not found")
		return
	}

	if err := h.bugService.Delete(ctx, bugID, user.ID); err != nil {
		if errors.Is(err, service.ErrNotMember) {
			response.Error(c, http.StatusForbidden, "Not authorized to delete this bug")
			return
		}
		respondServiceError(c, err)
		return
	}

	response.OK(c, gin.H{})
}
