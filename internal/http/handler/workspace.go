package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bugtrail.app/server/internal/http/dto"
	"bugtrail.app/server/internal/http/middleware"
	"bugtrail.app/server/internal/http/response"
	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/service"
)

type WorkspaceHandler struct {
	workspaceService service.WorkspaceService
}

func NewWorkspaceHandler(workspaceService service.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaceService: workspaceService}
}

func (h *WorkspaceHandler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	views, err := h.workspaceService.ListMine(ctx, user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	out := make([]dto.WorkspaceViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, dto.ToWorkspaceViewResponse(v))
	}
	response.OK(c, out)
}

func (h *WorkspaceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	var req dto.CreateWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Workspace name is required")
		return
	}

	ws, err := h.workspaceService.Create(ctx, service.CreateWorkspaceInput{
		Name:        req.Name,
		Description: req.Description,
		Category:    model.Category(req.Category),
		Visibility:  model.Visibility(req.Visibility),
	}, user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.Created(c, dto.ToWorkspaceResponse(ws))
}

func (h *WorkspaceHandler) Members(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	workspaceID, err := parseID(c.Param("workspaceId"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Workspace not found")
		return
	}

	members, err := h.workspaceService.Members(ctx, workspaceID, user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, dto.ToMemberResponses(members))
}

func (h *WorkspaceHandler) RemoveMember(c *gin.Context) {
	ctx := c.Request.Context()
	user := middleware.GetUser(ctx)

	workspaceID, err := parseID(c.Param("workspaceId"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Workspace not found")
		return
	}
	memberID, err := parseID(c.Param("memberId"))
	if err != nil {
		response.Error(c, http.StatusNotFound, "Member not found in this workspace")
		return
	}

	if err := h.workspaceService.RemoveMember(ctx, workspaceID, memberID, user.ID); err != nil {
		respondServiceError(c, err)
		return
	}

	response.OK(c, gin.H{})
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
