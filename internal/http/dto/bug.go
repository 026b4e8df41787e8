package dto

import (
	"time"

	"bugtrail.app/server/internal/model"
)

type CreateBugRequest struct {
	WorkspaceID  int64   `json:"workspaceId,string" binding:"required"`
	Title        string  `json:"title" binding:"omitempty,max=100"`
	Description  string  `json:"description" binding:"omitempty,max=500"`
	Priority     string  `json:"priority" binding:"omitempty,max=20"`
	ProjectTitle string  `json:"projectTitle" binding:"omitempty,max=100"`
	GithubRepo   *string `json:"githubRepo" binding:"omitempty,url,max=200"`
	AssigneeID   *int64  `json:"assignee,string"`
}

// UpdateBugRequest carries partial updates; absent fields are left unchanged.
// Sending "0" for assignee clears the assignment.
type UpdateBugRequest struct {
	Title        *string `json:"title" binding:"omitempty,max=100"`
	Description  *string `json:"description" binding:"omitempty,max=500"`
	Status       *string `json:"status" binding:"omitempty,max=20"`
	Priority     *string `json:"priority" binding:"omitempty,max=20"`
	ProjectTitle *string `json:"projectTitle" binding:"omitempty,max=100"`
	GithubRepo   *string `json:"githubRepo" binding:"omitempty,max=200"`
	AssigneeID   *int64  `json:"assignee,string"`
}

type UserRefResponse struct {
	ID       int64  `json:"id,string"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type BugResponse struct {
	ID           int64            `json:"id,string"`
	WorkspaceID  int64            `json:"workspaceId,string"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	Status       string           `json:"status"`
	Priority     string           `json:"priority"`
	ProjectTitle string           `json:"projectTitle"`
	GithubRepo   *string          `json:"githubRepo,omitempty"`
	Reporter     *UserRefResponse `json:"reporter,omitempty"`
	Assignee     *UserRefResponse `json:"assignee,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

func ToBugResponse(b *model.Bug) BugResponse {
	return BugResponse{
		ID:           b.ID,
		WorkspaceID:  b.WorkspaceID,
		Title:        b.Title,
		Description:  b.Description,
		Status:       string(b.Status),
		Priority:     string(b.Priority),
		ProjectTitle: b.ProjectTitle,
		GithubRepo:   b.GithubRepo,
		Reporter:     toUserRefResponse(b.Reporter),
		Assignee:     toUserRefResponse(b.Assignee),
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}

func ToBugResponses(bugs []model.Bug) []BugResponse {
	out := make([]BugResponse, 0, len(bugs))
	for i := range bugs {
		out = append(out, ToBugResponse(&bugs[i]))
	}
	return out
}

func toUserRefResponse(ref *model.UserRef) *UserRefResponse {
	if ref == nil {
		return nil
	}
	return &UserRefResponse{ID: ref.ID, Username: ref.Username, Email: ref.Email}
}
