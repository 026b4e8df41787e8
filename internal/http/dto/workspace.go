package dto

import (
	"time"

	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/service"
)

type CreateWorkspaceRequest struct {
	Name        string `json:"name" binding:"omitempty,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Category    string `json:"category" binding:"omitempty,max=50"`
	Visibility  string `json:"visibility" binding:"omitempty,max=50"`
}

type WorkspaceResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Visibility  string    `json:"visibility"`
	Code        string    `json:"code"`
	CreatedBy   int64     `json:"createdBy,string"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MemberResponse struct {
	UserID   int64     `json:"userId,string"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

// WorkspaceViewResponse is one entry of the caller's workspace list: the
// workspace plus the caller's role and the resolved member list.
type WorkspaceViewResponse struct {
	Workspace WorkspaceResponse `json:"workspace"`
	Role      string            `json:"role"`
	JoinedAt  time.Time         `json:"joinedAt"`
	Members   []MemberResponse  `json:"members"`
}

func ToWorkspaceResponse(ws *model.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		Category:    string(ws.Category),
		Visibility:  string(ws.Visibility),
		Code:        ws.Code,
		CreatedBy:   ws.CreatedBy,
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.UpdatedAt,
	}
}

func ToMemberResponse(m model.Member) MemberResponse {
	return MemberResponse{
		UserID:   m.UserID,
		Username: m.Username,
		Email:    m.Email,
		Role:     string(m.Role),
		JoinedAt: m.JoinedAt,
	}
}

func ToMemberResponses(members []model.Member) []MemberResponse {
	out := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		out = append(out, ToMemberResponse(m))
	}
	return out
}

func ToWorkspaceViewResponse(v service.WorkspaceView) WorkspaceViewResponse {
	return WorkspaceViewResponse{
		Workspace: ToWorkspaceResponse(&v.Workspace),
		Role:      string(v.Role),
		JoinedAt:  v.JoinedAt,
		Members:   ToMemberResponses(v.Members),
	}
}
