package dto

import (
	"time"

	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/service"
)

type RegisterRequest struct {
	Username      string `json:"username" binding:"omitempty,max=255"`
	Email         string `json:"email" binding:"omitempty,max=255"`
	Password      string `json:"password" binding:"omitempty,max=72"`
	WorkspaceName string `json:"workspaceName" binding:"omitempty,max=255"`
}

type LoginRequest struct {
	Email         string `json:"email"`
	Password      string `json:"password"`
	WorkspaceCode string `json:"workspaceCode"`
}

type JoinWorkspaceRequest struct {
	WorkspaceCode string `json:"workspaceCode" binding:"required,max=20"`
}

type UserResponse struct {
	ID         int64                `json:"id,string"`
	Username   string               `json:"username"`
	Email      string               `json:"email"`
	Workspaces []MembershipResponse `json:"workspaces"`
}

type MembershipResponse struct {
	Workspace WorkspaceResponse `json:"workspace"`
	Role      string            `json:"role"`
	JoinedAt  time.Time         `json:"joinedAt"`
}

// AuthResponse is the register/login payload. The token is also set as an
// HTTP-only cookie; the body copy serves bearer-header clients.
type AuthResponse struct {
	Token            string             `json:"token"`
	User             UserResponse       `json:"user"`
	Workspace        *WorkspaceResponse `json:"workspace,omitempty"`
	WorkspaceCreated bool               `json:"workspaceCreated,omitempty"`
}

func ToUserResponse(u *model.User, memberships []model.Membership) UserResponse {
	ws := make([]MembershipResponse, 0, len(memberships))
	for _, m := range memberships {
		ws = append(ws, MembershipResponse{
			Workspace: ToWorkspaceResponse(&m.Workspace),
			Role:      string(m.Role),
			JoinedAt:  m.JoinedAt,
		})
	}
	return UserResponse{
		ID:         u.ID,
		Username:   u.Username,
		Email:      u.Email,
		Workspaces: ws,
	}
}

func ToAuthResponse(result *service.AuthResult) AuthResponse {
	resp := AuthResponse{
		Token:            result.Token,
		User:             ToUserResponse(result.User, result.Memberships),
		WorkspaceCreated: result.WorkspaceCreated,
	}
	if result.Workspace != nil {
		ws := ToWorkspaceResponse(result.Workspace)
		resp.Workspace = &ws
	}
	return resp
}
