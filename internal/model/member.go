package model

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Member is a (user, workspace, role) membership. Username and Email are
// resolved from the users table when the member list is loaded.
type Member struct {
	WorkspaceID int64     `json:"workspace_id"`
	UserID      int64     `json:"user_id"`
	Role        Role      `json:"role"`
	JoinedAt    time.Time `json:"joined_at"`
	Username    string    `json:"username,omitempty"`
	Email       string    `json:"email,omitempty"`
}

// Membership is a workspace as seen from one user's side: the workspace plus
// that user's role in it.
type Membership struct {
	Workspace Workspace `json:"workspace"`
	Role      Role      `json:"role"`
	JoinedAt  time.Time `json:"joined_at"`
}
