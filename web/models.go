package main

import "time"

// Wire types mirroring the API's JSON. IDs travel as strings.

type User struct {
	ID         int64        `json:"id,string"`
	Username   string       `json:"username"`
	Email      string       `json:"email"`
	Workspaces []Membership `json:"workspaces"`
}

type Workspace struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Visibility  string    `json:"visibility"`
	Code        string    `json:"code"`
	CreatedBy   int64     `json:"createdBy,string"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Membership struct {
	Workspace Workspace `json:"workspace"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
}

type WorkspaceView struct {
	Workspace Workspace `json:"workspace"`
	Role      string    `json:"role"`
	JoinedAt  time.Time `json:"joinedAt"`
	Members   []Member  `json:"members"`
}

type Member struct {
	UserID   int64     `json:"userId,string"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

type UserRef struct {
	ID       int64  `json:"id,string"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type Bug struct {
	ID           int64     `json:"id,string"`
	WorkspaceID  int64     `json:"workspaceId,string"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	ProjectTitle string    `json:"projectTitle"`
	GithubRepo   *string   `json:"githubRepo,omitempty"`
	Reporter     *UserRef  `json:"reporter,omitempty"`
	Assignee     *UserRef  `json:"assignee,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type AuthResult struct {
	Token            string     `json:"token"`
	User             User       `json:"user"`
	Workspace        *Workspace `json:"workspace,omitempty"`
	WorkspaceCreated bool       `json:"workspaceCreated,omitempty"`
}
