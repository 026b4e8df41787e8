package model

import "time"

type Status string

type Priority string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusResolved   Status = "resolved"
)

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Bug struct {
	ID           int64     `json:"id"`
	WorkspaceID  int64     `json:"workspace_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Status       Status    `json:"status"`
	Priority     Priority  `json:"priority"`
	ProjectTitle string    `json:"project_title"`
	GithubRepo   *string   `json:"github_repo,omitempty"`
	ReporterID   int64     `json:"reporter_id"`
	AssigneeID   *int64    `json:"assignee_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Resolved user summaries, populated by the store on reads.
	Reporter *UserRef `json:"reporter,omitempty"`
	Assignee *UserRef `json:"assignee,omitempty"`
}

// UserRef is the minimal user summary attached to bugs in API responses.
type UserRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusInProgress || s == StatusResolved
}

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}
