package store

import (
	"context"
	"errors"

	"bugtrail.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// UserStore defines the contract for user data access
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// WorkspaceStore defines the contract for workspace data access
type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	GetByCode(ctx context.Context, code string) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	ListByUser(ctx context.Context, userID int64) ([]model.Membership, error)
}

// MemberStore defines the contract for workspace membership data access
type MemberStore interface {
	Add(ctx context.Context, member *model.Member) error
	List(ctx context.Context, workspaceID int64) ([]model.Member, error)
	Remove(ctx context.Context, workspaceID, userID int64) error
}

// BugStore defines the contract for bug data access
type BugStore interface {
	GetByID(ctx context.Context, id int64) (*model.Bug, error)
	Create(ctx context.Context, bug *model.Bug) error
	Update(ctx context.Context, bug *model.Bug) error
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Bug, error)
}
