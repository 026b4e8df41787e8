package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"bugtrail.app/server/common/id"
	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/store"
)

const (
	workspaceCodeLength   = 6
	workspaceCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	codeGenMaxAttempts    = 10
)

var (
	ErrWorkspaceNameRequired = errors.New("workspace name is required")
	ErrInvalidCategory       = errors.New("invalid workspace category")
	ErrInvalidVisibility     = errors.New("invalid workspace visibility")
	ErrWorkspaceNotFound     = errors.New("workspace not found")
	ErrNotMember             = errors.New("caller is not a member of this workspace")
	ErrNotAdmin              = errors.New("caller is not an admin of this workspace")
	ErrAlreadyMember         = errors.New("user is already a member of this workspace")
	ErrMemberNotFound        = errors.New("member not found in this workspace")
	ErrLastAdmin             = errors.New("cannot remove the workspace's only admin")
	ErrCodeExhausted         = errors.New("could not generate a unique workspace code")
)

type CreateWorkspaceInput struct {
	Name        string
	Description string
	Category    model.Category
	Visibility  model.Visibility
}

// WorkspaceView is a workspace as seen by one of its members: the caller's
// role plus the resolved member list.
type WorkspaceView struct {
	Workspace model.Workspace `json:"workspace"`
	Role      model.Role      `json:"role"`
	JoinedAt  time.Time       `json:"joined_at"`
	Members   []model.Member  `json:"members"`
}

type WorkspaceService interface {
	Create(ctx context.Context, input CreateWorkspaceInput, creatorID int64) (*model.Workspace, error)
	Join(ctx context.Context, code string, userID int64) (*model.Workspace, error)
	ListMine(ctx context.Context, userID int64) ([]WorkspaceView, error)
	Members(ctx context.Context, workspaceID, callerID int64) ([]model.Member, error)
	RemoveMember(ctx context.Context, workspaceID, targetUserID, callerID int64) error
}

type workspaceService struct {
	workspaceStore store.WorkspaceStore
	memberStore    store.MemberStore
	txRunner       TxRunner
}

func NewWorkspaceService(workspaceStore store.WorkspaceStore, memberStore store.MemberStore, txRunner TxRunner) WorkspaceService {
	return &workspaceService{
		workspaceStore: workspaceStore,
		memberStore:    memberStore,
		txRunner:       txRunner,
	}
}

func (s *workspaceService) Create(ctx context.Context, input CreateWorkspaceInput, creatorID int64) (*model.Workspace, error) {
	var ws *model.Workspace
	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		ws, err = createWorkspaceTx(ctx, stores, input, creatorID)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "workspace created",
		"workspace_id", ws.ID,
		"code", ws.Code,
		"created_by", creatorID,
	)

	return ws, nil
}

// createWorkspaceTx creates a workspace and enrolls the creator as its sole
// admin inside the caller's transaction. Registration reuses it so a new user
// and their first workspace commit atomically.
func createWorkspaceTx(ctx context.Context, stores StoreProvider, input CreateWorkspaceInput, creatorID int64) (*model.Workspace, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, ErrWorkspaceNameRequired
	}
	if input.Category == "" {
		input.Category = model.CategoryDevelopment
	}
	if !input.Category.Valid() {
		return nil, ErrInvalidCategory
	}
	if input.Visibility == "" {
		input.Visibility = model.VisibilityPrivate
	}
	if !input.Visibility.Valid() {
		return nil, ErrInvalidVisibility
	}

	code, err := generateWorkspaceCode(ctx, stores.Workspaces())
	if err != nil {
		return nil, err
	}

	ws := &model.Workspace{
		ID:          id.New(),
		Name:        input.Name,
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		Visibility:  input.Visibility,
		Code:        code,
		CreatedBy:   creatorID,
	}
	if err := stores.Workspaces().Create(ctx, ws); err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}

	member := &model.Member{
		WorkspaceID: ws.ID,
		UserID:      creatorID,
		Role:        model.RoleAdmin,
	}
	if err := stores.Members().Add(ctx, member); err != nil {
		return nil, fmt.Errorf("adding creator as admin: %w", err)
	}

	return ws, nil
}

// generateWorkspaceCode draws 6-character invite codes uniformly from [A-Z0-9]
// until one is unused. Attempts are bounded; with 36^6 possible codes the
// retry path is effectively unreachable, but a bound beats looping forever.
func generateWorkspaceCode(ctx context.Context, workspaces store.WorkspaceStore) (string, error) {
	for attempt := 0; attempt < codeGenMaxAttempts; attempt++ {
		code, err := randomCode(workspaceCodeLength)
		if err != nil {
			return "", fmt.Errorf("generating workspace code: %w", err)
		}

		_, err = workspaces.GetByCode(ctx, code)
		if errors.Is(err, store.ErrNotFound) {
			return code, nil
		}
		if err != nil {
			return "", fmt.Errorf("checking code uniqueness: %w", err)
		}
	}
	return "", ErrCodeExhausted
}

// randomCode samples the alphabet without modulo bias: bytes at or above the
// largest multiple of len(alphabet) below 256 are rejected and redrawn.
func randomCode(length int) (string, error) {
	const limit = byte(256 - 256%len(workspaceCodeAlphabet))

	out := make([]byte, 0, length)
	buf := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= limit {
				continue
			}
			out = append(out, workspaceCodeAlphabet[int(b)%len(workspaceCodeAlphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}

func (s *workspaceService) Join(ctx context.Context, code string, userID int64) (*model.Workspace, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	ws, err := s.workspaceStore.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace by code: %w", err)
	}

	members, err := s.memberStore.List(ctx, ws.ID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	if IsMember(members, userID) {
		return nil, ErrAlreadyMember
	}

	member := &model.Member{
		WorkspaceID: ws.ID,
		UserID:      userID,
		Role:        model.RoleMember,
	}
	if err := s.memberStore.Add(ctx, member); err != nil {
		return nil, fmt.Errorf("adding member: %w", err)
	}

	slog.InfoContext(ctx, "user joined workspace",
		"workspace_id", ws.ID,
		"user_id", userID,
	)

	return ws, nil
}

func (s *workspaceService) ListMine(ctx context.Context, userID int64) ([]WorkspaceView, error) {
	memberships, err := s.workspaceStore.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}

	views := make([]WorkspaceView, 0, len(memberships))
	for _, m := range memberships {
		members, err := s.memberStore.List(ctx, m.Workspace.ID)
		if err != nil {
			return nil, fmt.Errorf("listing members of workspace %d: %w", m.Workspace.ID, err)
		}
		views = append(views, WorkspaceView{
			Workspace: m.Workspace,
			Role:      m.Role,
			JoinedAt:  m.JoinedAt,
			Members:   members,
		})
	}
	return views, nil
}

func (s *workspaceService) Members(ctx context.Context, workspaceID, callerID int64) ([]model.Member, error) {
	if _, err := s.workspaceStore.GetByID(ctx, workspaceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("getting workspace: %w", err)
	}

	members, err := s.memberStore.List(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	if !IsMember(members, callerID) {
		return nil, ErrNotMember
	}
	return members, nil
}

func (s *workspaceService) RemoveMember(ctx context.Context, workspaceID, targetUserID, callerID int64) error {
	if _, err := s.workspaceStore.GetByID(ctx, workspaceID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrWorkspaceNotFound
		}
		return fmt.Errorf("getting workspace: %w", err)
	}

	members, err := s.memberStore.List(ctx, workspaceID)
	if err != nil {
		return fmt.Errorf("listing members: %w", err)
	}
	if !IsAdmin(members, callerID) {
		return ErrNotAdmin
	}

	target := FindMember(members, targetUserID)
	if target == nil {
		return ErrMemberNotFound
	}
	if targetUserID == callerID && target.Role == model.RoleAdmin && AdminCount(members) == 1 {
		return ErrLastAdmin
	}

	err = s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		return stores.Members().Remove(ctx, workspaceID, targetUserID)
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrMemberNotFound
		}
		return fmt.Errorf("removing member: %w", err)
	}

	slog.InfoContext(ctx, "member removed from workspace",
		"workspace_id", workspaceID,
		"user_id", targetUserID,
		"removed_by", callerID,
	)

	return nil
}
