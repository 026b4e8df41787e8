package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"bugtrail.app/server/common/id"
	"bugtrail.app/server/internal/model"
	"bugtrail.app/server/internal/store"
)

var (
	ErrWorkspaceIDRequired     = errors.New("workspace ID is required")
	ErrBugTitleRequired        = errors.New("bug title is required")
	ErrBugDescriptionRequired  = errors.New("bug description is required")
	ErrBugProjectTitleRequired = errors.New("bug project title is required")
	ErrInvalidStatus           = errors.New("invalid bug status")
	ErrInvalidPriority         = errors.New("invalid bug priority")
	ErrBugNotFound             = errors.New("bug not found")
	ErrAssigneeNotMember       = errors.New("assignee is not a workspace member")
	ErrNotAssignee             = errors.New("only the assignee may change bug status")
	ErrNotReporterOrAssignee   = errors.New("only the reporter or assignee may delete a bug")
)

type CreateBugInput struct {
	WorkspaceID  int64
	Title        string
	Description  string
	Priority     model.Priority
	ProjectTitle string
	GithubRepo   *string
	AssigneeID   *int64
}

// UpdateBugInput carries partial updates. Nil fields are left unchanged; for
// AssigneeID a pointer to zero clears the assignee.
type UpdateBugInput struct {
	Title        *string
	Description  *string
	Status       *model.Status
	Priority     *model.Priority
	ProjectTitle *string
	GithubRepo   *string
	AssigneeID   *int64
}

type BugService interface {
	List(ctx context.Context, workspaceID, callerID int64) ([]model.Bug, error)
	Create(ctx context.Context, input CreateBugInput, callerID int64) (*model.Bug, error)
	Update(ctx context.Context, bugID int64, input UpdateBugInput, callerID int64) (*model.Bug, error)
	Delete(ctx context.Context, bugID, callerID int64) error
}

type bugService struct {
	bugStore       store.BugStore
	workspaceStore store.WorkspaceStore
	memberStore    store.MemberStore
	userStore      store.UserStore
}

func NewBugService(bugStore store.BugStore, workspaceStore store.WorkspaceStore, memberStore store.MemberStore, userStore store.UserStore) BugService {
	return &bugService{
		bugStore:       bugStore,
		workspaceStore: workspaceStore,
		memberStore:    memberStore,
		userStore:      userStore,
	}
}

// requireMembership loads the workspace's member list and checks the caller
// belongs to it.
func (s *bugService) requireMembership(ctx context.Context, workspaceID, callerID int64) ([]model.Member, error) {
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

func (s *bugService) List(ctx context.Context, workspaceID, callerID int64) ([]model.Bug, error) {
	if workspaceID == 0 {
		return nil, ErrWorkspaceIDRequired
	}
	if _, err := s.requireMembership(ctx, workspaceID, callerID); err != nil {
		return nil, err
	}

	bugs, err := s.bugStore.ListByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("listing bugs: %w", err)
	}
	if err := s.resolveUsers(ctx, bugs); err != nil {
		return nil, err
	}
	return bugs, nil
}

func (s *bugService) Create(ctx context.Context, input CreateBugInput, callerID int64) (*model.Bug, error) {
	if input.WorkspaceID == 0 {
		return nil, ErrWorkspaceIDRequired
	}
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, ErrBugTitleRequired
	}
	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return nil, ErrBugDescriptionRequired
	}
	input.ProjectTitle = strings.TrimSpace(input.ProjectTitle)
	if input.ProjectTitle == "" {
		return nil, ErrBugProjectTitleRequired
	}
	if input.Priority == "" {
		input.Priority = model.PriorityMedium
	}
	if !input.Priority.Valid() {
		return nil, ErrInvalidPriority
	}

	members, err := s.requireMembership(ctx, input.WorkspaceID, callerID)
	if err != nil {
		return nil, err
	}
	if input.AssigneeID != nil && !IsMember(members, *input.AssigneeID) {
		return nil, ErrAssigneeNotMember
	}

	bug := &model.Bug{
		ID:           id.New(),
		WorkspaceID:  input.WorkspaceID,
		Title:        input.Title,
		Description:  input.Description,
		Status:       model.StatusOpen,
		Priority:     input.Priority,
		ProjectTitle: input.ProjectTitle,
		GithubRepo:   input.GithubRepo,
		ReporterID:   callerID,
		AssigneeID:   input.AssigneeID,
	}
	if err := s.bugStore.Create(ctx, bug); err != nil {
		return nil, fmt.Errorf("creating bug: %w", err)
	}

	slog.InfoContext(ctx, "bug created",
		"bug_id", bug.ID,
		"workspace_id", bug.WorkspaceID,
		"reporter_id", callerID,
	)

	if err := s.resolveBug(ctx, bug); err != nil {
		return nil, err
	}
	return bug, nil
}

func (s *bugService) Update(ctx context.Context, bugID int64, input UpdateBugInput, callerID int64) (*model.Bug, error) {
	bug, err := s.bugStore.GetByID(ctx, bugID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrBugNotFound
		}
		return nil, fmt.Errorf("getting bug: %w", err)
	}

	members, err := s.requireMembership(ctx, bug.WorkspaceID, callerID)
	if err != nil {
		return nil, err
	}

	if input.Status != nil && *input.Status != bug.Status {
		if !input.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		if !CanChangeStatus(bug, callerID) {
			return nil, ErrNotAssignee
		}
		bug.Status = *input.Status
	}

	if input.AssigneeID != nil {
		if *input.AssigneeID == 0 {
			bug.AssigneeID = nil
		} else {
			if !IsMember(members, *input.AssigneeID) {
				return nil, ErrAssigneeNotMember
			}
			assigneeID := *input.AssigneeID
			bug.AssigneeID = &assigneeID
		}
	}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, ErrBugTitleRequired
		}
		bug.Title = title
	}
	if input.Description != nil {
		description := strings.TrimSpace(*input.Description)
		if description == "" {
			return nil, ErrBugDescriptionRequired
		}
		bug.Description = description
	}
	if input.Priority != nil {
		if !input.Priority.Valid() {
			return nil, ErrInvalidPriority
		}
		bug.Priority = *input.Priority
	}
	if input.ProjectTitle != nil {
		projectTitle := strings.TrimSpace(*input.ProjectTitle)
		if projectTitle == "" {
			return nil, ErrBugProjectTitleRequired
		}
		bug.ProjectTitle = projectTitle
	}
	if input.GithubRepo != nil {
		if *input.GithubRepo == "" {
			bug.GithubRepo = nil
		} else {
			repo := *input.GithubRepo
			bug.GithubRepo = &repo
		}
	}

	if err := s.bugStore.Update(ctx, bug); err != nil {
		return nil, fmt.Errorf("updating bug: %w", err)
	}

	slog.InfoContext(ctx, "bug updated",
		"bug_id", bug.ID,
		"workspace_id", bug.WorkspaceID,
		"updated_by", callerID,
	)

	if err := s.resolveBug(ctx, bug); err != nil {
		return nil, err
	}
	return bug, nil
}

func (s *bugService) Delete(ctx context.Context, bugID, callerID int64) error {
	bug, err := s.bugStore.GetByID(ctx, bugID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrBugNotFound
		}
		return fmt.Errorf("getting bug: %w", err)
	}

	if _, err := s.requireMembership(ctx, bug.WorkspaceID, callerID); err != nil {
		return err
	}
	if !IsAssigneeOrReporter(bug, callerID) {
		return ErrNotReporterOrAssignee
	}

	if err := s.bugStore.Delete(ctx, bugID); err != nil {
		return fmt.Errorf("deleting bug: %w", err)
	}

	slog.InfoContext(ctx, "bug deleted",
		"bug_id", bugID,
		"workspace_id", bug.WorkspaceID,
		"deleted_by", callerID,
	)

	return nil
}

// resolveUsers fills in the Reporter and Assignee summaries for a batch of
// bugs, reading each distinct user once.
func (s *bugService) resolveUsers(ctx context.Context, bugs []model.Bug) error {
	ids := make(map[int64]*model.UserRef)
	for i := range bugs {
		ids[bugs[i].ReporterID] = nil
		if bugs[i].AssigneeID != nil {
			ids[*bugs[i].AssigneeID] = nil
		}
	}

	for userID := range ids {
		user, err := s.userStore.GetByID(ctx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// A dangling reference reads as an absent user, not an error.
				continue
			}
			return fmt.Errorf("resolving user %d: %w", userID, err)
		}
		ids[userID] = &model.UserRef{ID: user.ID, Username: user.Username, Email: user.Email}
	}

	for i := range bugs {
		bugs[i].Reporter = ids[bugs[i].ReporterID]
		if bugs[i].AssigneeID != nil {
			bugs[i].Assignee = ids[*bugs[i].AssigneeID]
		}
	}
	return nil
}

func (s *bugService) resolveBug(ctx context.Context, bug *model.Bug) error {
	batch := []model.Bug{*bug}
	if err := s.resolveUsers(ctx, batch); err != nil {
		return err
	}
	bug.Reporter = batch[0].Reporter
	bug.Assignee = batch[0].Assignee
	return nil
}
