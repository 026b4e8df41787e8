package store

import (
	"context"
	"errors"

	"bugtrail.app/server/core/db/sqlc"
	"bugtrail.app/server/internal/model"
	"github.com/jackc/pgx/v5"
)

type bugStore struct {
	queries *sqlc.Queries
}

func newBugStore(queries *sqlc.Queries) BugStore {
	return &bugStore{queries: queries}
}

func (s *bugStore) GetByID(ctx context.Context, id int64) (*model.Bug, error) {
	row, err := s.queries.GetBug(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toBugModel(row), nil
}

func (s *bugStore) Create(ctx context.Context, bug *model.Bug) error {
	row, err := s.queries.CreateBug(ctx, sqlc.CreateBugParams{
		ID:           bug.ID,
		WorkspaceID:  bug.WorkspaceID,
		Title:        bug.Title,
		Description:  bug.Description,
		Status:       string(bug.Status),
		Priority:     string(bug.Priority),
		ProjectTitle: bug.ProjectTitle,
		GithubRepo:   bug.GithubRepo,
		ReporterID:   bug.ReporterID,
		AssigneeID:   bug.AssigneeID,
	})
	if err != nil {
		return err
	}
	*bug = *toBugModel(row)
	return nil
}

func (s *bugStore) Update(ctx context.Context, bug *model.Bug) error {
	row, err := s.queries.UpdateBug(ctx, sqlc.UpdateBugParams{
		ID:           bug.ID,
		Title:        bug.Title,
		Description:  bug.Description,
		Status:       string(bug.Status),
		Priority:     string(bug.Priority),
		ProjectTitle: bug.ProjectTitle,
		GithubRepo:   bug.GithubRepo,
		AssigneeID:   bug.AssigneeID,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	*bug = *toBugModel(row)
	return nil
}

func (s *bugStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteBug(ctx, id)
}

func (s *bugStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Bug, error) {
	rows, err := s.queries.ListBugsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	bugs := make([]model.Bug, len(rows))
	for i, row := range rows {
		bugs[i] = *toBugModel(row)
	}
	return bugs, nil
}

func toBugModel(row sqlc.Bug) *model.Bug {
	return &model.Bug{
		ID:           row.ID,
		WorkspaceID:  row.WorkspaceID,
		Title:        row.Title,
		Description:  row.Description,
		Status:       model.Status(row.Status),
		Priority:     model.Priority(row.Priority),
		ProjectTitle: row.ProjectTitle,
		GithubRepo:   row.GithubRepo,
		ReporterID:   row.ReporterID,
		AssigneeID:   row.AssigneeID,
		CreatedAt:    row.CreatedAt.Time,
		UpdatedAt:    row.UpdatedAt.Time,
	}
}
