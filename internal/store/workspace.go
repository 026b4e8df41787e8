package store

import (
	"context"
	"errors"

	"bugtrail.app/server/core/db/sqlc"
	"bugtrail.app/server/internal/model"
	"github.com/jackc/pgx/v5"
)

type workspaceStore struct {
	queries *sqlc.Queries
}

func newWorkspaceStore(queries *sqlc.Queries) WorkspaceStore {
	return &workspaceStore{queries: queries}
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspace(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) GetByCode(ctx context.Context, code string) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspaceByCode(ctx, code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		ID:          ws.ID,
		Name:        ws.Name,
		Description: ws.Description,
		Category:    string(ws.Category),
		Visibility:  string(ws.Visibility),
		Code:        ws.Code,
		CreatedBy:   ws.CreatedBy,
	})
	if err != nil {
		return err
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) ListByUser(ctx context.Context, userID int64) ([]model.Membership, error) {
	rows, err := s.queries.ListWorkspacesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	memberships := make([]model.Membership, len(rows))
	for i, row := range rows {
		memberships[i] = model.Membership{
			Workspace: *toWorkspaceModel(row.Workspace),
			Role:      model.Role(row.Role),
			JoinedAt:  row.JoinedAt.Time,
		}
	}
	return memberships, nil
}

func toWorkspaceModel(row sqlc.Workspace) *model.Workspace {
	return &model.Workspace{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Category:    model.Category(row.Category),
		Visibility:  model.Visibility(row.Visibility),
		Code:        row.Code,
		CreatedBy:   row.CreatedBy,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
