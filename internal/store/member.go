package store

import (
	"context"

	"bugtrail.app/server/core/db/sqlc"
	"bugtrail.app/server/internal/model"
)

type memberStore struct {
	queries *sqlc.Queries
}

func newMemberStore(queries *sqlc.Queries) MemberStore {
	return &memberStore{queries: queries}
}

func (s *memberStore) Add(ctx context.Context, member *model.Member) error {
	row, err := s.queries.AddWorkspaceMember(ctx, sqlc.AddWorkspaceMemberParams{
		WorkspaceID: member.WorkspaceID,
		UserID:      member.UserID,
		Role:        string(member.Role),
	})
	if err != nil {
		return err
	}
	member.JoinedAt = row.JoinedAt.Time
	return nil
}

func (s *memberStore) List(ctx context.Context, workspaceID int64) ([]model.Member, error) {
	rows, err := s.queries.ListWorkspaceMembers(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	members := make([]model.Member, len(rows))
	for i, row := range rows {
		members[i] = model.Member{
			WorkspaceID: row.WorkspaceID,
			UserID:      row.UserID,
			Role:        model.Role(row.Role),
			JoinedAt:    row.JoinedAt.Time,
			Username:    row.Username,
			Email:       row.Email,
		}
	}
	return members, nil
}

func (s *memberStore) Remove(ctx context.Context, workspaceID, userID int64) error {
	affected, err := s.queries.RemoveWorkspaceMember(ctx, sqlc.RemoveWorkspaceMemberParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
