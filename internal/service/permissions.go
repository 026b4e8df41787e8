package service

import (
	"bugtrail.app/server/internal/model"
)

// Authorization predicates. Every permission decision in the workspace and bug
// services goes through these, operating on membership data resolved fresh from
// the store for the current request.

func FindMember(members []model.Member, userID int64) *model.Member {
	for i := range members {
		if members[i].UserID == userID {
			return &members[i]
		}
	}
	return nil
}

func IsMember(members []model.Member, userID int64) bool {
	return FindMember(members, userID) != nil
}

func IsAdmin(members []model.Member, userID int64) bool {
	m := FindMember(members, userID)
	return m != nil && m.Role == model.RoleAdmin
}

func AdminCount(members []model.Member) int {
	count := 0
	for _, m := range members {
		if m.Role == model.RoleAdmin {
			count++
		}
	}
	return count
}

func IsAssigneeOrReporter(bug *model.Bug, userID int64) bool {
	if bug.ReporterID == userID {
		return true
	}
	return bug.AssigneeID != nil && *bug.AssigneeID == userID
}

// CanChangeStatus reports whether userID may change the bug's status.
// While a bug is unassigned its reporter owns the status; once an assignee is
// set, only the assignee may change it.
func CanChangeStatus(bug *model.Bug, userID int64) bool {
	if bug.AssigneeID == nil {
		return bug.ReporterID == userID
	}
	return *bug.AssigneeID == userID
}
