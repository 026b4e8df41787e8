package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment, so request-scoped identifiers (user_id,
// workspace_id, bug_id) show up on every log statement without being passed around.
type LogFields struct {
	UserID      *int64  // Authenticated user ID
	WorkspaceID *int64  // Workspace the request operates on
	BugID       *int64  // Bug the request operates on
	Component   string  // Component name, e.g. "bugtrail.service.workspace"
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, override LogFields) LogFields {
	result := existing

	if override.UserID != nil {
		result.UserID = override.UserID
	}
	if override.WorkspaceID != nil {
		result.WorkspaceID = override.WorkspaceID
	}
	if override.BugID != nil {
		result.BugID = override.BugID
	}
	if override.Component != "" {
		result.Component = override.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{UserID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}
