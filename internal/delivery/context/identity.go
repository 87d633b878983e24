package context

import (
	"context"
)

const (
	// KeySubjectID is the key for storing the authenticated subject id in context.
	KeySubjectID ContextKey = "subject_id"

	// KeySubjectEmail is the key for storing the authenticated subject's email.
	KeySubjectEmail ContextKey = "subject_email"
)

// GetSubjectID extracts the authenticated subject id from context.Context.
// If not found, returns empty string.
func GetSubjectID(ctx context.Context) string {
	if id, ok := ctx.Value(KeySubjectID).(string); ok {
		return id
	}

	return ""
}

// WithSubjectID returns a new context carrying the authenticated subject id.
func WithSubjectID(ctx context.Context, subjectID string) context.Context {
	return context.WithValue(ctx, KeySubjectID, subjectID)
}

// GetSubjectEmail extracts the authenticated subject's email from context.Context.
func GetSubjectEmail(ctx context.Context) string {
	if email, ok := ctx.Value(KeySubjectEmail).(string); ok {
		return email
	}

	return ""
}

// WithSubjectEmail returns a new context carrying the subject's email claim.
func WithSubjectEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, KeySubjectEmail, email)
}
