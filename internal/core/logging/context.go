package logging

import "context"

type contextKey string

const (
	documentKey  contextKey = "document"
	controlIDKey contextKey = "control_id"
)

// WithDocument adds the page document path to the context.
func WithDocument(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, documentKey, path)
}

// WithControlID adds a control ID to the context.
func WithControlID(ctx context.Context, controlID string) context.Context {
	return context.WithValue(ctx, controlIDKey, controlID)
}

// GetDocument retrieves the document path from the context.
// Returns empty string if not present.
func GetDocument(ctx context.Context) string {
	if p, ok := ctx.Value(documentKey).(string); ok {
		return p
	}
	return ""
}

// GetControlID retrieves the control ID from the context.
// Returns empty string if not present.
func GetControlID(ctx context.Context) string {
	if id, ok := ctx.Value(controlIDKey).(string); ok {
		return id
	}
	return ""
}
