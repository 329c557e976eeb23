package http

import (
	"context"
	"log/slog"

	"github.com/example/reminder-assistant/internal/logging"
)

type contextKey string

const reminderIDContextKey contextKey = "reminder_id"

// ContextWithReminderID injects the reminder identifier resolved from the request path.
func ContextWithReminderID(ctx context.Context, reminderID string) context.Context {
	return context.WithValue(ctx, reminderIDContextKey, reminderID)
}

// ReminderIDFromContext extracts a reminder identifier previously associated with the context.
func ReminderIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(reminderIDContextKey).(string)
	return id, ok
}

// ContextWithLogger attaches a request-scoped logger to the context.
func ContextWithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logging.ContextWithLogger(ctx, logger)
}

// LoggerFromContext extracts the request-scoped logger if present.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}
