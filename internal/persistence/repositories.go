package persistence

import "context"

// ReminderRepository exposes the storage operations consumed by the
// application services and the dispatch engine.
type ReminderRepository interface {
	CreateReminder(ctx context.Context, reminder Reminder) error
	GetReminder(ctx context.Context, id string) (Reminder, error)
	// ListActiveReminders returns active reminders ordered by scheduled time
	// ascending. Inactive reminders are never returned.
	ListActiveReminders(ctx context.Context) ([]Reminder, error)
	UpdateReminderCategory(ctx context.Context, id, category string) error
	SetReminderActive(ctx context.Context, id string, active bool) error
	DeleteReminder(ctx context.Context, id string) error
}
