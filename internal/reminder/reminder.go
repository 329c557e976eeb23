// Package reminder holds the reminder domain model and the pure occurrence
// matching logic shared by the dispatch engine and the application services.
package reminder

import (
	"fmt"
	"time"

	"github.com/example/reminder-assistant/internal/persistence"
)

// CategoryPending is the placeholder assigned at creation until the
// asynchronous classifier delivers a real category.
const CategoryPending = "未分類"

// Reminder is the decoded domain form of a persisted reminder.
type Reminder struct {
	ID      string
	Content string
	// ScheduledAt is the exact firing instant for one-time reminders. For
	// recurring reminders only its time-of-day component participates in
	// matching; the date component is creation metadata.
	ScheduledAt time.Time
	// RepeatDays switches the reminder into weekday-recurring mode when
	// non-empty.
	RepeatDays []Weekday
	Category   string
	IsActive   bool
	CreatedAt  time.Time
}

// Recurring reports whether the reminder fires on configured weekdays rather
// than on a single calendar date.
func (r Reminder) Recurring() bool {
	return len(r.RepeatDays) > 0
}

// RepeatsOn reports whether the reminder recurs on the given weekday.
func (r Reminder) RepeatsOn(day Weekday) bool {
	for _, d := range r.RepeatDays {
		if d == day {
			return true
		}
	}
	return false
}

// FromRecord decodes a stored record into the domain form. An error marks the
// single record as malformed; callers are expected to skip it with a warning
// rather than abort the surrounding operation.
func FromRecord(record persistence.Reminder) (Reminder, error) {
	scheduledAt, err := time.Parse(time.RFC3339, record.ScheduledAt)
	if err != nil {
		return Reminder{}, fmt.Errorf("reminder: invalid scheduled time %q: %w", record.ScheduledAt, err)
	}

	days, err := ParseRepeatDays(record.RepeatDays)
	if err != nil {
		return Reminder{}, err
	}

	var createdAt time.Time
	if record.CreatedAt != "" {
		createdAt, err = time.Parse(time.RFC3339, record.CreatedAt)
		if err != nil {
			return Reminder{}, fmt.Errorf("reminder: invalid creation time %q: %w", record.CreatedAt, err)
		}
	}

	return Reminder{
		ID:          record.ID,
		Content:     record.Content,
		ScheduledAt: scheduledAt,
		RepeatDays:  days,
		Category:    record.Category,
		IsActive:    record.IsActive,
		CreatedAt:   createdAt,
	}, nil
}

// ToRecord encodes the domain form for storage. Timestamps are normalized to
// UTC so that the stored RFC3339 text sorts chronologically.
func ToRecord(r Reminder) persistence.Reminder {
	return persistence.Reminder{
		ID:          r.ID,
		Content:     r.Content,
		ScheduledAt: r.ScheduledAt.UTC().Format(time.RFC3339),
		RepeatDays:  FormatRepeatDays(r.RepeatDays),
		Category:    r.Category,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt.UTC().Format(time.RFC3339),
	}
}
