// Package testfixtures provides deterministic reminder fixtures and a
// controllable clock shared by the package test suites.
package testfixtures

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/example/reminder-assistant/internal/persistence"
	"github.com/example/reminder-assistant/internal/reminder"
)

var reminderCounter uint64

var referenceTime = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// ReferenceTime returns the canonical baseline timestamp used by fixtures.
func ReferenceTime() time.Time {
	return referenceTime
}

// ReminderFixture represents a deterministic reminder record that can be
// materialised for application, dispatch or persistence tests.
type ReminderFixture struct {
	ID          string
	Content     string
	ScheduledAt time.Time
	RepeatDays  []reminder.Weekday
	Category    string
	IsActive    bool
	CreatedAt   time.Time
}

// ReminderOption configures the generated reminder fixture.
type ReminderOption func(*ReminderFixture)

// NewReminderFixture returns a deterministic reminder fixture with optional
// overrides. Fixtures are active one-time reminders by default.
func NewReminderFixture(opts ...ReminderOption) ReminderFixture {
	idx := atomic.AddUint64(&reminderCounter, 1)
	id := fmt.Sprintf("reminder-%03d", idx)
	fixture := ReminderFixture{
		ID:          id,
		Content:     fmt.Sprintf("Reminder %03d", idx),
		ScheduledAt: referenceTime.Add(time.Duration(idx) * time.Minute),
		Category:    reminder.CategoryPending,
		IsActive:    true,
		CreatedAt:   referenceTime,
	}
	for _, opt := range opts {
		opt(&fixture)
	}
	return fixture
}

// WithReminderID overrides the generated reminder ID.
func WithReminderID(id string) ReminderOption {
	return func(f *ReminderFixture) {
		f.ID = id
	}
}

// WithReminderContent overrides the generated content.
func WithReminderContent(content string) ReminderOption {
	return func(f *ReminderFixture) {
		f.Content = content
	}
}

// WithReminderScheduledAt sets the scheduled instant.
func WithReminderScheduledAt(t time.Time) ReminderOption {
	return func(f *ReminderFixture) {
		f.ScheduledAt = t
	}
}

// WithReminderRepeatDays switches the fixture into weekday-recurring mode.
func WithReminderRepeatDays(days ...reminder.Weekday) ReminderOption {
	return func(f *ReminderFixture) {
		f.RepeatDays = append([]reminder.Weekday(nil), days...)
	}
}

// WithReminderCategory sets the category label.
func WithReminderCategory(category string) ReminderOption {
	return func(f *ReminderFixture) {
		f.Category = category
	}
}

// WithReminderInactive marks the fixture as deactivated.
func WithReminderInactive() ReminderOption {
	return func(f *ReminderFixture) {
		f.IsActive = false
	}
}

// WithReminderCreatedAt sets the creation timestamp.
func WithReminderCreatedAt(t time.Time) ReminderOption {
	return func(f *ReminderFixture) {
		f.CreatedAt = t
	}
}

// Domain returns the fixture as a reminder.Reminder value.
func (f ReminderFixture) Domain() reminder.Reminder {
	return reminder.Reminder{
		ID:          f.ID,
		Content:     f.Content,
		ScheduledAt: f.ScheduledAt,
		RepeatDays:  append([]reminder.Weekday(nil), f.RepeatDays...),
		Category:    f.Category,
		IsActive:    f.IsActive,
		CreatedAt:   f.CreatedAt,
	}
}

// Record returns the fixture in its stored persistence form.
func (f ReminderFixture) Record() persistence.Reminder {
	return reminder.ToRecord(f.Domain())
}
