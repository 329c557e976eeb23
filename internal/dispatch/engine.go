// Package dispatch contains the notification dispatch engine: the per-tick
// matching pass, the occurrence dedup cache and the poll scheduler driving
// them.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/reminder-assistant/internal/persistence"
	"github.com/example/reminder-assistant/internal/reminder"
)

// ReminderSource loads the reminders evaluated on each tick.
type ReminderSource interface {
	ListActiveReminders(ctx context.Context) ([]persistence.Reminder, error)
}

// Notifier delivers a human-visible alert for one message. Implementations
// must return within a short bounded time; the engine treats failures as
// non-fatal and never retries beyond the current due minute.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

// Dispatcher runs the matching-and-dispatch pass over all active reminders.
// It never reads the wall clock itself; the instant under evaluation is
// always supplied by the caller, which keeps every tick deterministic.
type Dispatcher struct {
	source   ReminderSource
	notifier Notifier
	cache    *FiredCache
	logger   *slog.Logger
}

// NewDispatcher wires the engine's collaborators. A nil cache gets the
// default high-water mark; a nil logger falls back to slog.Default.
func NewDispatcher(source ReminderSource, notifier Notifier, cache *FiredCache, logger *slog.Logger) *Dispatcher {
	if cache == nil {
		cache = NewFiredCache(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		source:   source,
		notifier: notifier,
		cache:    cache,
		logger:   logger,
	}
}

// RunTick executes one full matching pass at the given instant.
//
// A store failure aborts only this tick; the next scheduled tick proceeds
// normally. A malformed persisted reminder is skipped with a warning. A
// notifier failure for one reminder is logged and leaves the occurrence
// unmarked, so it is retried on the next tick within the same due minute,
// and never prevents evaluation of the remaining reminders.
func (d *Dispatcher) RunTick(ctx context.Context, now time.Time) error {
	if d == nil || d.source == nil {
		return fmt.Errorf("dispatch: engine not configured")
	}

	records, err := d.source.ListActiveReminders(ctx)
	if err != nil {
		return fmt.Errorf("dispatch: load active reminders: %w", err)
	}

	for _, record := range records {
		item, err := reminder.FromRecord(record)
		if err != nil {
			d.logger.WarnContext(ctx, "skipping malformed reminder", "reminder_id", record.ID, "error", err)
			continue
		}

		if !reminder.IsDue(item, now) {
			continue
		}
		if d.cache.HasFired(item.ID, now) {
			continue
		}

		if d.notifier != nil {
			if err := d.notifier.Notify(ctx, item.Content); err != nil {
				d.logger.WarnContext(ctx, "failed to deliver notification", "reminder_id", item.ID, "error", err)
				continue
			}
		}

		d.cache.MarkFired(item.ID, now)
		d.logger.InfoContext(ctx, "reminder dispatched", "reminder_id", item.ID, "scheduled_at", item.ScheduledAt)
	}

	d.cache.MaybeEvict()
	return nil
}
