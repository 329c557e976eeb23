package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/example/reminder-assistant/internal/persistence"
	"github.com/example/reminder-assistant/internal/testfixtures"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "reminders.db")
	store, err := Open(dsn)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return store
}

func TestMigrateIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("second migrate must be a no-op, got %v", err)
	}
}

func TestReminderRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := testfixtures.NewReminderFixture(
		testfixtures.WithReminderContent("交週報"),
		testfixtures.WithReminderCategory("行政"),
	).Record()

	if err := store.CreateReminder(ctx, record); err != nil {
		t.Fatalf("failed to create reminder: %v", err)
	}

	got, err := store.GetReminder(ctx, record.ID)
	if err != nil {
		t.Fatalf("failed to get reminder: %v", err)
	}
	if got != record {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, record)
	}
}

func TestCreateReminderRejectsDuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := testfixtures.NewReminderFixture().Record()
	if err := store.CreateReminder(ctx, record); err != nil {
		t.Fatalf("failed to create reminder: %v", err)
	}

	err := store.CreateReminder(ctx, record)
	if !errors.Is(err, persistence.ErrConstraintViolation) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
}

func TestGetReminderNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetReminder(context.Background(), "missing")
	if !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListActiveRemindersOrdersAndFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := testfixtures.ReferenceTime()
	later := testfixtures.NewReminderFixture(
		testfixtures.WithReminderID("later"),
		testfixtures.WithReminderScheduledAt(base.Add(2*time.Hour)),
	).Record()
	earlier := testfixtures.NewReminderFixture(
		testfixtures.WithReminderID("earlier"),
		testfixtures.WithReminderScheduledAt(base.Add(time.Hour)),
	).Record()
	inactive := testfixtures.NewReminderFixture(
		testfixtures.WithReminderID("inactive"),
		testfixtures.WithReminderScheduledAt(base),
		testfixtures.WithReminderInactive(),
	).Record()

	for _, record := range []persistence.Reminder{later, earlier, inactive} {
		if err := store.CreateReminder(ctx, record); err != nil {
			t.Fatalf("failed to create reminder %s: %v", record.ID, err)
		}
	}

	reminders, err := store.ListActiveReminders(ctx)
	if err != nil {
		t.Fatalf("failed to list reminders: %v", err)
	}
	if len(reminders) != 2 {
		t.Fatalf("expected 2 active reminders, got %d", len(reminders))
	}
	if reminders[0].ID != "earlier" || reminders[1].ID != "later" {
		t.Fatalf("expected scheduled-time ordering, got %s then %s", reminders[0].ID, reminders[1].ID)
	}
}

func TestUpdateReminderCategory(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := testfixtures.NewReminderFixture().Record()
	if err := store.CreateReminder(ctx, record); err != nil {
		t.Fatalf("failed to create reminder: %v", err)
	}

	if err := store.UpdateReminderCategory(ctx, record.ID, "研發"); err != nil {
		t.Fatalf("failed to update category: %v", err)
	}

	got, err := store.GetReminder(ctx, record.ID)
	if err != nil {
		t.Fatalf("failed to get reminder: %v", err)
	}
	if got.Category != "研發" {
		t.Fatalf("expected updated category, got %q", got.Category)
	}

	if err := store.UpdateReminderCategory(ctx, "missing", "研發"); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestSetReminderActive(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := testfixtures.NewReminderFixture().Record()
	if err := store.CreateReminder(ctx, record); err != nil {
		t.Fatalf("failed to create reminder: %v", err)
	}

	if err := store.SetReminderActive(ctx, record.ID, false); err != nil {
		t.Fatalf("failed to deactivate: %v", err)
	}

	reminders, err := store.ListActiveReminders(ctx)
	if err != nil {
		t.Fatalf("failed to list reminders: %v", err)
	}
	if len(reminders) != 0 {
		t.Fatalf("expected deactivated reminder to be excluded, got %d", len(reminders))
	}

	if err := store.SetReminderActive(ctx, record.ID, true); err != nil {
		t.Fatalf("failed to reactivate: %v", err)
	}
	got, err := store.GetReminder(ctx, record.ID)
	if err != nil {
		t.Fatalf("failed to get reminder: %v", err)
	}
	if !got.IsActive {
		t.Fatalf("expected reminder to be active again")
	}

	if err := store.SetReminderActive(ctx, "missing", true); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestDeleteReminder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := testfixtures.NewReminderFixture().Record()
	if err := store.CreateReminder(ctx, record); err != nil {
		t.Fatalf("failed to create reminder: %v", err)
	}

	if err := store.DeleteReminder(ctx, record.ID); err != nil {
		t.Fatalf("failed to delete reminder: %v", err)
	}
	if _, err := store.GetReminder(ctx, record.ID); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.DeleteReminder(ctx, record.ID); !errors.Is(err, persistence.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on double delete, got %v", err)
	}
}
