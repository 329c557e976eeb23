package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/reminder-assistant/internal/persistence"
)

const reminderColumns = `id, content, scheduled_at, repeat_days, category, is_active, created_at`

// CreateReminder stores a new reminder row.
func (s *Store) CreateReminder(ctx context.Context, reminder persistence.Reminder) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO reminders (`+reminderColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		reminder.ID,
		reminder.Content,
		reminder.ScheduledAt,
		reminder.RepeatDays,
		reminder.Category,
		boolToInt(reminder.IsActive),
		reminder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("sqlite: create reminder %s: %w", reminder.ID, mapError(err))
	}
	return nil
}

// GetReminder retrieves a reminder by ID.
func (s *Store) GetReminder(ctx context.Context, id string) (persistence.Reminder, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE id = ?`, id)

	reminder, err := scanReminder(row)
	if err != nil {
		return persistence.Reminder{}, mapError(err)
	}
	return reminder, nil
}

// ListActiveReminders returns all active reminders ordered by scheduled time
// ascending. Stored timestamps are UTC RFC3339 text, so the lexicographic
// ordering is chronological.
func (s *Store) ListActiveReminders(ctx context.Context) ([]persistence.Reminder, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+reminderColumns+` FROM reminders WHERE is_active = 1 ORDER BY scheduled_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("sqlite: list active reminders: %w", mapError(err))
	}
	defer rows.Close()

	var reminders []persistence.Reminder
	for rows.Next() {
		reminder, err := scanReminder(rows)
		if err != nil {
			return nil, fmt.Errorf("sqlite: scan reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: list active reminders: %w", err)
	}
	return reminders, nil
}

// UpdateReminderCategory sets the category label on an existing reminder.
func (s *Store) UpdateReminderCategory(ctx context.Context, id, category string) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE reminders SET category = ? WHERE id = ?`, category, id)
	if err != nil {
		return fmt.Errorf("sqlite: update reminder category %s: %w", id, mapError(err))
	}
	return requireRowAffected(result)
}

// SetReminderActive toggles the active flag on an existing reminder.
func (s *Store) SetReminderActive(ctx context.Context, id string, active bool) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE reminders SET is_active = ? WHERE id = ?`, boolToInt(active), id)
	if err != nil {
		return fmt.Errorf("sqlite: set reminder active %s: %w", id, mapError(err))
	}
	return requireRowAffected(result)
}

// DeleteReminder removes a reminder by ID.
func (s *Store) DeleteReminder(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("sqlite: delete reminder %s: %w", id, mapError(err))
	}
	return requireRowAffected(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReminder(row rowScanner) (persistence.Reminder, error) {
	var reminder persistence.Reminder
	var active int
	err := row.Scan(
		&reminder.ID,
		&reminder.Content,
		&reminder.ScheduledAt,
		&reminder.RepeatDays,
		&reminder.Category,
		&active,
		&reminder.CreatedAt,
	)
	if err != nil {
		return persistence.Reminder{}, err
	}
	reminder.IsActive = active != 0
	return reminder, nil
}

func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return persistence.ErrNotFound
	}
	return nil
}

func boolToInt(value bool) int {
	if value {
		return 1
	}
	return 0
}
