// Package application orchestrates validation, persistence and the AI
// collaborator for reminder operations.
package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/example/reminder-assistant/internal/assistant"
	"github.com/example/reminder-assistant/internal/persistence"
	"github.com/example/reminder-assistant/internal/reminder"
)

// Classifier assigns a category label to reminder content.
type Classifier interface {
	Classify(ctx context.Context, content string) (string, error)
}

// Summarizer produces a natural-language summary of today's reminders.
type Summarizer interface {
	Summarize(ctx context.Context, items []string) (string, error)
}

// CreateReminderInput carries the caller-supplied fields for a new reminder.
type CreateReminderInput struct {
	Content     string
	ScheduledAt time.Time
	// RepeatDays switches the reminder into weekday-recurring mode when
	// non-empty.
	RepeatDays []reminder.Weekday
}

// ReminderService implements the reminder lifecycle operations.
type ReminderService struct {
	reminders       persistence.ReminderRepository
	classifier      Classifier
	summarizer      Summarizer
	idGenerator     func() string
	now             func() time.Time
	classifyTimeout time.Duration
	logger          *slog.Logger
}

// NewReminderService wires dependencies for reminder operations. The
// classifier and summarizer are optional; when nil the corresponding AI
// features are disabled and reminders keep their placeholder category.
func NewReminderService(reminders persistence.ReminderRepository, classifier Classifier, summarizer Summarizer, idGenerator func() string, now func() time.Time, logger *slog.Logger) *ReminderService {
	if idGenerator == nil {
		idGenerator = func() string { return "" }
	}
	if now == nil {
		now = time.Now
	}
	return &ReminderService{
		reminders:       reminders,
		classifier:      classifier,
		summarizer:      summarizer,
		idGenerator:     idGenerator,
		now:             now,
		classifyTimeout: 15 * time.Second,
		logger:          defaultLogger(logger),
	}
}

// CreateReminder validates and persists a new reminder. The reminder is
// stored immediately with the placeholder category; classification runs in
// the background and updates the category once it completes, so creation
// never waits on the AI collaborator.
func (s *ReminderService) CreateReminder(ctx context.Context, input CreateReminderInput) (reminder.Reminder, error) {
	logger := serviceLogger(ctx, s.logger, "reminder", "create")

	vErr := &ValidationError{}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		vErr.add("content", "提醒內容不能為空")
	}
	if input.ScheduledAt.IsZero() {
		vErr.add("scheduled_at", "提醒時間不能為空")
	}
	for _, day := range input.RepeatDays {
		if !day.Valid() {
			vErr.add("repeat_days", "重複星期必須介於 0(星期一)到 6(星期日)之間")
			break
		}
	}
	if vErr.HasErrors() {
		return reminder.Reminder{}, vErr
	}

	item := reminder.Reminder{
		ID:          s.idGenerator(),
		Content:     content,
		ScheduledAt: input.ScheduledAt,
		RepeatDays:  append([]reminder.Weekday(nil), input.RepeatDays...),
		Category:    reminder.CategoryPending,
		IsActive:    true,
		CreatedAt:   s.now(),
	}

	if err := s.reminders.CreateReminder(ctx, reminder.ToRecord(item)); err != nil {
		return reminder.Reminder{}, fmt.Errorf("create reminder: %w", err)
	}

	logger.InfoContext(ctx, "reminder created", "reminder_id", item.ID, "recurring", item.Recurring())

	if s.classifier != nil {
		go s.classifyInBackground(ctx, item.ID, content)
	}

	return item, nil
}

// classifyInBackground runs off the request path. A classification failure
// assigns the fallback category; a storage failure only logs, since the
// reminder already exists with a usable placeholder.
func (s *ReminderService) classifyInBackground(parent context.Context, id, content string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(parent), s.classifyTimeout)
	defer cancel()

	logger := serviceLogger(ctx, s.logger, "reminder", "classify", "reminder_id", id)

	category, err := s.classifier.Classify(ctx, content)
	if err != nil {
		logger.WarnContext(ctx, "classification failed, using fallback category", "error", err)
		category = assistant.CategoryFallback
	}

	if err := s.reminders.UpdateReminderCategory(ctx, id, category); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			// The reminder was deleted while classification was running.
			return
		}
		logger.WarnContext(ctx, "failed to store category", "error", err)
		return
	}

	logger.InfoContext(ctx, "reminder classified", "category", category)
}

// ListReminders returns all active reminders ordered by scheduled time. A
// malformed stored row is skipped with a warning instead of failing the
// listing.
func (s *ReminderService) ListReminders(ctx context.Context) ([]reminder.Reminder, error) {
	logger := serviceLogger(ctx, s.logger, "reminder", "list")

	records, err := s.reminders.ListActiveReminders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}

	items := make([]reminder.Reminder, 0, len(records))
	for _, record := range records {
		item, err := reminder.FromRecord(record)
		if err != nil {
			logger.WarnContext(ctx, "skipping malformed reminder", "reminder_id", record.ID, "error", err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// ListToday returns the active reminders on today's agenda: one-time
// reminders scheduled for today plus recurring reminders repeating on today's
// weekday.
func (s *ReminderService) ListToday(ctx context.Context) ([]reminder.Reminder, error) {
	items, err := s.ListReminders(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := make([]reminder.Reminder, 0, len(items))
	for _, item := range items {
		if reminder.DueToday(item, now) {
			today = append(today, item)
		}
	}
	return today, nil
}

// SetReminderActive toggles a reminder's active flag. Deactivated reminders
// never fire and are excluded from listings until reactivated.
func (s *ReminderService) SetReminderActive(ctx context.Context, id string, active bool) error {
	logger := serviceLogger(ctx, s.logger, "reminder", "set_active", "reminder_id", id)

	if err := s.reminders.SetReminderActive(ctx, id, active); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("set reminder active: %w", err)
	}

	logger.InfoContext(ctx, "reminder active flag updated", "active", active)
	return nil
}

// DeleteReminder removes a reminder permanently.
func (s *ReminderService) DeleteReminder(ctx context.Context, id string) error {
	logger := serviceLogger(ctx, s.logger, "reminder", "delete", "reminder_id", id)

	if err := s.reminders.DeleteReminder(ctx, id); err != nil {
		if errors.Is(err, persistence.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("delete reminder: %w", err)
	}

	logger.InfoContext(ctx, "reminder deleted")
	return nil
}

// DailySummary produces an AI-written summary of today's agenda. It runs
// synchronously because the caller explicitly asked for it.
func (s *ReminderService) DailySummary(ctx context.Context) (string, error) {
	if s.summarizer == nil {
		return "", fmt.Errorf("daily summary: AI 助手未設定")
	}

	today, err := s.ListToday(ctx)
	if err != nil {
		return "", err
	}

	items := make([]string, 0, len(today))
	for _, item := range today {
		items = append(items, item.Content)
	}

	summary, err := s.summarizer.Summarize(ctx, items)
	if err != nil {
		return "", fmt.Errorf("daily summary: %w", err)
	}
	return summary, nil
}
