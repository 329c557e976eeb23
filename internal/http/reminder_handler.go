package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/reminder-assistant/internal/application"
	"github.com/example/reminder-assistant/internal/reminder"
)

type reminderService interface {
	CreateReminder(ctx context.Context, input application.CreateReminderInput) (reminder.Reminder, error)
	ListReminders(ctx context.Context) ([]reminder.Reminder, error)
	ListToday(ctx context.Context) ([]reminder.Reminder, error)
	SetReminderActive(ctx context.Context, id string, active bool) error
	DeleteReminder(ctx context.Context, id string) error
	DailySummary(ctx context.Context) (string, error)
}

// ReminderHandler serves the reminder lifecycle and summary endpoints.
type ReminderHandler struct {
	service   reminderService
	responder responder
	logger    *slog.Logger
}

// NewReminderHandler wires the handler with its service and logger.
func NewReminderHandler(service reminderService, logger *slog.Logger) *ReminderHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReminderHandler{service: service, responder: newResponder(logger), logger: logger}
}

type reminderRequest struct {
	Content     string `json:"content"`
	ScheduledAt string `json:"scheduled_at"`
	RepeatDays  []int  `json:"repeat_days,omitempty"`
}

type reminderDTO struct {
	ID          string `json:"id"`
	Content     string `json:"content"`
	ScheduledAt string `json:"scheduled_at"`
	RepeatDays  []int  `json:"repeat_days,omitempty"`
	Category    string `json:"category"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at"`
}

type reminderListResponse struct {
	Reminders []reminderDTO `json:"reminders"`
}

type activeRequest struct {
	Active *bool `json:"active"`
}

type summaryResponse struct {
	Summary string `json:"summary"`
}

// Create handles POST /reminders.
func (h *ReminderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req reminderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	var scheduledAt time.Time
	if strings.TrimSpace(req.ScheduledAt) != "" {
		parsed, err := time.Parse(time.RFC3339, req.ScheduledAt)
		if err != nil {
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidTimeFormat)
			return
		}
		scheduledAt = parsed
	}

	days := make([]reminder.Weekday, 0, len(req.RepeatDays))
	for _, day := range req.RepeatDays {
		days = append(days, reminder.Weekday(day))
	}

	item, err := h.service.CreateReminder(r.Context(), application.CreateReminderInput{
		Content:     req.Content,
		ScheduledAt: scheduledAt,
		RepeatDays:  days,
	})
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toDTO(item))
}

// List handles GET /reminders.
func (h *ReminderHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	items, err := h.service.ListReminders(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toListResponse(items))
}

// Today handles GET /reminders/today.
func (h *ReminderHandler) Today(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	items, err := h.service.ListToday(r.Context())
	if err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toListResponse(items))
}

// SetActive handles PUT /reminders/{id}/active.
func (h *ReminderHandler) SetActive(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	reminderID, ok := ReminderIDFromContext(r.Context())
	if !ok || strings.TrimSpace(reminderID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidReminderID)
		return
	}

	var req activeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Active == nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errBadRequestBody)
		return
	}

	if err := h.service.SetReminderActive(r.Context(), reminderID, *req.Active); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Delete handles DELETE /reminders/{id}.
func (h *ReminderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	reminderID, ok := ReminderIDFromContext(r.Context())
	if !ok || strings.TrimSpace(reminderID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, errInvalidReminderID)
		return
	}

	if err := h.service.DeleteReminder(r.Context(), reminderID); err != nil {
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusNoContent, nil)
}

// Summary handles POST /summary.
func (h *ReminderHandler) Summary(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	logger := handlerLogger(r.Context(), h.logger, "reminder", "summary")

	summary, err := h.service.DailySummary(r.Context())
	if err != nil {
		logger.WarnContext(r.Context(), "daily summary failed", "error", err)
		h.responder.handleServiceError(r.Context(), w, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, summaryResponse{Summary: summary})
}

func toDTO(item reminder.Reminder) reminderDTO {
	var days []int
	for _, day := range item.RepeatDays {
		days = append(days, int(day))
	}

	dto := reminderDTO{
		ID:          item.ID,
		Content:     item.Content,
		ScheduledAt: item.ScheduledAt.Format(time.RFC3339),
		RepeatDays:  days,
		Category:    item.Category,
		IsActive:    item.IsActive,
	}
	if !item.CreatedAt.IsZero() {
		dto.CreatedAt = item.CreatedAt.Format(time.RFC3339)
	}
	return dto
}

func toListResponse(items []reminder.Reminder) reminderListResponse {
	dtos := make([]reminderDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, toDTO(item))
	}
	return reminderListResponse{Reminders: dtos}
}
