// Package http provides HTTP handlers and middleware for the reminder API.
//
// The router exposes the following endpoints:
//   - GET /reminders, POST /reminders: list active reminders and create new
//     ones, exchanging the `reminderDTO` payload defined in
//     reminder_handler.go. Creation responds immediately with the placeholder
//     category; the AI classifier fills in the real category asynchronously.
//   - GET /reminders/today: today's agenda, i.e. one-time reminders scheduled
//     for today plus recurring reminders repeating on today's weekday.
//   - PUT /reminders/{id}/active: toggles a reminder's active flag. Body:
//     {"active": bool}.
//   - DELETE /reminders/{id}: removes a reminder permanently.
//   - POST /summary: returns an AI-written summary of today's agenda.
//
// Request/response DTOs live alongside their respective handlers so tests and
// documentation share the same ground truth.
package http
