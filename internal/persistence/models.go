package persistence

// Reminder represents a reminder row exactly as persisted. Temporal fields are
// kept in their stored text form so that a single malformed row can be
// reported and skipped by callers instead of failing a whole listing.
type Reminder struct {
	ID          string
	Content     string
	ScheduledAt string
	RepeatDays  string
	Category    string
	IsActive    bool
	CreatedAt   string
}
