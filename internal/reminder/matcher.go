package reminder

import "time"

// IsDue reports whether the reminder must fire at the given instant. It is a
// pure function with no shared state and may be called concurrently.
//
// Matching happens at minute resolution: the instant's hour and minute must
// equal the reminder's scheduled hour and minute exactly. One-time reminders
// additionally require the same calendar date; recurring reminders require the
// instant's weekday to be one of the configured repeat days. There is no
// tolerance window and no catch-up for minutes the process slept through.
func IsDue(r Reminder, now time.Time) bool {
	if !r.IsActive {
		return false
	}

	// Hour/minute and calendar comparisons are only meaningful within a
	// single location; evaluate the instant in the reminder's own zone.
	now = now.In(r.ScheduledAt.Location())

	if now.Hour() != r.ScheduledAt.Hour() || now.Minute() != r.ScheduledAt.Minute() {
		return false
	}

	if r.Recurring() {
		return r.RepeatsOn(FromTime(now.Weekday()))
	}

	return sameDate(now, r.ScheduledAt)
}

// DueToday reports whether the reminder belongs to the given day's agenda,
// either by exact date for one-time reminders or by weekday for recurring
// ones. Used by the daily summary, not by the tick engine.
func DueToday(r Reminder, now time.Time) bool {
	if !r.IsActive {
		return false
	}

	now = now.In(r.ScheduledAt.Location())
	if r.Recurring() {
		return r.RepeatsOn(FromTime(now.Weekday()))
	}
	return sameDate(now, r.ScheduledAt)
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
