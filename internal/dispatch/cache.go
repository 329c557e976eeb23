package dispatch

import (
	"strconv"
	"strings"
	"sync"
	"time"
)

// defaultMaxEntries is the high-water mark above which the cache is cleared.
const defaultMaxEntries = 1000

// FiredCache tracks which (reminder, occurrence) pairs have already been
// notified so that a reminder polled several times within its due minute
// fires only once. Contents are process-local and always empty at startup;
// a restart inside an open occurrence window may therefore re-notify.
type FiredCache struct {
	mu         sync.Mutex
	maxEntries int
	fired      map[string]struct{}
}

// NewFiredCache returns a cache that clears itself entirely once the entry
// count exceeds maxEntries. Values <= 0 select the default high-water mark.
func NewFiredCache(maxEntries int) *FiredCache {
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &FiredCache{
		maxEntries: maxEntries,
		fired:      make(map[string]struct{}),
	}
}

// HasFired reports whether the occurrence derived from the reminder id and
// the instant's day/hour/minute has already been dispatched.
func (c *FiredCache) HasFired(reminderID string, now time.Time) bool {
	if c == nil {
		return false
	}
	key := occurrenceKey(reminderID, now)

	c.mu.Lock()
	_, ok := c.fired[key]
	c.mu.Unlock()
	return ok
}

// MarkFired records the occurrence as dispatched.
func (c *FiredCache) MarkFired(reminderID string, now time.Time) {
	if c == nil {
		return
	}
	key := occurrenceKey(reminderID, now)

	c.mu.Lock()
	c.fired[key] = struct{}{}
	c.mu.Unlock()
}

// MaybeEvict clears the whole cache once the entry count exceeds the
// high-water mark. The blunt full clear keeps memory bounded over unbounded
// uptime; a reminder still inside its due minute right after a clear may fire
// a second time, which is an accepted imprecision rather than a silent
// correctness violation. Callers invoke this only after a full tick, so an
// entry inserted during the tick is never evicted within that same tick.
func (c *FiredCache) MaybeEvict() {
	if c == nil {
		return
	}

	c.mu.Lock()
	if len(c.fired) > c.maxEntries {
		c.fired = make(map[string]struct{})
	}
	c.mu.Unlock()
}

// Len returns the current entry count.
func (c *FiredCache) Len() int {
	if c == nil {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.fired)
}

// occurrenceKey builds the dedup key at the matcher's minute resolution.
func occurrenceKey(reminderID string, now time.Time) string {
	builder := strings.Builder{}
	builder.WriteString(reminderID)
	builder.WriteString("|")
	builder.WriteString(strconv.Itoa(now.Day()))
	builder.WriteString("|")
	builder.WriteString(strconv.Itoa(now.Hour()))
	builder.WriteString("|")
	builder.WriteString(strconv.Itoa(now.Minute()))
	return builder.String()
}
