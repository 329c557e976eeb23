package dispatch

import (
	"fmt"
	"testing"
	"time"
)

func TestFiredCacheSuppressesSameMinute(t *testing.T) {
	cache := NewFiredCache(10)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	if cache.HasFired("reminder-1", now) {
		t.Fatalf("expected empty cache to report not fired")
	}

	cache.MarkFired("reminder-1", now)
	if !cache.HasFired("reminder-1", now) {
		t.Fatalf("expected occurrence to be marked fired")
	}

	// Later polls within the same minute hit the same key.
	if !cache.HasFired("reminder-1", now.Add(42*time.Second)) {
		t.Fatalf("expected same-minute poll to be suppressed")
	}
}

func TestFiredCacheDistinguishesOccurrences(t *testing.T) {
	cache := NewFiredCache(10)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	cache.MarkFired("reminder-1", now)

	if cache.HasFired("reminder-2", now) {
		t.Fatalf("expected different reminder to be unaffected")
	}
	if cache.HasFired("reminder-1", now.Add(time.Minute)) {
		t.Fatalf("expected next minute to be a distinct occurrence")
	}
	if cache.HasFired("reminder-1", now.AddDate(0, 0, 7)) {
		t.Fatalf("expected next week to be a distinct occurrence")
	}
}

func TestFiredCacheEvictsAboveHighWaterMark(t *testing.T) {
	cache := NewFiredCache(1000)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 1001; i++ {
		cache.MarkFired(fmt.Sprintf("reminder-%d", i), now)
	}
	if cache.Len() != 1001 {
		t.Fatalf("expected 1001 entries before eviction, got %d", cache.Len())
	}

	cache.MaybeEvict()
	if cache.Len() != 0 {
		t.Fatalf("expected full clear above high-water mark, got %d entries", cache.Len())
	}

	// A just-cleared key reads as not fired: the documented re-fire risk,
	// not a crash.
	if cache.HasFired("reminder-0", now) {
		t.Fatalf("expected cleared key to report not fired")
	}
}

func TestFiredCacheKeepsEntriesBelowHighWaterMark(t *testing.T) {
	cache := NewFiredCache(1000)
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 1000; i++ {
		cache.MarkFired(fmt.Sprintf("reminder-%d", i), now)
	}

	cache.MaybeEvict()
	if cache.Len() != 1000 {
		t.Fatalf("expected eviction only above the mark, got %d entries", cache.Len())
	}
	if !cache.HasFired("reminder-0", now) {
		t.Fatalf("expected entries to survive below the mark")
	}
}
