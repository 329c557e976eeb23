package reminder

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Weekday identifies a day of the week in the reminder domain. Unlike
// time.Weekday the week starts on Monday, matching the stored digit format
// (0=Monday ... 6=Sunday).
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// FromTime converts a time.Weekday (Sunday=0) into the domain Weekday.
func FromTime(day time.Weekday) Weekday {
	return Weekday((int(day) + 6) % 7)
}

// Valid reports whether the weekday lies within the Monday..Sunday range.
func (d Weekday) Valid() bool {
	return d >= Monday && d <= Sunday
}

func (d Weekday) String() string {
	names := [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return names[d]
}

// ParseRepeatDays decodes the stored comma-joined digit form. The empty
// string decodes to nil, meaning a one-time reminder. Duplicates are removed
// and the result is sorted.
func ParseRepeatDays(value string) ([]Weekday, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	seen := make(map[Weekday]struct{})
	days := make([]Weekday, 0, 7)
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("reminder: invalid repeat day %q", part)
		}
		day := Weekday(n)
		if !day.Valid() {
			return nil, fmt.Errorf("reminder: repeat day %d out of range", n)
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days, nil
}

// FormatRepeatDays encodes weekdays into the comma-joined digit form used by
// the store. Nil or empty input encodes to the empty string.
func FormatRepeatDays(days []Weekday) string {
	if len(days) == 0 {
		return ""
	}

	sorted := make([]Weekday, 0, len(days))
	seen := make(map[Weekday]struct{}, len(days))
	for _, day := range days {
		if !day.Valid() {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		sorted = append(sorted, day)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	parts := make([]string, 0, len(sorted))
	for _, day := range sorted {
		parts = append(parts, strconv.Itoa(int(day)))
	}
	return strings.Join(parts, ",")
}
