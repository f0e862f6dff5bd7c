package domain

import (
	"fmt"
	"time"
)

// WeekStartOf returns the Monday at local midnight of the ISO week containing t.
// Sunday belongs to the week that started six days earlier.
func WeekStartOf(t time.Time) time.Time {
	y, m, d := t.Date()
	// weekday from UTC so a local midnight skipped by DST cannot shift the day
	offset := (int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Weekday()) + 6) % 7
	start := time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
	if want := time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC); start.Day() != want.Day() {
		// midnight does not exist that day, the day starts at the end of the gap
		start = time.Date(y, m, d-offset, 1, 0, 0, 0, t.Location())
	}
	return start
}

// CanModify reports whether the week starting at weekStart is still mutable at
// now: the current week and every later week are. The comparison is done on
// calendar dates so time of day never matters.
func CanModify(weekStart, now time.Time) bool {
	return !calendarDate(weekStart).Before(calendarDate(WeekStartOf(now)))
}

// WeekEnd is the Sunday of the week starting at weekStart.
func WeekEnd(weekStart time.Time) time.Time {
	return weekStart.AddDate(0, 0, 6)
}

// ParseWeek parses a YYYY-MM-DD date in the local zone and normalizes it to its week start.
func ParseWeek(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, NewValidationError("invalid date %q, expected YYYY-MM-DD", value)
	}
	return WeekStartOf(t), nil
}

// ParseDate parses a stored YYYY-MM-DD value in the local zone.
func ParseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", value, err)
	}
	return t, nil
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
