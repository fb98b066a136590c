package services

import (
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05.999999"
)

var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	DateLayout,
}

// ParseTimestamp accepts ISO-8601 timestamps. Values with an offset are converted to
// UTC; values without one are taken as UTC wall-clock time.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC(), nil
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, invalid("Invalid timestamp: " + s)
}

// FormatTimestamp renders t without an offset, with microseconds only when non-zero.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, invalid("Invalid date format")
	}
	return t, nil
}

// dayAfter turns an inclusive calendar date into an exclusive upper bound.
func dayAfter(d time.Time) time.Time {
	return d.AddDate(0, 0, 1)
}
