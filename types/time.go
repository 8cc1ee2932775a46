package types

import (
	"errors"
	"time"
)

var dateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05",
	"2006/01/02",
	"20060102",
}

// ErrUnparsableTime is returned when no known layout matches.
var ErrUnparsableTime = errors.New("can't parse string as time")

// ParseDate parses a date or timestamp in UTC, trying the known layouts in order.
func ParseDate(str string) (time.Time, error) {
	for _, format := range dateFormats {
		if t, err := time.ParseInLocation(format, str, time.UTC); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrUnparsableTime
}

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDay adjusts t to the last nanosecond of its UTC day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}
