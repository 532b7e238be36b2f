package sqlite

import (
	"time"
)

// FormatTimeForDB formats a time.Time as an RFC3339 string with nanoseconds in UTC,
// so values read back compare equal to the ones written.
func FormatTimeForDB(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTimeFromDB parses a timestamp written by FormatTimeForDB
func ParseTimeFromDB(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatBoolForDB stores booleans as 0/1 integers
func FormatBoolForDB(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
