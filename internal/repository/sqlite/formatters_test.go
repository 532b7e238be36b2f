package sqlite

import (
	"testing"
	"time"
)

func TestFormatTimeForDB(t *testing.T) {
	zone := time.FixedZone("EST", -5*60*60)
	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{
			name:     "utc with nanoseconds",
			input:    time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC),
			expected: "2024-01-15T10:30:00.123456789Z",
		},
		{
			name:     "whole seconds",
			input:    time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
			expected: "2024-01-15T10:30:00Z",
		},
		{
			name:     "converted to utc",
			input:    time.Date(2024, 1, 15, 5, 30, 0, 0, zone),
			expected: "2024-01-15T10:30:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimeForDB(tt.input); got != tt.expected {
				t.Errorf("FormatTimeForDB() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseTimeFromDB(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 30, 0, 123456789, time.UTC)

	got, err := ParseTimeFromDB(FormatTimeForDB(want))
	if err != nil {
		t.Fatalf("ParseTimeFromDB() error = %v", err)
	}
	if got != want {
		t.Errorf("ParseTimeFromDB() = %v, want %v", got, want)
	}

	if _, err := ParseTimeFromDB("yesterday"); err == nil {
		t.Error("ParseTimeFromDB() expected error for malformed input")
	}
}

func TestFormatBoolForDB(t *testing.T) {
	if got := FormatBoolForDB(true); got != 1 {
		t.Errorf("FormatBoolForDB(true) = %d, want 1", got)
	}
	if got := FormatBoolForDB(false); got != 0 {
		t.Errorf("FormatBoolForDB(false) = %d, want 0", got)
	}
}
