package validation

import (
	"testing"

	"task-tracker/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with spaces", "hello world", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsWithinMaxLength(t *testing.T) {
	validator := NewValidator()

	tests := []struct {
		name     string
		input    string
		max      int
		expected bool
	}{
		{"Unlimited", "anything at all", 0, true},
		{"Negative means unlimited", "anything", -3, true},
		{"At limit", "abcde", 5, true},
		{"Over limit", "abcdef", 5, false},
		{"Counts runes not bytes", "héllo", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsWithinMaxLength(tt.input, tt.max); got != tt.expected {
				t.Errorf("IsWithinMaxLength(%q, %d) = %v, expected %v", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestValidator_TitleMaxLength(t *testing.T) {
	if got := NewValidator().TitleMaxLength(); got != 0 {
		t.Errorf("TitleMaxLength() without config = %d, want 0", got)
	}

	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 80
	if got := NewValidatorWithConfig(cfg).TitleMaxLength(); got != 80 {
		t.Errorf("TitleMaxLength() = %d, want 80", got)
	}
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	if got := NewValidator().TrimAndValidateString("  Buy milk \n"); got != "Buy milk" {
		t.Errorf("TrimAndValidateString() = %q", got)
	}
}
