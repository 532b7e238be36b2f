package validation

import (
	"strings"
	"testing"

	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

func TestTaskValidator_ValidateTitle(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   ValidationErrorType
	}{
		{"Valid title", "Buy milk", false, ""},
		{"Empty title", "", true, ErrorTypeRequired},
		{"Whitespace only", "   ", true, ErrorTypeRequired},
		{"Tabs and newlines", "\t\n", true, ErrorTypeRequired},
		{"Very long title is fine by default", strings.Repeat("a", 5000), false, ""},
		{"Any characters allowed", "Task@#$% ✓", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateTitle(tt.input)

			if tt.expectError {
				if err == nil {
					t.Errorf("ValidateTitle(%q) expected error but got nil", tt.input)
					return
				}

				validationErr, ok := err.(*ValidationError)
				if !ok {
					t.Errorf("ValidateTitle(%q) expected ValidationError but got %T", tt.input, err)
					return
				}

				if validationErr.Errors[0].Type != tt.errorType {
					t.Errorf("ValidateTitle(%q) expected error type %v but got %v", tt.input, tt.errorType, validationErr.Errors[0].Type)
				}
				if validationErr.Errors[0].Field != "title" {
					t.Errorf("ValidateTitle(%q) expected field title but got %s", tt.input, validationErr.Errors[0].Field)
				}
			} else if err != nil {
				t.Errorf("ValidateTitle(%q) expected no error but got %v", tt.input, err)
			}
		})
	}
}

func TestTaskValidator_ConfiguredMaxLength(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 10
	validator := NewTaskValidatorWithConfig(cfg)

	if err := validator.ValidateTitle("  ten chars!  "); err != nil {
		t.Errorf("ValidateTitle() at limit after trimming: %v", err)
	}

	err := validator.ValidateTitle(strings.Repeat("x", 11))
	if err == nil {
		t.Fatal("ValidateTitle() expected length error")
	}
	if err.(*ValidationError).Errors[0].Type != ErrorTypeInvalidLength {
		t.Errorf("expected invalid length error, got %v", err)
	}
}

func TestTaskValidator_ValidatePatch(t *testing.T) {
	validator := NewTaskValidator()

	tests := []struct {
		name        string
		patch       domain.TaskPatch
		expectError bool
	}{
		{"Empty patch", domain.TaskPatch{}, false},
		{"Completed only", domain.TaskPatch{Completed: domain.BoolPtr(true)}, false},
		{"Empty description", domain.TaskPatch{Description: domain.StringPtr("")}, false},
		{"Valid title", domain.TaskPatch{Title: domain.StringPtr("New")}, false},
		{"Blank title", domain.TaskPatch{Title: domain.StringPtr("  ")}, true},
		{"Empty title", domain.TaskPatch{Title: domain.StringPtr("")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidatePatch(tt.patch)
			if (err != nil) != tt.expectError {
				t.Errorf("ValidatePatch() error = %v, expectError %v", err, tt.expectError)
			}
		})
	}
}

func TestTaskValidator_GetValidTitle(t *testing.T) {
	validator := NewTaskValidator()

	title, err := validator.GetValidTitle("  Buy milk  ")
	if err != nil {
		t.Fatalf("GetValidTitle() error = %v", err)
	}
	if title != "Buy milk" {
		t.Errorf("GetValidTitle() = %q, want %q", title, "Buy milk")
	}

	if _, err := validator.GetValidTitle(" "); err == nil {
		t.Error("GetValidTitle() expected error for blank title")
	}
}

func TestTaskValidator_NormalizePatch(t *testing.T) {
	validator := NewTaskValidator()
	original := domain.TaskPatch{Title: domain.StringPtr("  Trim me  "), Completed: domain.BoolPtr(false)}

	patch, err := validator.NormalizePatch(original)
	if err != nil {
		t.Fatalf("NormalizePatch() error = %v", err)
	}
	if *patch.Title != "Trim me" {
		t.Errorf("NormalizePatch() title = %q", *patch.Title)
	}
	if *original.Title != "  Trim me  " {
		t.Error("NormalizePatch() must not modify the caller's patch")
	}
	if patch.Completed == nil || *patch.Completed {
		t.Error("NormalizePatch() should keep other fields")
	}

	if _, err := validator.NormalizePatch(domain.TaskPatch{Title: domain.StringPtr("")}); err == nil {
		t.Error("NormalizePatch() expected error for empty title")
	}
}
