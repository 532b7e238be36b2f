package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestNewValidationError(t *testing.T) {
	cause := errors.New("title is required")
	err := NewValidationError("invalid task", cause)

	if err.Type != ErrorTypeValidation {
		t.Errorf("NewValidationError type = %v, want %v", err.Type, ErrorTypeValidation)
	}
	if err.Message != "invalid task" {
		t.Errorf("NewValidationError message = %v, want %v", err.Message, "invalid task")
	}
	if err.Code != "VALIDATION_FAILED" {
		t.Errorf("NewValidationError code = %v, want %v", err.Code, "VALIDATION_FAILED")
	}
	if err.Cause != cause {
		t.Errorf("NewValidationError cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("task", "123")

	if err.Type != ErrorTypeNotFound {
		t.Errorf("NewNotFoundError type = %v, want %v", err.Type, ErrorTypeNotFound)
	}
	if err.Message != "task not found: 123" {
		t.Errorf("NewNotFoundError message = %v, want %v", err.Message, "task not found: 123")
	}
	if err.Code != "NOT_FOUND" {
		t.Errorf("NewNotFoundError code = %v, want %v", err.Code, "NOT_FOUND")
	}

	if err.Fields["identifier"] != "123" {
		t.Errorf("NewNotFoundError should set identifier context")
	}
}

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("database is locked")
	err := NewDatabaseError("insert task", cause)

	if err.Message != "database operation failed: insert task" {
		t.Errorf("NewDatabaseError message = %v", err.Message)
	}
	if err.Code != "DATABASE_ERROR" {
		t.Errorf("NewDatabaseError code = %v, want %v", err.Code, "DATABASE_ERROR")
	}
	if err.Fields["operation"] != "insert task" {
		t.Errorf("NewDatabaseError should set operation context")
	}
}

func TestNewConflictError(t *testing.T) {
	err := NewConflictError("task", "dup")

	if err.Type != ErrorTypeConflict {
		t.Errorf("NewConflictError type = %v, want %v", err.Type, ErrorTypeConflict)
	}
	if err.Message != "task already exists: dup" {
		t.Errorf("NewConflictError message = %v", err.Message)
	}
}

func TestIsErrorType(t *testing.T) {
	wrapped := fmt.Errorf("get task: %w", NewNotFoundError("task", "x"))

	if !IsErrorType(wrapped, ErrorTypeNotFound) {
		t.Error("IsErrorType should see through fmt.Errorf wrapping")
	}
	if !IsNotFound(wrapped) {
		t.Error("IsNotFound should be true for a wrapped not found error")
	}
	if IsValidation(wrapped) {
		t.Error("IsValidation should be false for a not found error")
	}
	if IsErrorType(errors.New("plain"), ErrorTypeNotFound) {
		t.Error("IsErrorType should be false for a plain error")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation", NewValidationError("title is required", nil), "title is required"},
		{"not found", NewNotFoundError("task", "1"), "task not found: 1"},
		{"database", NewDatabaseError("query", errors.New("boom")), "A database error occurred. Please try again."},
		{"internal", NewInternalError("panic", nil), "An unexpected error occurred. Please try again."},
		{"plain", errors.New("plain error"), "plain error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := GetErrorCode(NewConflictError("task", "1")); code != CodeConflict {
		t.Errorf("GetErrorCode() = %v, want %v", code, CodeConflict)
	}
	if code := GetErrorCode(errors.New("plain")); code != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %v, want UNKNOWN_ERROR", code)
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"validation", NewValidationError("bad", nil), http.StatusBadRequest},
		{"invalid input", NewInvalidInputError("body", "{", "not json"), http.StatusBadRequest},
		{"not found", NewNotFoundError("task", "1"), http.StatusNotFound},
		{"conflict", NewConflictError("task", "1"), http.StatusConflict},
		{"database", NewDatabaseError("q", nil), http.StatusInternalServerError},
		{"plain", errors.New("plain"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTTPStatus(tt.err); got != tt.expected {
				t.Errorf("HTTPStatus() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestFromHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		code     string
		expected ErrorType
	}{
		{"validation", http.StatusBadRequest, CodeValidation, ErrorTypeValidation},
		{"bad request", http.StatusBadRequest, CodeBadRequest, ErrorTypeInvalidInput},
		{"not found", http.StatusNotFound, CodeNotFound, ErrorTypeNotFound},
		{"conflict", http.StatusConflict, "", ErrorTypeConflict},
		{"server error", http.StatusInternalServerError, CodeInternal, ErrorTypeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromHTTPStatus(tt.status, tt.code, "message")
			if err.Type != tt.expected {
				t.Errorf("FromHTTPStatus() type = %v, want %v", err.Type, tt.expected)
			}
			if err.Message != "message" {
				t.Errorf("FromHTTPStatus() message = %v", err.Message)
			}
		})
	}
}

func TestShouldLogError(t *testing.T) {
	if ShouldLogError(NewNotFoundError("task", "1")) {
		t.Error("not found errors are user errors and should not be logged")
	}
	if ShouldLogError(NewValidationError("bad", nil)) {
		t.Error("validation errors are user errors and should not be logged")
	}
	if !ShouldLogError(NewDatabaseError("q", nil)) {
		t.Error("database errors should be logged")
	}
	if !ShouldLogError(errors.New("plain")) {
		t.Error("unknown errors should be logged")
	}
}
