package cli

import (
	"fmt"

	"task-tracker/internal/errors"
	"task-tracker/internal/validation"
)

// ErrorHandler provides centralized error handling for command handlers
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle wraps err with the failed operation and a user-friendly message.
// The original error stays reachable through errors.As.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if validationErr, ok := err.(*validation.ValidationError); ok {
		return &CommandError{Operation: operation, Message: validationErr.GetUserFriendlyMessage(), Err: err}
	}

	if appErr, ok := errors.AsAppError(err); ok {
		message := errors.GetUserMessage(err)
		if appErr.Type == errors.ErrorTypeInternal {
			// the server already hides internals; transport failures keep their cause
			message = appErr.Message
			if appErr.Cause != nil {
				message = fmt.Sprintf("%s: %v", appErr.Message, appErr.Cause)
			}
		}
		return &CommandError{Operation: operation, Message: message, Err: err}
	}

	return &CommandError{Operation: operation, Message: err.Error(), Err: err}
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// IsNotFoundError checks if an error is a not found error
func (eh *ErrorHandler) IsNotFoundError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeNotFound)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}

// CommandError is returned by commands; its text is what the user sees
type CommandError struct {
	Operation string
	Message   string
	Err       error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("failed to %s: %s", e.Operation, e.Message)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
