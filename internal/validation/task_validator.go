package validation

import (
	"task-tracker/internal/config"
	"task-tracker/internal/domain"
)

const fieldTitle = "title"

// TaskValidator provides validation for Task-related operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a task validator with default rules
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator honouring cfg.Validation
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateTitle validates a title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(title)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError(fieldTitle)
		return validationError
	}

	if max := tv.validator.TitleMaxLength(); !tv.validator.IsWithinMaxLength(trimmed, max) {
		validationError.AddInvalidLengthError(fieldTitle, trimmed, max)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidatePatch validates the supplied fields of a partial update. An absent
// title is fine; a supplied one must be non-blank.
func (tv *TaskValidator) ValidatePatch(patch domain.TaskPatch) error {
	if patch.Title == nil {
		return nil
	}
	return tv.ValidateTitle(*patch.Title)
}

// GetValidTitle returns the trimmed title if valid
func (tv *TaskValidator) GetValidTitle(title string) (string, error) {
	if err := tv.ValidateTitle(title); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(title), nil
}

// NormalizePatch validates patch and returns a copy whose title is trimmed
func (tv *TaskValidator) NormalizePatch(patch domain.TaskPatch) (domain.TaskPatch, error) {
	if err := tv.ValidatePatch(patch); err != nil {
		return domain.TaskPatch{}, err
	}
	if patch.Title != nil {
		patch.Title = domain.StringPtr(tv.validator.TrimAndValidateString(*patch.Title))
	}
	return patch, nil
}
