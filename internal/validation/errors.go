package validation

import (
	stderrors "errors"
	"fmt"
	"strings"

	"task-manager/internal/errors"
)

// ValidationErrorType represents the type of validation error
type ValidationErrorType string

const (
	ErrorTypeRequired      ValidationErrorType = "required"
	ErrorTypeInvalidFormat ValidationErrorType = "invalid_format"
	ErrorTypeInvalidLength ValidationErrorType = "invalid_length"
	ErrorTypeInvalidValue  ValidationErrorType = "invalid_value"
)

// FieldError represents a validation error for a specific form field
type FieldError struct {
	Field   string
	Type    ValidationErrorType
	Message string
	Value   interface{}
}

// Error implements the error interface for FieldError
func (fe *FieldError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", fe.Field, fe.Message)
}

// ValidationError collects every field error found in one form
type ValidationError struct {
	Errors []FieldError
}

// NewValidationError creates an empty ValidationError
func NewValidationError() *ValidationError {
	return &ValidationError{
		Errors: make([]FieldError, 0),
	}
}

// Error implements the error interface for ValidationError
func (ve *ValidationError) Error() string {
	switch len(ve.Errors) {
	case 0:
		return "validation error"
	case 1:
		return ve.Errors[0].Error()
	}

	messages := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("multiple validation errors: %s", strings.Join(messages, "; "))
}

// IsValidationError checks if err is, or wraps, a ValidationError
func IsValidationError(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}

// HasErrors returns true if the ValidationError has any errors
func (ve *ValidationError) HasErrors() bool {
	return len(ve.Errors) > 0
}

// ErrOrNil returns ve when it holds field errors and nil otherwise
func (ve *ValidationError) ErrOrNil() error {
	if ve.HasErrors() {
		return ve
	}
	return nil
}

// AddError adds a new field error
func (ve *ValidationError) AddError(field string, errorType ValidationErrorType, message string, value interface{}) {
	ve.Errors = append(ve.Errors, FieldError{
		Field:   field,
		Type:    errorType,
		Message: message,
		Value:   value,
	})
}

// AddRequiredError adds a required field error
func (ve *ValidationError) AddRequiredError(field string) {
	ve.AddError(field, ErrorTypeRequired, fmt.Sprintf("%s is required", field), nil)
}

// AddInvalidFormatError adds an invalid format error
func (ve *ValidationError) AddInvalidFormatError(field string, value interface{}, expectedFormat string) {
	message := fmt.Sprintf("%s has invalid format, expected: %s", field, expectedFormat)
	ve.AddError(field, ErrorTypeInvalidFormat, message, value)
}

// AddInvalidLengthError adds an error for a value longer than max characters
func (ve *ValidationError) AddInvalidLengthError(field string, value interface{}, max int) {
	message := fmt.Sprintf("%s must be at most %d characters long", field, max)
	ve.AddError(field, ErrorTypeInvalidLength, message, value)
}

// AddInvalidValueError adds an invalid value error
func (ve *ValidationError) AddInvalidValueError(field string, value interface{}, reason string) {
	message := fmt.Sprintf("%s has invalid value: %s", field, reason)
	ve.AddError(field, ErrorTypeInvalidValue, message, value)
}

// GetFieldErrors returns all errors for a specific field
func (ve *ValidationError) GetFieldErrors(field string) []FieldError {
	var fieldErrors []FieldError
	for _, err := range ve.Errors {
		if err.Field == field {
			fieldErrors = append(fieldErrors, err)
		}
	}
	return fieldErrors
}

// GetUserFriendlyMessage returns the messages formatted for a terminal
func (ve *ValidationError) GetUserFriendlyMessage() string {
	switch len(ve.Errors) {
	case 0:
		return "Input validation failed"
	case 1:
		return ve.Errors[0].Message
	}

	lines := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		lines = append(lines, "- "+err.Message)
	}
	return "Multiple validation errors occurred:\n" + strings.Join(lines, "\n")
}

// ToAppError wraps ve in a validation AppError carrying the friendly message
func (ve *ValidationError) ToAppError() *errors.AppError {
	appErr := errors.NewValidationError(ve.GetUserFriendlyMessage(), ve)
	fields := make([]string, 0, len(ve.Errors))
	for _, err := range ve.Errors {
		fields = append(fields, err.Field)
	}
	return appErr.WithContext("fields", fields)
}
