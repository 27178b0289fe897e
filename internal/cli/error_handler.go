package cli

import (
	"fmt"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/validation"
)

// ErrorHandler turns errors from the task board into messages for the terminal
type ErrorHandler struct {
	logger *logging.Logger
}

// NewErrorHandler creates a new error handler. A nil logger discards output.
func NewErrorHandler(logger *logging.Logger) *ErrorHandler {
	if logger == nil {
		logger = logging.Discard()
	}
	return &ErrorHandler{logger: logger}
}

// Handle prefixes the user message with the failed operation. System errors
// are logged with their code before being reduced to a friendly message.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	eh.log(operation, err)

	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("failed to %s: %s", operation, validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("failed to %s: %s", operation, errors.GetUserMessage(err))
	}

	return fmt.Errorf("failed to %s: %w", operation, err)
}

// HandleSimple returns the user message alone, for errors that already name
// the operation
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	eh.log("", err)

	if validationErr, ok := err.(*validation.ValidationError); ok {
		return fmt.Errorf("%s", validationErr.GetUserFriendlyMessage())
	}

	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", errors.GetUserMessage(err))
	}

	return err
}

func (eh *ErrorHandler) log(operation string, err error) {
	if !errors.ShouldLogError(err) {
		return
	}
	eh.logger.Error("command failed",
		"operation", operation,
		"code", errors.GetErrorCode(err),
		"error", err,
	)
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

// IsAuthError reports whether the user needs to log in again
func (eh *ErrorHandler) IsAuthError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeAuthFailed)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
