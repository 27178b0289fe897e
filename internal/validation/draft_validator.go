package validation

import (
	"task-manager/internal/domain"
)

// DraftValidator checks a task draft before it is submitted
type DraftValidator struct {
	validator *Validator
}

// NewDraftValidator creates a draft validator with default limits
func NewDraftValidator() *DraftValidator {
	return &DraftValidator{validator: NewValidator()}
}

// NewDraftValidatorWith creates a draft validator sharing v's limits
func NewDraftValidatorWith(v *Validator) *DraftValidator {
	return &DraftValidator{validator: v}
}

// ValidateForCreate validates a draft from the create form. Status is ignored
// because new tasks always start pending.
func (dv *DraftValidator) ValidateForCreate(draft domain.TaskDraft) error {
	ve := NewValidationError()
	dv.validateCommon(ve, draft)
	return ve.ErrOrNil()
}

// ValidateForUpdate validates the target ID and a draft from the edit form
func (dv *DraftValidator) ValidateForUpdate(id string, draft domain.TaskDraft) error {
	ve := NewValidationError()
	if !dv.validator.IsNonEmptyString(id) {
		ve.AddRequiredError("id")
	}
	dv.validateCommon(ve, draft)
	if !draft.Status.IsValid() {
		ve.AddInvalidValueError("status", draft.Status, "must be pending or completed")
	}
	return ve.ErrOrNil()
}

// ValidateTaskID validates a task ID given on the command line
func (dv *DraftValidator) ValidateTaskID(id string) error {
	ve := NewValidationError()
	if !dv.validator.IsNonEmptyString(id) {
		ve.AddRequiredError("id")
	}
	return ve.ErrOrNil()
}

// Normalize returns draft with title and description trimmed
func (dv *DraftValidator) Normalize(draft domain.TaskDraft) domain.TaskDraft {
	draft.Title = dv.validator.TrimAndValidateString(draft.Title)
	draft.Description = dv.validator.TrimAndValidateString(draft.Description)
	draft.DueDate = dv.validator.TrimAndValidateString(draft.DueDate)
	return draft
}

func (dv *DraftValidator) validateCommon(ve *ValidationError, draft domain.TaskDraft) {
	v := dv.validator

	if !v.IsNonEmptyString(draft.Title) {
		ve.AddRequiredError("title")
	} else if max := v.TitleMaxLength(); !v.IsWithinLength(draft.Title, max) {
		ve.AddInvalidLengthError("title", draft.Title, max)
	}

	if !v.IsNonEmptyString(draft.Description) {
		ve.AddRequiredError("description")
	} else if max := v.DescriptionMaxLength(); !v.IsWithinLength(draft.Description, max) {
		ve.AddInvalidLengthError("description", draft.Description, max)
	}

	if due := v.TrimAndValidateString(draft.DueDate); due != "" && !v.IsValidDate(due) {
		ve.AddInvalidFormatError("due date", draft.DueDate, "YYYY-MM-DD")
	}

	if !draft.Priority.IsValid() {
		ve.AddInvalidValueError("priority", draft.Priority, "must be low, medium or high")
	}
}
