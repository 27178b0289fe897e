package domain

// TaskDraft is the unsaved edit buffer for a task's mutable fields.
// DueDate holds a YYYY-MM-DD string, or "" for no due date.
// Status is only submitted when editing; new tasks are always pending.
type TaskDraft struct {
	Title       string
	Description string
	DueDate     string
	Priority    Priority
	Status      Status
}

// NewDraft returns the empty draft used by the create form.
func NewDraft() TaskDraft {
	return TaskDraft{
		Priority: PriorityLow,
		Status:   StatusPending,
	}
}

// DraftFromTask seeds a draft from t. The due date loses any time-of-day so it
// can be shown and re-submitted unchanged.
func DraftFromTask(t Task) TaskDraft {
	priority := t.Priority
	if !priority.IsValid() {
		priority = PriorityLow
	}
	return TaskDraft{
		Title:       t.Title,
		Description: t.Description,
		DueDate:     t.DueDateString(),
		Priority:    priority,
		Status:      t.Status,
	}
}
