package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar-date format used for due dates on the wire and in drafts.
const DateLayout = "2006-01-02"

// Status is the completion state of a task.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// Priority ranks a task.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// IsValid reports whether p is a known priority.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// NormalizePriority lower-cases p and falls back to low for anything unknown.
func NormalizePriority(p string) Priority {
	priority := Priority(strings.ToLower(strings.TrimSpace(p)))
	if !priority.IsValid() {
		return PriorityLow
	}
	return priority
}

// Task represents a task in the domain model.
// The ID is assigned by the task service and never changes.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      Status
	DueDate     *time.Time
	Priority    Priority
}

// NewTask creates a pending, low-priority task with the given title and description.
func NewTask(title, description string) Task {
	return Task{
		Title:       title,
		Description: description,
		Status:      StatusPending,
		Priority:    PriorityLow,
	}
}

// IsCompleted reports whether the task belongs to the completed partition.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// HasDueDate reports whether a due date is set.
func (t Task) HasDueDate() bool {
	return t.DueDate != nil
}

// DueDateString returns the due date as YYYY-MM-DD, or "" when unset.
func (t Task) DueDateString() string {
	if t.DueDate == nil {
		return ""
	}
	return DateOnly(*t.DueDate)
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// DateOnly drops the time-of-day from t, keeping the calendar date in t's own location.
func DateOnly(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDueDate accepts either a calendar date or an RFC3339 timestamp.
// An empty string yields a nil date.
func ParseDueDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
