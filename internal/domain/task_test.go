package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTask(t *testing.T) {
	result := NewTask("Write report", "quarterly numbers")

	assert.Equal(t, Task{
		Title:       "Write report",
		Description: "quarterly numbers",
		Status:      StatusPending,
		Priority:    PriorityLow,
	}, result)
}

func TestStatus_IsValid(t *testing.T) {
	tests := []struct {
		status   Status
		expected bool
	}{
		{StatusPending, true},
		{StatusCompleted, true},
		{Status("done"), false},
		{Status(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.IsValid())
		})
	}
}

func TestNormalizePriority(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Priority
	}{
		{name: "low", input: "low", expected: PriorityLow},
		{name: "upper case", input: "HIGH", expected: PriorityHigh},
		{name: "padded", input: " medium ", expected: PriorityMedium},
		{name: "empty falls back to low", input: "", expected: PriorityLow},
		{name: "unknown falls back to low", input: "urgent", expected: PriorityLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePriority(tt.input))
		})
	}
}

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		isNil    bool
		wantErr  bool
	}{
		{name: "empty", input: "", isNil: true},
		{name: "calendar date", input: "2025-03-14", expected: "2025-03-14"},
		{name: "utc timestamp", input: "2025-03-14T00:00:00.000Z", expected: "2025-03-14"},
		{name: "offset timestamp keeps its own date", input: "2025-03-14T23:30:00+02:00", expected: "2025-03-14"},
		{name: "garbage", input: "next tuesday", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseDueDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.isNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.expected, DateOnly(*result))
		})
	}
}

func TestTask_DueDateString(t *testing.T) {
	due := time.Date(2025, 3, 14, 17, 45, 0, 0, time.UTC)

	assert.Equal(t, "2025-03-14", Task{DueDate: &due}.DueDateString())
	assert.Equal(t, "", Task{}.DueDateString())
}

func TestTask_IsCompleted(t *testing.T) {
	assert.True(t, Task{Status: StatusCompleted}.IsCompleted())
	assert.False(t, Task{Status: StatusPending}.IsCompleted())
}

func TestDraftFromTask(t *testing.T) {
	due := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		task     Task
		expected TaskDraft
	}{
		{
			name: "strips time of day from due date",
			task: Task{ID: "t1", Title: "A", Description: "a", Status: StatusCompleted, DueDate: &due, Priority: PriorityHigh},
			expected: TaskDraft{
				Title: "A", Description: "a", DueDate: "2025-03-14", Priority: PriorityHigh, Status: StatusCompleted,
			},
		},
		{
			name: "missing priority defaults to low",
			task: Task{ID: "t2", Title: "B", Description: "b", Status: StatusPending},
			expected: TaskDraft{
				Title: "B", Description: "b", DueDate: "", Priority: PriorityLow, Status: StatusPending,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DraftFromTask(tt.task))
		})
	}
}

func TestNewDraft(t *testing.T) {
	draft := NewDraft()

	assert.Empty(t, draft.Title)
	assert.Empty(t, draft.DueDate)
	assert.Equal(t, PriorityLow, draft.Priority)
	assert.Equal(t, StatusPending, draft.Status)
}
