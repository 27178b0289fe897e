package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-manager/internal/domain"
)

func TestEvaluateDueSoon_Scenario(t *testing.T) {
	// Arrange
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	a := &domain.Task{ID: "a", Title: "A", DueDate: dueIn(now, 2*day)}
	b := &domain.Task{ID: "b", Title: "B", DueDate: dueIn(now, 10*day)}
	c := &domain.Task{ID: "c", Title: "C", DueDate: dueIn(now, -day)}

	// Act
	result := EvaluateDueSoon([]*domain.Task{a, b, c}, now, 3)

	// Assert
	assert.Equal(t, []*domain.Task{a}, result)
	assert.Same(t, a, result[0])
}

func TestEvaluateDueSoon_Bounds(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		due      *time.Time
		window   int
		included bool
	}{
		{name: "should skip tasks without a due date", due: nil, window: 3, included: false},
		{name: "should include a task due right now", due: dueIn(now, 0), window: 3, included: true},
		{name: "should skip a task due later today with a zero window", due: dueIn(now, 5*time.Hour), window: 0, included: false},
		{name: "should include a task due right now with a zero window", due: dueIn(now, 0), window: 0, included: true},
		{name: "should include a task just overdue with a zero window", due: dueIn(now, -5*time.Hour), window: 0, included: true},
		{name: "should include a task exactly at the window edge", due: dueIn(now, 3*day), window: 3, included: true},
		{name: "should round a partial day up past the window", due: dueIn(now, 3*day+time.Minute), window: 3, included: false},
		{name: "should include a task overdue by less than a day", due: dueIn(now, -5*time.Hour), window: 3, included: true},
		{name: "should skip a task overdue by a full day", due: dueIn(now, -day), window: 3, included: false},
		{name: "should skip everything ahead with a zero window", due: dueIn(now, day), window: 0, included: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks := []*domain.Task{{ID: "x", DueDate: tt.due}}

			result := EvaluateDueSoon(tasks, now, tt.window)

			assert.Equal(t, tt.included, len(result) == 1)
		})
	}
}

func TestEvaluateDueSoon_PureAndOrdered(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	tasks := []*domain.Task{
		{ID: "3", DueDate: dueIn(now, 3*day)},
		{ID: "none"},
		{ID: "1", DueDate: dueIn(now, day), Status: domain.StatusCompleted},
		{ID: "2", DueDate: dueIn(now, 2*day)},
	}
	before := ids(tasks)

	first := EvaluateDueSoon(tasks, now, DefaultDueSoonWindowDays)
	second := EvaluateDueSoon(tasks, now, DefaultDueSoonWindowDays)

	assert.Equal(t, []string{"3", "1", "2"}, ids(first))
	assert.Equal(t, first, second)
	assert.Equal(t, before, ids(tasks))
	for _, due := range first {
		diff := due.DueDate.Sub(now)
		assert.True(t, diff >= -day && diff <= DefaultDueSoonWindowDays*day)
	}
}

func TestEvaluateDueSoon_EmptyInput(t *testing.T) {
	result := EvaluateDueSoon(nil, time.Now(), 3)

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
