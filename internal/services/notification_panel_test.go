package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"task-manager/internal/domain"
)

func TestNotificationPanel_Toggle(t *testing.T) {
	p := NewNotificationPanel()
	assert.False(t, p.Visible())

	assert.True(t, p.Toggle())
	assert.True(t, p.Visible())
	assert.False(t, p.Toggle())
}

func TestNotificationPanel_Recompute(t *testing.T) {
	clock := NewFakeClock(time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	soon := &domain.Task{ID: "soon", DueDate: dueIn(clock.Now(), day)}
	later := &domain.Task{ID: "later", DueDate: dueIn(clock.Now(), 5*day)}
	p := NewNotificationPanel()
	p.Toggle()

	p.Recompute([]*domain.Task{soon, later}, clock.Now(), DefaultDueSoonWindowDays)
	assert.Equal(t, []string{"soon"}, ids(p.Items()))
	assert.Equal(t, 1, p.Count())

	clock.Advance(3 * day)
	p.Recompute([]*domain.Task{soon, later}, clock.Now(), DefaultDueSoonWindowDays)
	assert.Equal(t, []string{"later"}, ids(p.Items()))

	// visibility is independent of the items
	assert.True(t, p.Visible())
}

func TestNotificationPanel_EmptyByDefault(t *testing.T) {
	p := NewNotificationPanel()

	assert.Empty(t, p.Items())
	assert.Equal(t, 0, p.Count())
}
