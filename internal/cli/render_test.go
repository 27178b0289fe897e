package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"task-manager/internal/config"
	"task-manager/internal/domain"
)

func plainDisplay() config.DisplayConfig {
	return config.DisplayConfig{DateFormat: "2006-01-02"}
}

func TestRenderer_DueDate(t *testing.T) {
	tests := []struct {
		name     string
		display  config.DisplayConfig
		task     *domain.Task
		expected string
		contains string
	}{
		{
			name:     "missing due date",
			display:  plainDisplay(),
			task:     &domain.Task{},
			expected: "N/A",
		},
		{
			name:     "formatted due date",
			display:  plainDisplay(),
			task:     &domain.Task{DueDate: daysFromNow(2)},
			expected: "2025-03-12",
		},
		{
			name:     "custom format",
			display:  config.DisplayConfig{DateFormat: "02 Jan"},
			task:     &domain.Task{DueDate: daysFromNow(2)},
			expected: "12 Mar",
		},
		{
			name:     "relative future date",
			display:  config.DisplayConfig{DateFormat: "2006-01-02", RelativeDates: true},
			task:     &domain.Task{DueDate: daysFromNow(2)},
			contains: "from now",
		},
		{
			name:     "relative past date",
			display:  config.DisplayConfig{DateFormat: "2006-01-02", RelativeDates: true},
			task:     &domain.Task{DueDate: daysFromNow(-3)},
			contains: "ago",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NewRenderer(tt.display, testNow).DueDate(tt.task)
			if tt.contains != "" {
				assert.Contains(t, result, tt.contains)
				return
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestRenderer_Badge(t *testing.T) {
	r := NewRenderer(plainDisplay(), testNow)

	assert.Equal(t, "🔔", r.Badge(0))
	assert.Equal(t, "🔔3", r.Badge(3))
}

func TestRenderer_TaskTables(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(plainDisplay(), testNow)
	pending := []*domain.Task{
		{ID: "t1", Title: "Pay rent", Description: "March", DueDate: daysFromNow(1), Priority: domain.PriorityHigh, Status: domain.StatusPending},
	}

	r.TaskTables(&buf, pending, nil, 1)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "Pending Tasks", lines[0])
	assert.Equal(t, []string{"ID", "TITLE", "DESCRIPTION", "DUE", "PRIORITY", "STATUS"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"t1", "Pay", "rent", "March", "2025-03-11", "high", "pending"}, strings.Fields(lines[2]))
	assert.Contains(t, buf.String(), "No completed tasks")
	assert.Equal(t, "🔔1", lines[len(lines)-1])
}

func TestRenderer_NotificationPanel(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(plainDisplay(), testNow)

	r.NotificationPanel(&buf, []*domain.Task{
		{Title: "Pay rent", DueDate: daysFromNow(1)},
		{Title: "Renew passport", DueDate: daysFromNow(3)},
	})

	assert.Equal(t, "Upcoming Tasks\nPay rent - Due on 2025-03-11\nRenew passport - Due on 2025-03-13\n", buf.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "one two", truncate("one\n  two", 10))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}
