package services

import (
	"time"

	"task-manager/internal/domain"
)

// NotificationPanel is the bell dropdown: whether it is open and which tasks it lists
type NotificationPanel struct {
	visible bool
	items   []*domain.Task
}

func NewNotificationPanel() *NotificationPanel {
	return &NotificationPanel{items: []*domain.Task{}}
}

// Toggle opens or closes the panel and returns the new visibility
func (p *NotificationPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

func (p *NotificationPanel) Visible() bool { return p.visible }

// Items returns the due-soon tasks from the last Recompute
func (p *NotificationPanel) Items() []*domain.Task { return p.items }

// Count is the number shown on the bell badge
func (p *NotificationPanel) Count() int { return len(p.items) }

// Recompute refreshes the item list. Visibility is left alone.
func (p *NotificationPanel) Recompute(tasks []*domain.Task, now time.Time, windowDays int) {
	p.items = EvaluateDueSoon(tasks, now, windowDays)
}
