package services

import (
	"slices"

	"task-manager/internal/domain"
)

// TaskStore holds the last fetched task list and its pending/completed views.
// Order is whatever the repository returned.
type TaskStore struct {
	tasks     []*domain.Task
	pending   []*domain.Task
	completed []*domain.Task
}

// NewTaskStore returns an empty store
func NewTaskStore() *TaskStore {
	return &TaskStore{}
}

// Load replaces the whole collection and recomputes both partitions. A task
// is completed only when its status says so; anything else is pending.
func (s *TaskStore) Load(tasks []*domain.Task) {
	s.tasks = slices.Clone(tasks)
	s.pending = make([]*domain.Task, 0, len(tasks))
	s.completed = make([]*domain.Task, 0, len(tasks))

	for _, t := range s.tasks {
		if t.IsCompleted() {
			s.completed = append(s.completed, t)
		} else {
			s.pending = append(s.pending, t)
		}
	}
}

// Tasks returns every task in repository order
func (s *TaskStore) Tasks() []*domain.Task {
	return slices.Clone(s.tasks)
}

// Pending returns the tasks not yet completed
func (s *TaskStore) Pending() []*domain.Task {
	return slices.Clone(s.pending)
}

// Completed returns the completed tasks
func (s *TaskStore) Completed() []*domain.Task {
	return slices.Clone(s.completed)
}

// Find looks a task up by ID
func (s *TaskStore) Find(id string) (*domain.Task, bool) {
	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}

// Len returns the number of tasks held
func (s *TaskStore) Len() int {
	return len(s.tasks)
}
