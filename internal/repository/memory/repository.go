// Package memory is an in-process stand-in for the task service, used by tests
// and by the testing environment.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// Op names a repository call for failure injection and call counting
type Op string

const (
	OpList     Op = "list"
	OpCreate   Op = "create"
	OpUpdate   Op = "update"
	OpRemove   Op = "remove"
	OpRegister Op = "register"
	OpLogin    Op = "login"
)

type account struct {
	username string
	password string
}

// Repository keeps tasks in insertion order. Any non-empty token is accepted
// for task calls; Login only succeeds for registered accounts.
type Repository struct {
	mu       sync.RWMutex
	order    []string
	tasks    map[string]domain.Task
	accounts map[string]account
	failures map[Op]error
	calls    map[Op]int
}

// NewRepository returns an empty repository
func NewRepository() *Repository {
	return &Repository{
		tasks:    map[string]domain.Task{},
		accounts: map[string]account{},
		failures: map[Op]error{},
		calls:    map[Op]int{},
	}
}

// NewDemoRepository returns a repository with one account (demo@example.com /
// demo) and a handful of tasks dated relative to now
func NewDemoRepository(now time.Time) *Repository {
	r := NewRepository()
	r.accounts["demo@example.com"] = account{username: "demo", password: "demo"}

	day := func(n int) *time.Time {
		d := time.Date(now.Year(), now.Month(), now.Day()+n, 0, 0, 0, 0, now.Location())
		return &d
	}
	r.Seed(
		domain.Task{Title: "Renew passport", Description: "Photos and form", Status: domain.StatusPending, DueDate: day(1), Priority: domain.PriorityHigh},
		domain.Task{Title: "Quarterly report", Description: "Numbers for Q3", Status: domain.StatusPending, DueDate: day(3), Priority: domain.PriorityMedium},
		domain.Task{Title: "Plan holiday", Description: "Pick dates", Status: domain.StatusPending, DueDate: day(14), Priority: domain.PriorityLow},
		domain.Task{Title: "Water plants", Description: "Balcony", Status: domain.StatusCompleted, Priority: domain.PriorityLow},
	)
	return r
}

// Seed appends tasks as given, assigning IDs to those without one
func (r *Repository) Seed(tasks ...domain.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range tasks {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		if _, exists := r.tasks[t.ID]; !exists {
			r.order = append(r.order, t.ID)
		}
		r.tasks[t.ID] = t
	}
}

// FailOn makes every later call of op return err until ClearFailures
func (r *Repository) FailOn(op Op, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures[op] = err
}

// ClearFailures removes all injected failures
func (r *Repository) ClearFailures() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failures = map[Op]error{}
}

// Calls reports how many times op has been invoked, including failed calls
func (r *Repository) Calls(op Op) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.calls[op]
}

// begin records the call and returns any injected failure. Callers hold mu.
func (r *Repository) begin(op Op) error {
	r.calls[op]++
	return r.failures[op]
}

func checkToken(token string) error {
	if token == "" {
		return errors.NewAuthFailedError("missing bearer token", nil)
	}
	return nil
}

// List returns copies of all tasks in insertion order
func (r *Repository) List(ctx context.Context, token string) ([]*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.begin(OpList); err != nil {
		return nil, err
	}
	if err := checkToken(token); err != nil {
		return nil, err
	}

	tasks := make([]*domain.Task, 0, len(r.order))
	for _, id := range r.order {
		t := r.tasks[id]
		tasks = append(tasks, &t)
	}
	return tasks, nil
}

// Create stores a new pending task built from draft
func (r *Repository) Create(ctx context.Context, draft domain.TaskDraft, token string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.begin(OpCreate); err != nil {
		return nil, err
	}
	if err := checkToken(token); err != nil {
		return nil, err
	}

	task := domain.NewTask(draft.Title, draft.Description)
	task.ID = uuid.NewString()
	if err := applyDraft(&task, draft); err != nil {
		return nil, err
	}
	task.Status = domain.StatusPending

	r.order = append(r.order, task.ID)
	r.tasks[task.ID] = task

	created := task
	return &created, nil
}

// Update replaces the mutable fields of task id, status included
func (r *Repository) Update(ctx context.Context, id string, draft domain.TaskDraft, token string) (*domain.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.begin(OpUpdate); err != nil {
		return nil, err
	}
	if err := checkToken(token); err != nil {
		return nil, err
	}

	task, ok := r.tasks[id]
	if !ok {
		return nil, errors.NewNotFoundError("task", id)
	}

	task.Title = draft.Title
	task.Description = draft.Description
	if err := applyDraft(&task, draft); err != nil {
		return nil, err
	}
	if draft.Status.IsValid() {
		task.Status = draft.Status
	}
	r.tasks[id] = task

	updated := task
	return &updated, nil
}

// Remove deletes task id
func (r *Repository) Remove(ctx context.Context, id string, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.begin(OpRemove); err != nil {
		return err
	}
	if err := checkToken(token); err != nil {
		return err
	}

	if _, ok := r.tasks[id]; !ok {
		return errors.NewNotFoundError("task", id)
	}
	delete(r.tasks, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Register creates an account keyed by email
func (r *Repository) Register(ctx context.Context, username, email, password string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.begin(OpRegister); err != nil {
		return err
	}
	if _, exists := r.accounts[email]; exists {
		return errors.NewInvalidInputError("email", email, "already registered")
	}
	r.accounts[email] = account{username: username, password: password}
	return nil
}

// Login issues a fresh random token for a registered account
func (r *Repository) Login(ctx context.Context, email, password string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.begin(OpLogin); err != nil {
		return "", err
	}
	acct, ok := r.accounts[email]
	if !ok || acct.password != password {
		return "", errors.NewAuthFailedError("invalid credentials", nil)
	}
	return uuid.NewString(), nil
}

func applyDraft(task *domain.Task, draft domain.TaskDraft) error {
	due, err := domain.ParseDueDate(draft.DueDate)
	if err != nil {
		return errors.NewInvalidInputError("dueDate", draft.DueDate, "must be YYYY-MM-DD")
	}
	task.DueDate = due
	task.Priority = domain.NormalizePriority(string(draft.Priority))
	return nil
}
