package services

import (
	stderrors "errors"

	"task-manager/internal/domain"
)

var (
	// ErrSessionActive is returned when a session is started while another is open
	ErrSessionActive = stderrors.New("another edit session is already open")
	// ErrNoDraft is returned when editing a draft outside Creating or Editing
	ErrNoDraft = stderrors.New("no task is being created or edited")
	// ErrNotConfirmingDelete is returned by ConfirmDelete outside ConfirmingDelete
	ErrNotConfirmingDelete = stderrors.New("no delete is awaiting confirmation")
)

// SessionState is one of Idle, Creating, Editing or ConfirmingDelete
type SessionState interface {
	isSessionState()
}

// Idle means no modal is open
type Idle struct{}

// Creating holds the draft of a task that does not exist yet
type Creating struct {
	Draft domain.TaskDraft
}

// Editing holds the draft for an existing task
type Editing struct {
	TaskID string
	Draft  domain.TaskDraft
}

// ConfirmingDelete waits for the user to confirm removal of TaskID
type ConfirmingDelete struct {
	TaskID string
}

func (Idle) isSessionState()             {}
func (Creating) isSessionState()         {}
func (Editing) isSessionState()          {}
func (ConfirmingDelete) isSessionState() {}

// DeleteConfirmation proves the user confirmed a delete. Only
// EditSessionController.ConfirmDelete can produce a usable one.
type DeleteConfirmation struct {
	taskID string
}

// TaskID returns the task the confirmation is for
func (c DeleteConfirmation) TaskID() string {
	return c.taskID
}

// EditSessionController tracks which modal, if any, is open. At most one
// session exists at a time and it never touches the task store or repository.
type EditSessionController struct {
	state SessionState
}

// NewEditSessionController starts Idle
func NewEditSessionController() *EditSessionController {
	return &EditSessionController{state: Idle{}}
}

// State returns the current session variant
func (c *EditSessionController) State() SessionState {
	return c.state
}

// IsIdle reports whether no session is open
func (c *EditSessionController) IsIdle() bool {
	_, idle := c.state.(Idle)
	return idle
}

// BeginCreate opens a create session with an empty draft
func (c *EditSessionController) BeginCreate() error {
	if !c.IsIdle() {
		return ErrSessionActive
	}
	c.state = Creating{Draft: domain.NewDraft()}
	return nil
}

// BeginEdit opens an edit session seeded from task
func (c *EditSessionController) BeginEdit(task domain.Task) error {
	if !c.IsIdle() {
		return ErrSessionActive
	}
	c.state = Editing{TaskID: task.ID, Draft: domain.DraftFromTask(task)}
	return nil
}

// BeginDelete asks for confirmation before deleting id
func (c *EditSessionController) BeginDelete(id string) error {
	if !c.IsIdle() {
		return ErrSessionActive
	}
	c.state = ConfirmingDelete{TaskID: id}
	return nil
}

// EditDraft applies fn to the open draft
func (c *EditSessionController) EditDraft(fn func(*domain.TaskDraft)) error {
	switch s := c.state.(type) {
	case Creating:
		fn(&s.Draft)
		c.state = s
	case Editing:
		fn(&s.Draft)
		c.state = s
	default:
		return ErrNoDraft
	}
	return nil
}

// Draft returns a copy of the open draft
func (c *EditSessionController) Draft() (domain.TaskDraft, bool) {
	switch s := c.state.(type) {
	case Creating:
		return s.Draft, true
	case Editing:
		return s.Draft, true
	}
	return domain.TaskDraft{}, false
}

// ConfirmDelete issues the confirmation for the pending delete. The session
// stays open until Complete or Cancel.
func (c *EditSessionController) ConfirmDelete() (DeleteConfirmation, error) {
	s, ok := c.state.(ConfirmingDelete)
	if !ok {
		return DeleteConfirmation{}, ErrNotConfirmingDelete
	}
	return DeleteConfirmation{taskID: s.TaskID}, nil
}

// Cancel discards any open session
func (c *EditSessionController) Cancel() {
	c.state = Idle{}
}

// Complete closes the session after its mutation went through
func (c *EditSessionController) Complete() {
	c.state = Idle{}
}
