package api

import (
	"context"
	"slices"
	"sync"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/services"
	"task-manager/internal/validation"
)

// TaskBoard is everything the CLI can do: sign in, look at the task list and
// the due-soon panel, and drive one create/edit/delete session at a time.
type TaskBoard interface {
	// ========== Authentication ==========

	// Register creates an account and returns the message to show
	Register(ctx context.Context, username, email, password string) (string, error)

	// Login stores a token for later commands
	Login(ctx context.Context, email, password string) error

	// Logout forgets the stored token
	Logout(ctx context.Context) error

	// ========== Task List ==========

	// Refresh reloads the list and recomputes the due-soon panel
	Refresh(ctx context.Context) error

	Tasks() []*domain.Task
	Pending() []*domain.Task
	Completed() []*domain.Task

	// Find returns a task from the last loaded list
	Find(id string) (*domain.Task, bool)

	// ========== Notifications ==========

	// DueSoon returns the panel items from the last load
	DueSoon() []*domain.Task

	// ToggleNotifications opens or closes the panel and returns the new state
	ToggleNotifications() bool

	NotificationsVisible() bool

	// ========== Edit Sessions ==========

	// Session returns the open session variant
	Session() services.SessionState

	BeginCreate() error

	// BeginEdit opens an edit session for a task in the loaded list
	BeginEdit(id string) error

	// BeginDelete asks for confirmation to delete a task in the loaded list
	BeginDelete(id string) error

	// EditDraft changes the open draft without touching the list
	EditDraft(fn func(*domain.TaskDraft)) error

	// Submit validates and writes the open draft. Validation and write
	// failures keep the session open; a failed reload after a good write
	// closes it and is still reported.
	Submit(ctx context.Context) error

	// ConfirmDelete deletes the task awaiting confirmation
	ConfirmDelete(ctx context.Context) error

	// Cancel closes any open session without writing
	Cancel()
}

// Options configures a TaskBoard. Partial days round up, so a zero WindowDays
// only lists tasks due in the day leading up to now; use
// DefaultOptions for the usual three days.
type Options struct {
	WindowDays int
	Clock      services.Clock
	Logger     *logging.Logger
	Validator  *validation.DraftValidator
}

type taskBoardImpl struct {
	mu sync.Mutex

	store       *services.TaskStore
	coordinator *services.MutationCoordinator
	sessions    *services.EditSessionController
	panel       *services.NotificationPanel
	auth        *services.AuthService
	validator   *validation.DraftValidator

	windowDays int
	clock      services.Clock
	logger     *logging.Logger
}

// DefaultOptions returns Options with the default due-soon window
func DefaultOptions() Options {
	return Options{WindowDays: services.DefaultDueSoonWindowDays}
}

// NewTaskBoard wires the task store, coordinator, session controller and
// notification panel around the given collaborators
func NewTaskBoard(repo services.TaskRepository, authClient services.AuthClient, sessionStore services.SessionStore, opts Options) TaskBoard {
	if opts.WindowDays < 0 {
		opts.WindowDays = services.DefaultDueSoonWindowDays
	}
	if opts.Clock == nil {
		opts.Clock = services.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Validator == nil {
		opts.Validator = validation.NewDraftValidator()
	}

	store := services.NewTaskStore()
	return &taskBoardImpl{
		store:       store,
		coordinator: services.NewMutationCoordinator(repo, sessionStore, store, opts.Logger),
		sessions:    services.NewEditSessionController(),
		panel:       services.NewNotificationPanel(),
		auth:        services.NewAuthService(authClient, sessionStore, opts.Logger),
		validator:   opts.Validator,
		windowDays:  opts.WindowDays,
		clock:       opts.Clock,
		logger:      opts.Logger,
	}
}

// ========== Authentication ==========

func (b *taskBoardImpl) Register(ctx context.Context, username, email, password string) (string, error) {
	return b.auth.Register(ctx, username, email, password)
}

func (b *taskBoardImpl) Login(ctx context.Context, email, password string) error {
	return b.auth.Login(ctx, email, password)
}

func (b *taskBoardImpl) Logout(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.auth.Logout(ctx); err != nil {
		return err
	}
	b.sessions.Cancel()
	b.store.Load(nil)
	b.recompute()
	return nil
}

// ========== Task List ==========

func (b *taskBoardImpl) Refresh(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := b.coordinator.Refresh(ctx)
	b.recompute()
	return err
}

func (b *taskBoardImpl) Tasks() []*domain.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Tasks()
}

func (b *taskBoardImpl) Pending() []*domain.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Pending()
}

func (b *taskBoardImpl) Completed() []*domain.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Completed()
}

func (b *taskBoardImpl) Find(id string) (*domain.Task, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.store.Find(id)
}

// ========== Notifications ==========

func (b *taskBoardImpl) DueSoon() []*domain.Task {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.panel.Items())
}

func (b *taskBoardImpl) ToggleNotifications() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.panel.Toggle()
}

func (b *taskBoardImpl) NotificationsVisible() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.panel.Visible()
}

// recompute reads the clock once and refreshes the panel. Callers hold mu.
func (b *taskBoardImpl) recompute() {
	b.panel.Recompute(b.store.Tasks(), b.clock.Now(), b.windowDays)
}

// ========== Edit Sessions ==========

func (b *taskBoardImpl) Session() services.SessionState {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions.State()
}

func (b *taskBoardImpl) BeginCreate() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions.BeginCreate()
}

func (b *taskBoardImpl) BeginEdit(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	task, ok := b.store.Find(id)
	if !ok {
		return errors.NewNotFoundError("task", id)
	}
	return b.sessions.BeginEdit(*task)
}

func (b *taskBoardImpl) BeginDelete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.store.Find(id); !ok {
		return errors.NewNotFoundError("task", id)
	}
	return b.sessions.BeginDelete(id)
}

func (b *taskBoardImpl) EditDraft(fn func(*domain.TaskDraft)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions.EditDraft(fn)
}

func (b *taskBoardImpl) Submit(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var err error
	switch s := b.sessions.State().(type) {
	case services.Creating:
		draft := b.validator.Normalize(s.Draft)
		if verr := b.validator.ValidateForCreate(draft); verr != nil {
			return toAppError(verr)
		}
		err = b.coordinator.Create(ctx, draft)
	case services.Editing:
		draft := b.validator.Normalize(s.Draft)
		if verr := b.validator.ValidateForUpdate(s.TaskID, draft); verr != nil {
			return toAppError(verr)
		}
		err = b.coordinator.Update(ctx, s.TaskID, draft)
	default:
		return services.ErrNoDraft
	}

	return b.finish(ctx, err)
}

func (b *taskBoardImpl) ConfirmDelete(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	confirmation, err := b.sessions.ConfirmDelete()
	if err != nil {
		return err
	}
	return b.finish(ctx, b.coordinator.Delete(ctx, confirmation))
}

func (b *taskBoardImpl) Cancel() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sessions.Cancel()
}

// finish closes the session unless the write itself was rejected, then
// refreshes the panel. Callers hold mu.
func (b *taskBoardImpl) finish(ctx context.Context, err error) error {
	if errors.IsErrorType(err, errors.ErrorTypeMutationFailed) {
		if errors.ShouldLogError(err) {
			b.logger.WarnContext(ctx, "task write failed", "error", err)
		}
		return err
	}
	if err != nil && !errors.IsErrorType(err, errors.ErrorTypeFetchFailed) {
		// nothing was written (e.g. not logged in); keep the draft
		return err
	}

	b.sessions.Complete()
	b.recompute()
	return err
}

func toAppError(err error) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return ve.ToAppError()
	}
	return err
}
