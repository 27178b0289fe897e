package services

import (
	"context"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
)

// MutationCoordinator writes through the repository and then always reloads
// the full list into the store. There is no optimistic local update: the
// store only ever holds what the service last returned.
type MutationCoordinator struct {
	repo    TaskRepository
	session SessionProvider
	store   *TaskStore
	logger  *logging.Logger
}

// NewMutationCoordinator wires a coordinator. A nil logger discards output.
func NewMutationCoordinator(repo TaskRepository, session SessionProvider, store *TaskStore, logger *logging.Logger) *MutationCoordinator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &MutationCoordinator{
		repo:    repo,
		session: session,
		store:   store,
		logger:  logger,
	}
}

// Refresh reloads the store. On failure the store keeps its previous contents
// and a FetchFailed error is returned.
func (c *MutationCoordinator) Refresh(ctx context.Context) error {
	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}
	return c.refresh(ctx, token)
}

// Create submits draft as a new pending task and reloads
func (c *MutationCoordinator) Create(ctx context.Context, draft domain.TaskDraft) error {
	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	draft.Status = domain.StatusPending
	if _, err := c.repo.Create(ctx, draft, token); err != nil {
		c.logger.DebugContextf(ctx, "create %q rejected: %v", draft.Title, err)
		return errors.NewMutationFailedError("create", err)
	}

	return c.refresh(ctx, token)
}

// Update writes draft over task id and reloads. Status changes move the task
// between partitions once the reload lands.
func (c *MutationCoordinator) Update(ctx context.Context, id string, draft domain.TaskDraft) error {
	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	if _, err := c.repo.Update(ctx, id, draft, token); err != nil {
		c.logger.DebugContextf(ctx, "update %s rejected: %v", id, err)
		return errors.NewMutationFailedError("update", err).WithContext("task_id", id)
	}

	return c.refresh(ctx, token)
}

// Delete removes the confirmed task and reloads
func (c *MutationCoordinator) Delete(ctx context.Context, confirmation DeleteConfirmation) error {
	id := confirmation.TaskID()
	if id == "" {
		return errors.NewInvalidInputError("confirmation", id, "delete was not confirmed")
	}

	token, err := c.session.Token(ctx)
	if err != nil {
		return err
	}

	if err := c.repo.Remove(ctx, id, token); err != nil {
		c.logger.DebugContextf(ctx, "delete %s rejected: %v", id, err)
		return errors.NewMutationFailedError("delete", err).WithContext("task_id", id)
	}

	return c.refresh(ctx, token)
}

func (c *MutationCoordinator) refresh(ctx context.Context, token string) error {
	tasks, err := c.repo.List(ctx, token)
	if err != nil {
		c.logger.DebugContextf(ctx, "list failed, keeping %d cached tasks: %v", c.store.Len(), err)
		return errors.NewFetchFailedError(err)
	}
	c.store.Load(tasks)
	return nil
}
