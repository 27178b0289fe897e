package remote

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/url"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// List fetches every task visible to token, in the order the service returns them
func (c *Client) List(ctx context.Context, token string) ([]*domain.Task, error) {
	var dtos []taskDTO
	if err := c.do(ctx, http.MethodGet, token, nil, &dtos, "tasks"); err != nil {
		if stderrors.Is(err, errEmptyBody) {
			return []*domain.Task{}, nil
		}
		return nil, c.authAware(err)
	}

	tasks := make([]*domain.Task, 0, len(dtos))
	for _, dto := range dtos {
		task, ok := dto.toDomain()
		if !ok {
			c.logger.DebugContextf(ctx, "task %s: ignoring unreadable due date %q", dto.ID, *dto.DueDate)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Create submits a new task. The created task is returned when the service
// echoes it back, otherwise nil.
func (c *Client) Create(ctx context.Context, draft domain.TaskDraft, token string) (*domain.Task, error) {
	var dto taskDTO
	err := c.do(ctx, http.MethodPost, token, newCreateTaskRequest(draft), &dto, "tasks")
	return c.echoed(dto, err)
}

// Update replaces the mutable fields of task id
func (c *Client) Update(ctx context.Context, id string, draft domain.TaskDraft, token string) (*domain.Task, error) {
	var dto taskDTO
	err := c.do(ctx, http.MethodPut, token, newUpdateTaskRequest(draft), &dto, "tasks", url.PathEscape(id))
	if statusOf(err) == http.StatusNotFound {
		return nil, errors.NewNotFoundError("task", id)
	}
	return c.echoed(dto, err)
}

// Remove deletes task id
func (c *Client) Remove(ctx context.Context, id string, token string) error {
	err := c.do(ctx, http.MethodDelete, token, nil, nil, "tasks", url.PathEscape(id))
	if statusOf(err) == http.StatusNotFound {
		return errors.NewNotFoundError("task", id)
	}
	if err != nil {
		return c.authAware(err)
	}
	return nil
}

func (c *Client) echoed(dto taskDTO, err error) (*domain.Task, error) {
	if stderrors.Is(err, errEmptyBody) {
		return nil, nil
	}
	if err != nil {
		return nil, c.authAware(err)
	}
	if dto.ID == "" {
		return nil, nil
	}
	task, _ := dto.toDomain()
	return task, nil
}

// authAware turns a 401 into an auth error so the user is told to log in again
func (c *Client) authAware(err error) error {
	if statusOf(err) == http.StatusUnauthorized {
		return errors.NewAuthFailedError("Session expired. Run 'tm login' again.", err)
	}
	return err
}
