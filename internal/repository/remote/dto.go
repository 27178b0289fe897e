package remote

import (
	"task-manager/internal/domain"
)

// taskDTO is a task as the service sends it
type taskDTO struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Status      string  `json:"status"`
	DueDate     *string `json:"dueDate"`
	Priority    string  `json:"priority"`
}

// createTaskRequest never carries a status; the service starts every task pending
type createTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	DueDate     string `json:"dueDate,omitempty"`
	Priority    string `json:"priority"`
}

// updateTaskRequest always carries dueDate; "" clears it on the service
type updateTaskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
	DueDate     string `json:"dueDate"`
	Priority    string `json:"priority"`
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// toDomain converts a wire task. An unreadable due date is dropped rather than
// failing the whole list.
func (d taskDTO) toDomain() (*domain.Task, bool) {
	status := domain.Status(d.Status)
	if status == "" {
		status = domain.StatusPending
	}

	task := &domain.Task{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Status:      status,
		Priority:    domain.NormalizePriority(d.Priority),
	}

	if d.DueDate == nil {
		return task, true
	}
	due, err := domain.ParseDueDate(*d.DueDate)
	if err != nil {
		return task, false
	}
	task.DueDate = due
	return task, true
}

func newCreateTaskRequest(draft domain.TaskDraft) createTaskRequest {
	return createTaskRequest{
		Title:       draft.Title,
		Description: draft.Description,
		DueDate:     draft.DueDate,
		Priority:    string(draft.Priority),
	}
}

func newUpdateTaskRequest(draft domain.TaskDraft) updateTaskRequest {
	return updateTaskRequest{
		Title:       draft.Title,
		Description: draft.Description,
		Status:      string(draft.Status),
		DueDate:     draft.DueDate,
		Priority:    string(draft.Priority),
	}
}
