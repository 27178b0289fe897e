package cli

import (
	"context"
	"strings"

	"github.com/spf13/pflag"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// ListCommand handles the list command
type ListCommand struct {
	app    *App
	status string
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// BindFlags binds the list filters
func (c *ListCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.status, "status", "", "Only show pending or completed tasks")
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	board, err := c.app.requireBoard()
	if err != nil {
		return err
	}

	status := domain.Status(strings.ToLower(strings.TrimSpace(c.status)))
	if status != "" && !status.IsValid() {
		return c.app.errors.HandleSimple(errors.NewInvalidInputError("status", c.status, "must be pending or completed"))
	}

	if err := board.Refresh(ctx); err != nil {
		return c.app.errors.Handle("list tasks", err)
	}

	r := c.app.renderer()
	switch status {
	case domain.StatusPending:
		r.PendingSection(c.app.out, board.Pending())
	case domain.StatusCompleted:
		r.CompletedSection(c.app.out, board.Completed())
	default:
		r.TaskTables(c.app.out, board.Pending(), board.Completed(), len(board.DueSoon()))
	}
	return nil
}

// NotificationsCommand opens the due-soon panel
type NotificationsCommand struct {
	app *App
}

// NewNotificationsCommand creates a new notifications command handler
func NewNotificationsCommand(app *App) *NotificationsCommand {
	return &NotificationsCommand{app: app}
}

// Execute runs the notifications command
func (c *NotificationsCommand) Execute(ctx context.Context, args []string) error {
	board, err := c.app.requireBoard()
	if err != nil {
		return err
	}

	if err := board.Refresh(ctx); err != nil {
		return c.app.errors.Handle("load notifications", err)
	}

	if !board.NotificationsVisible() {
		board.ToggleNotifications()
	}

	c.app.renderer().NotificationPanel(c.app.out, board.DueSoon())
	return nil
}
