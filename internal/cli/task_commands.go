package cli

import (
	"context"
	"strings"

	"github.com/spf13/pflag"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// draftFlags are the form fields shared by create and edit
type draftFlags struct {
	flags       *pflag.FlagSet
	title       string
	description string
	due         string
	priority    string
	status      string
}

func (f *draftFlags) bind(fs *pflag.FlagSet, withStatus bool) {
	f.flags = fs
	fs.StringVar(&f.title, "title", "", "Task title")
	fs.StringVar(&f.description, "description", "", "Task description")
	fs.StringVar(&f.due, "due", "", "Due date as YYYY-MM-DD; empty clears it")
	fs.StringVar(&f.priority, "priority", "", "low, medium or high")
	if withStatus {
		fs.StringVar(&f.status, "status", "", "pending or completed")
	}
}

// isSet reports whether the user supplied name. Without a flag set any
// non-empty value counts.
func (f *draftFlags) isSet(name, value string) bool {
	if f.flags != nil {
		return f.flags.Changed(name)
	}
	return value != ""
}

func (f *draftFlags) apply(d *domain.TaskDraft) {
	if f.isSet("title", f.title) {
		d.Title = f.title
	}
	if f.isSet("description", f.description) {
		d.Description = f.description
	}
	if f.isSet("due", f.due) {
		d.DueDate = strings.TrimSpace(f.due)
	}
	if f.isSet("priority", f.priority) {
		d.Priority = domain.Priority(strings.ToLower(strings.TrimSpace(f.priority)))
	}
	if f.isSet("status", f.status) {
		d.Status = domain.Status(strings.ToLower(strings.TrimSpace(f.status)))
	}
}

// CreateCommand handles the create command
type CreateCommand struct {
	app    *App
	fields draftFlags
}

// NewCreateCommand creates a new create command handler
func NewCreateCommand(app *App) *CreateCommand {
	return &CreateCommand{app: app}
}

// BindFlags binds the form fields
func (c *CreateCommand) BindFlags(fs *pflag.FlagSet) {
	c.fields.bind(fs, false)
}

// Execute opens a create session, fills it from flags and submits it
func (c *CreateCommand) Execute(ctx context.Context, args []string) error {
	board, err := c.app.requireBoard()
	if err != nil {
		return err
	}

	if err := board.BeginCreate(); err != nil {
		return err
	}
	defer board.Cancel()

	var title string
	if err := board.EditDraft(func(d *domain.TaskDraft) {
		c.fields.apply(d)
		title = strings.TrimSpace(d.Title)
	}); err != nil {
		return err
	}

	if err := board.Submit(ctx); err != nil {
		return c.app.errors.HandleSimple(err)
	}

	c.app.printf("Created task: %s\n", title)
	return nil
}

// EditCommand handles the edit command
type EditCommand struct {
	app    *App
	fields draftFlags
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App) *EditCommand {
	return &EditCommand{app: app}
}

// BindFlags binds the form fields, including status
func (c *EditCommand) BindFlags(fs *pflag.FlagSet) {
	c.fields.bind(fs, true)
}

// Execute loads the task, applies the changed flags and submits the draft
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	id, err := taskIDArg("edit", args)
	if err != nil {
		return err
	}
	title, err := c.app.editTask(ctx, id, c.fields.apply)
	if err != nil {
		return err
	}

	c.app.printf("Updated task: %s\n", title)
	return nil
}

// CompleteCommand marks a task completed
type CompleteCommand struct {
	app *App
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{app: app}
}

// Execute runs the complete command
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := taskIDArg("complete", args)
	if err != nil {
		return err
	}
	title, err := c.app.editTask(ctx, id, func(d *domain.TaskDraft) {
		d.Status = domain.StatusCompleted
	})
	if err != nil {
		return err
	}

	c.app.printf("Completed task: %s\n", title)
	return nil
}

// editTask runs a whole edit session for id and returns the submitted title
func (a *App) editTask(ctx context.Context, id string, change func(*domain.TaskDraft)) (string, error) {
	board, err := a.requireBoard()
	if err != nil {
		return "", err
	}

	if err := board.Refresh(ctx); err != nil {
		return "", a.errors.Handle("load tasks", err)
	}
	if err := board.BeginEdit(id); err != nil {
		return "", a.errors.Handle("edit task", err)
	}
	defer board.Cancel()

	var title string
	if err := board.EditDraft(func(d *domain.TaskDraft) {
		change(d)
		title = strings.TrimSpace(d.Title)
	}); err != nil {
		return "", err
	}

	if err := board.Submit(ctx); err != nil {
		return "", a.errors.HandleSimple(err)
	}
	return title, nil
}

func taskIDArg(command string, args []string) (string, error) {
	if len(args) != 1 || strings.TrimSpace(args[0]) == "" {
		return "", errors.NewInvalidInputError("id", strings.Join(args, " "), "usage: tm "+command+" <task id>")
	}
	return strings.TrimSpace(args[0]), nil
}
