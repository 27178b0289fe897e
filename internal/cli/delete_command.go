package cli

import (
	"context"
	"strings"

	"github.com/spf13/pflag"
)

const deletePrompt = "Are you sure you want to delete this task? [y/N] "

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *App
	yes bool
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{app: app}
}

// BindFlags binds --yes
func (c *DeleteCommand) BindFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.yes, "yes", "y", false, "Delete without asking for confirmation")
}

// Execute asks for confirmation and deletes the task
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	id, err := taskIDArg("delete", args)
	if err != nil {
		return err
	}

	board, err := c.app.requireBoard()
	if err != nil {
		return err
	}

	if err := board.Refresh(ctx); err != nil {
		return c.app.errors.Handle("load tasks", err)
	}
	if err := board.BeginDelete(id); err != nil {
		return c.app.errors.Handle("delete task", err)
	}
	defer board.Cancel()

	task, _ := board.Find(id)

	if !c.yes {
		answer, err := c.app.prompt(deletePrompt)
		if err != nil {
			return err
		}
		if !confirmed(answer) {
			c.app.printf("Delete cancelled.\n")
			return nil
		}
	}

	if err := board.ConfirmDelete(ctx); err != nil {
		return c.app.errors.HandleSimple(err)
	}

	c.app.printf("Deleted task: %s\n", task.Title)
	return nil
}

func confirmed(answer string) bool {
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
