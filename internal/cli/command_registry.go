package cli

import (
	"context"
	"sort"
	"strings"

	"github.com/spf13/pflag"

	"task-manager/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// FlagBinder is implemented by commands that take flags
type FlagBinder interface {
	BindFlags(fs *pflag.FlagSet)
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("register", NewRegisterCommand(app))
	registry.Register("login", NewLoginCommand(app))
	registry.Register("logout", NewLogoutCommand(app))
	registry.Register("list", NewListCommand(app))
	registry.Register("notifications", NewNotificationsCommand(app))
	registry.Register("create", NewCreateCommand(app))
	registry.Register("edit", NewEditCommand(app))
	registry.Register("complete", NewCompleteCommand(app))
	registry.Register("delete", NewDeleteCommand(app))
	registry.Register("config", NewConfigCommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Get returns the command registered under name
func (r *CommandRegistry) Get(name string) (Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return "usage: tm <command> [flags]; commands: " + strings.Join(names, ", ")
}
