package cli

import (
	"context"
	"fmt"
)

// ConfigCommand prints the effective configuration
type ConfigCommand struct {
	app *App
}

// NewConfigCommand creates a new config command handler
func NewConfigCommand(app *App) *ConfigCommand {
	return &ConfigCommand{app: app}
}

// Execute runs the config command
func (c *ConfigCommand) Execute(ctx context.Context, args []string) error {
	out, err := c.app.config.ToYAML()
	if err != nil {
		return fmt.Errorf("failed to render configuration: %w", err)
	}
	_, err = c.app.out.Write(out)
	return err
}
