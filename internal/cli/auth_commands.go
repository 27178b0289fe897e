package cli

import (
	"context"

	"github.com/spf13/pflag"
)

// RegisterCommand handles the register command
type RegisterCommand struct {
	app      *App
	username string
	email    string
	password string
}

// NewRegisterCommand creates a new register command handler
func NewRegisterCommand(app *App) *RegisterCommand {
	return &RegisterCommand{app: app}
}

// BindFlags binds the account flags
func (c *RegisterCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.username, "username", "", "Account username")
	fs.StringVar(&c.email, "email", "", "Account email")
	fs.StringVar(&c.password, "password", "", "Account password (prompted when omitted)")
}

// Execute runs the register command
func (c *RegisterCommand) Execute(ctx context.Context, args []string) error {
	board, err := c.app.requireBoard()
	if err != nil {
		return err
	}

	password, err := c.app.passwordOrPrompt(c.password)
	if err != nil {
		return err
	}

	msg, err := board.Register(ctx, c.username, c.email, password)
	if err != nil {
		return c.app.errors.HandleSimple(err)
	}

	c.app.printf("%s\n", msg)
	return nil
}

// LoginCommand handles the login command
type LoginCommand struct {
	app      *App
	email    string
	password string
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{app: app}
}

// BindFlags binds the credential flags
func (c *LoginCommand) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "Account email")
	fs.StringVar(&c.password, "password", "", "Account password (prompted when omitted)")
}

// Execute runs the login command
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	board, err := c.app.requireBoard()
	if err != nil {
		return err
	}

	password, err := c.app.passwordOrPrompt(c.password)
	if err != nil {
		return err
	}

	if err := board.Login(ctx, c.email, password); err != nil {
		return c.app.errors.HandleSimple(err)
	}

	c.app.printf("Logged in as %s\n", c.email)
	return nil
}

// LogoutCommand handles the logout command
type LogoutCommand struct {
	app *App
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{app: app}
}

// Execute runs the logout command
func (c *LogoutCommand) Execute(ctx context.Context, args []string) error {
	board, err := c.app.requireBoard()
	if err != nil {
		return err
	}

	if err := board.Logout(ctx); err != nil {
		return c.app.errors.Handle("log out", err)
	}

	c.app.printf("Logged out\n")
	return nil
}

func (a *App) passwordOrPrompt(password string) (string, error) {
	if password != "" {
		return password, nil
	}
	return a.promptSecret("Password: ")
}
