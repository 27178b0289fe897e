package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/logging"
)

// skipBoard marks commands that run without a task board
const skipBoard = "tm/skip-board"

// BoardFactory builds the task board once flags have been applied. The
// returned close function releases whatever the board holds open.
type BoardFactory func(cfg *config.Config, logger *logging.Logger) (api.TaskBoard, func() error, error)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	app     *App
	config  *config.Config
	factory BoardFactory
	closer  func() error
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(app *App, factory BoardFactory) *RootCommand {
	root := &RootCommand{
		app:     app,
		config:  app.config,
		factory: factory,
	}

	root.cmd = &cobra.Command{
		Use:   "tm",
		Short: "A command-line client for the task manager service",
		Long: `Task Manager (tm) keeps a personal task list on a task manager server.

FEATURES:
  • Register, log in and log out; the session token is kept locally
  • List pending and completed tasks with due dates and priorities
  • See tasks due within the next few days
  • Create, edit, complete and delete tasks

EXAMPLES:
  tm login --email me@example.com                   # Log in (password is prompted)
  tm list                                           # Show pending and completed tasks
  tm notifications                                  # Show tasks due soon
  tm create --title "Pay rent" --description "March" --due 2025-03-31
  tm edit <id> --priority high                      # Change one field
  tm complete <id>                                  # Mark a task completed
  tm delete <id>                                    # Delete after confirmation

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > .env file > config file > defaults

  The config file is read from $TM_CONFIG or ~/.tm/config.yaml.
  Run 'tm config' to see the effective values.

  TM_API_BASE_URL                          Task service URL (default: http://localhost:3000/)
  TM_API_TIMEOUT                           Request timeout (default: 10s)
  TM_DB_DIR                                Session store directory (default: ~/.tm)
  TM_NOTIFY_WINDOW_DAYS                    Due-soon window in days (default: 3)
  TM_DISPLAY_DATE_FORMAT                   Date format (default: 2006-01-02)
  TM_DISPLAY_COLOR                         Colour output (default: true, NO_COLOR disables)
  TM_APP_TIMEOUT                           Command timeout (default: 60s)
  TM_LOG_LEVEL                             debug, info, warn or error (default: warn)
  TM_ENV                                   production or testing (default: production)

GETTING HELP:
  tm [command] --help                      # Get help for any specific command
  tm completion bash                       # Generate bash completion script`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := root.applyFlags(); err != nil {
				return err
			}
			if cmd.Annotations[skipBoard] == "true" {
				return nil
			}
			return root.openBoard()
		},
	}

	root.addGlobalFlags()
	root.addSubcommands()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	defer r.close()
	return r.cmd.Execute()
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.PersistentFlags()

	// API configuration
	flags.String("api-url", "", "Task service base URL (overrides TM_API_BASE_URL)")
	flags.Duration("api-timeout", 0, "Task service request timeout (overrides TM_API_TIMEOUT)")

	// Session store configuration
	flags.String("db-dir", "", "Session store directory (overrides TM_DB_DIR)")
	flags.String("db-filename", "", "Session store filename (overrides TM_DB_FILENAME)")

	// Notification configuration
	flags.Int("window-days", 0, "Due-soon window in days (overrides TM_NOTIFY_WINDOW_DAYS)")

	// Display configuration
	flags.String("date-format", "", "Due date display format (overrides TM_DISPLAY_DATE_FORMAT)")
	flags.Bool("relative-dates", true, "Show relative due dates (overrides TM_DISPLAY_RELATIVE_DATES)")
	flags.Bool("no-color", false, "Disable colour output")

	// Application configuration
	flags.Duration("app-timeout", 0, "Command timeout (overrides TM_APP_TIMEOUT)")
	flags.Bool("verbose", false, "Enable verbose output (overrides TM_APP_VERBOSE)")
	flags.String("log-level", "", "Log level (overrides TM_LOG_LEVEL)")
}

type subcommand struct {
	name        string
	use         string
	short       string
	long        string
	args        cobra.PositionalArgs
	interactive bool
	noBoard     bool
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	subcommands := []subcommand{
		{
			name:        "register",
			use:         "register",
			short:       "Create an account",
			args:        cobra.NoArgs,
			interactive: true,
		},
		{
			name:        "login",
			use:         "login",
			short:       "Log in and remember the session",
			args:        cobra.NoArgs,
			interactive: true,
		},
		{
			name:  "logout",
			use:   "logout",
			short: "Forget the stored session",
			args:  cobra.NoArgs,
		},
		{
			name:  "list",
			use:   "list",
			short: "List pending and completed tasks",
			long: `List pending and completed tasks. The bell below the tables counts
tasks due within the notification window.

Examples:
  tm list                     # Both tables
  tm list --status pending    # Pending tasks only`,
			args: cobra.NoArgs,
		},
		{
			name:  "notifications",
			use:   "notifications",
			short: "Show tasks that are due soon",
			args:  cobra.NoArgs,
		},
		{
			name:  "create",
			use:   "create",
			short: "Create a task",
			long: `Create a task. New tasks are always pending.

Example:
  tm create --title "Pay rent" --description "March" --due 2025-03-31 --priority high`,
			args: cobra.NoArgs,
		},
		{
			name:  "edit",
			use:   "edit <task id>",
			short: "Edit a task",
			long: `Edit a task. Only the flags you pass are changed.

Examples:
  tm edit 64f1 --title "Pay rent"
  tm edit 64f1 --due ""            # Clear the due date
  tm edit 64f1 --status pending    # Reopen a completed task`,
			args: cobra.ExactArgs(1),
		},
		{
			name:  "complete",
			use:   "complete <task id>",
			short: "Mark a task completed",
			args:  cobra.ExactArgs(1),
		},
		{
			name:  "delete",
			use:   "delete <task id>",
			short: "Delete a task",
			long: `Delete a task. This operation cannot be undone, so you are asked
to confirm unless --yes is given.`,
			args:        cobra.ExactArgs(1),
			interactive: true,
		},
		{
			name:    "config",
			use:     "config",
			short:   "Print the effective configuration",
			args:    cobra.NoArgs,
			noBoard: true,
		},
	}

	for _, sc := range subcommands {
		r.cmd.AddCommand(r.newSubcommand(sc))
	}
}

func (r *RootCommand) newSubcommand(sc subcommand) *cobra.Command {
	handler, ok := r.app.registry.Get(sc.name)
	if !ok {
		panic(fmt.Sprintf("no handler registered for %q", sc.name))
	}

	cmd := &cobra.Command{
		Use:   sc.use,
		Short: sc.short,
		Long:  sc.long,
		Args:  sc.args,
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout := r.getAppTimeout()
			if sc.interactive {
				// prompts wait on the user
				timeout *= 2
			}
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			return handler.Execute(ctx, args)
		},
	}
	if sc.noBoard {
		cmd.Annotations = map[string]string{skipBoard: "true"}
	}
	if binder, ok := handler.(FlagBinder); ok {
		binder.BindFlags(cmd.Flags())
	}
	return cmd
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 60 * time.Second
}

// applyFlags copies explicitly set global flags onto the configuration and
// rebuilds the logger from the result
func (r *RootCommand) applyFlags() error {
	if r.config == nil {
		return fmt.Errorf("configuration not initialized")
	}

	overrides := overridesFromFlags(r.cmd.PersistentFlags())
	overrides.Apply(r.config)
	if err := r.config.Validate(); err != nil {
		return err
	}

	r.app.useLogger(newLogger(r.config))
	return nil
}

func (r *RootCommand) openBoard() error {
	if r.factory == nil {
		return fmt.Errorf("no task board factory configured")
	}
	board, closer, err := r.factory(r.config, r.app.logger)
	if err != nil {
		return err
	}
	r.app.SetBoard(board)
	r.closer = closer
	return nil
}

func (r *RootCommand) close() {
	if r.closer == nil {
		return
	}
	if err := r.closer(); err != nil {
		r.app.logger.Warn("failed to close task board", "error", err)
	}
	r.closer = nil
}

func overridesFromFlags(flags *pflag.FlagSet) *config.ConfigOverrides {
	o := &config.ConfigOverrides{}

	if flags.Changed("api-url") {
		v, _ := flags.GetString("api-url")
		o.APIBaseURL = &v
	}
	if flags.Changed("api-timeout") {
		v, _ := flags.GetDuration("api-timeout")
		o.APITimeout = &v
	}
	if flags.Changed("db-dir") {
		v, _ := flags.GetString("db-dir")
		o.DBDir = &v
	}
	if flags.Changed("db-filename") {
		v, _ := flags.GetString("db-filename")
		o.DBFilename = &v
	}
	if flags.Changed("window-days") {
		v, _ := flags.GetInt("window-days")
		o.WindowDays = &v
	}
	if flags.Changed("date-format") {
		v, _ := flags.GetString("date-format")
		o.DateFormat = &v
	}
	if flags.Changed("relative-dates") {
		v, _ := flags.GetBool("relative-dates")
		o.RelativeDates = &v
	}
	if noColor, _ := flags.GetBool("no-color"); noColor {
		color := false
		o.Color = &color
	}
	if flags.Changed("app-timeout") {
		v, _ := flags.GetDuration("app-timeout")
		o.Timeout = &v
	}
	if flags.Changed("verbose") {
		v, _ := flags.GetBool("verbose")
		o.Verbose = &v
	}
	if flags.Changed("log-level") {
		v, _ := flags.GetString("log-level")
		o.LogLevel = &v
	}

	return o
}

// newLogger builds the application logger. Verbose mode lowers the level to info.
func newLogger(cfg *config.Config) *logging.Logger {
	level := cfg.Application.LogLevel
	if cfg.Application.Verbose && logging.ParseLevel(level) > logging.ParseLevel("info") {
		level = "info"
	}
	return logging.New(logging.Options{
		Level:  level,
		Format: cfg.Application.LogFormat,
	})
}
