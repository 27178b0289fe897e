package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/logging"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App represents the main CLI application
type App struct {
	board    api.TaskBoard
	config   *config.Config
	out      io.Writer
	in       *bufio.Reader
	stdin    io.Reader
	logger   *logging.Logger
	errors   *ErrorHandler
	registry *CommandRegistry

	// readSecret reads a line without echo; nil unless stdin is a terminal
	readSecret func() (string, error)
}

// AppOption customises an App
type AppOption func(*App)

// WithOutput sends command output to w instead of stdout
func WithOutput(w io.Writer) AppOption {
	return func(a *App) { a.out = w }
}

// WithInput reads prompts from r instead of stdin
func WithInput(r io.Reader) AppOption {
	return func(a *App) {
		a.stdin = r
		a.in = bufio.NewReader(r)
	}
}

// NewApp creates a new CLI application instance with dependency injection.
// board may be nil and attached later with SetBoard.
func NewApp(board api.TaskBoard, cfg *config.Config, opts ...AppOption) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		board:  board,
		config: cfg,
		out:    os.Stdout,
		in:     bufio.NewReader(os.Stdin),
		stdin:  os.Stdin,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(app)
	}
	if f, ok := app.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		app.readSecret = func() (string, error) {
			b, err := term.ReadPassword(fd)
			return string(b), err
		}
	}
	app.errors = NewErrorHandler(app.logger)
	app.registry = NewCommandRegistry(app)
	return app
}

// SetBoard attaches the task board once configuration is final
func (a *App) SetBoard(board api.TaskBoard) {
	a.board = board
}

// Registry returns the commands known to the application
func (a *App) Registry() *CommandRegistry {
	return a.registry
}

// Run executes the CLI application with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%s", a.registry.GetUsage())
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

func (a *App) requireBoard() (api.TaskBoard, error) {
	if a.board == nil {
		return nil, fmt.Errorf("task board not initialized")
	}
	return a.board, nil
}

func (a *App) renderer() *Renderer {
	return NewRenderer(a.config.Display, timeNow())
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// prompt writes question and reads one trimmed line. EOF counts as an empty answer.
func (a *App) prompt(question string) (string, error) {
	fmt.Fprint(a.out, question)
	line, err := a.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSecret is prompt without echo when stdin is a terminal
func (a *App) promptSecret(question string) (string, error) {
	if a.readSecret == nil {
		return a.prompt(question)
	}
	fmt.Fprint(a.out, question)
	secret, err := a.readSecret()
	fmt.Fprintln(a.out)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(secret), nil
}

func (a *App) useLogger(l *logging.Logger) {
	a.logger = l
	a.errors.logger = l
}
