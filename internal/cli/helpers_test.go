package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/domain"
	"task-manager/internal/repository/memory"
	"task-manager/internal/repository/sqlite"
	"task-manager/internal/services"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

type testApp struct {
	*App
	out   *bytes.Buffer
	repo  *memory.Repository
	board api.TaskBoard
}

func daysFromNow(n int) *time.Time {
	t := time.Date(testNow.Year(), testNow.Month(), testNow.Day()+n, 0, 0, 0, 0, time.UTC)
	return &t
}

func testConfig() *config.Config {
	cfg := config.NewConfig()
	cfg.Display.Color = false
	cfg.Display.RelativeDates = false
	return cfg
}

// setupTestApp builds an App over a logged-in board backed by the memory
// repository. input feeds confirmation prompts.
func setupTestApp(t *testing.T, input string, seed ...domain.Task) *testApp {
	t.Helper()

	original := timeNow
	timeNow = func() time.Time { return testNow }
	t.Cleanup(func() { timeNow = original })

	repo := memory.NewRepository()
	repo.Seed(seed...)
	require.NoError(t, repo.Register(context.Background(), "ada", "ada@example.com", "secret"))

	sessions, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { sessions.Close() })

	opts := api.DefaultOptions()
	opts.Clock = services.NewFakeClock(testNow)
	board := api.NewTaskBoard(repo, repo, sessions, opts)
	require.NoError(t, board.Login(context.Background(), "ada@example.com", "secret"))

	out := &bytes.Buffer{}
	app := NewApp(board, testConfig(), WithOutput(out), WithInput(strings.NewReader(input)))

	return &testApp{App: app, out: out, repo: repo, board: board}
}

// parseFlags binds cmd's flags and parses args into them
func parseFlags(t *testing.T, cmd FlagBinder, args ...string) {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cmd.BindFlags(fs)
	require.NoError(t, fs.Parse(args))
}
