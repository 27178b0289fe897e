package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
)

func TestNewCommandRegistry(t *testing.T) {
	app := setupTestApp(t, "")

	registry := app.Registry()

	for _, name := range []string{"register", "login", "logout", "list", "notifications", "create", "edit", "complete", "delete", "config"} {
		_, ok := registry.Get(name)
		assert.True(t, ok, "missing command %q", name)
	}
}

func TestCommandRegistry_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("executes list command", func(t *testing.T) {
		app := setupTestApp(t, "", domain.Task{ID: "t1", Title: "Pay rent", Description: "March"})

		require.NoError(t, app.Registry().Execute(ctx, "list", nil))

		assert.Contains(t, app.out.String(), "Pay rent")
	})

	t.Run("executes complete command", func(t *testing.T) {
		app := setupTestApp(t, "", domain.Task{ID: "t1", Title: "Pay rent", Description: "March"})

		require.NoError(t, app.Registry().Execute(ctx, "complete", []string{"t1"}))

		reload(t, app)
		assert.Len(t, app.board.Completed(), 1)
	})

	t.Run("rejects unknown command", func(t *testing.T) {
		app := setupTestApp(t, "")

		err := app.Registry().Execute(ctx, "frobnicate", nil)

		assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeInvalidInput))
	})
}

func TestApp_Run(t *testing.T) {
	t.Run("should print usage without arguments", func(t *testing.T) {
		app := setupTestApp(t, "")

		err := app.Run(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: tm <command>")
		assert.Contains(t, err.Error(), "notifications")
	})

	t.Run("should dispatch to the named command", func(t *testing.T) {
		app := setupTestApp(t, "y\n", domain.Task{ID: "t1", Title: "Pay rent", Description: "March"})

		require.NoError(t, app.Run(context.Background(), []string{"delete", "t1"}))

		assert.Contains(t, app.out.String(), "Deleted task: Pay rent")
	})

	t.Run("should fail without a board", func(t *testing.T) {
		app := NewApp(nil, testConfig())

		err := app.Run(context.Background(), []string{"list"})

		assert.EqualError(t, err, "task board not initialized")
	})
}
