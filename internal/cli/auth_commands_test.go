package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCommand_Execute(t *testing.T) {
	t.Run("should print the success message", func(t *testing.T) {
		app := setupTestApp(t, "")
		cmd := NewRegisterCommand(app.App)
		parseFlags(t, cmd, "--username", "bob", "--email", "bob@example.com", "--password", "pw")

		require.NoError(t, cmd.Execute(context.Background(), nil))

		assert.Equal(t, "User registered successfully\n", app.out.String())
	})

	t.Run("should report a rejected registration", func(t *testing.T) {
		app := setupTestApp(t, "")
		cmd := NewRegisterCommand(app.App)
		parseFlags(t, cmd, "--username", "ada", "--email", "ada@example.com", "--password", "pw")

		err := cmd.Execute(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, "Registration failed. Please try again.", err.Error())
	})

	t.Run("should prompt for a missing password", func(t *testing.T) {
		app := setupTestApp(t, "typed-secret\n")
		cmd := NewRegisterCommand(app.App)
		parseFlags(t, cmd, "--username", "bob", "--email", "bob@example.com")

		require.NoError(t, cmd.Execute(context.Background(), nil))

		assert.Equal(t, "Password: User registered successfully\n", app.out.String())
	})

	t.Run("should read the password without echo on a terminal", func(t *testing.T) {
		app := setupTestApp(t, "visible-line\n")
		calls := 0
		app.readSecret = func() (string, error) {
			calls++
			return "hidden-secret", nil
		}
		cmd := NewRegisterCommand(app.App)
		parseFlags(t, cmd, "--username", "bob", "--email", "bob@example.com")

		require.NoError(t, cmd.Execute(context.Background(), nil))

		assert.Equal(t, 1, calls)
		assert.Equal(t, "Password: \nUser registered successfully\n", app.out.String())
		assert.NotContains(t, app.out.String(), "hidden-secret")
		require.NoError(t, app.board.Login(context.Background(), "bob@example.com", "hidden-secret"))
	})

	t.Run("should fail when the hidden read fails", func(t *testing.T) {
		app := setupTestApp(t, "")
		app.readSecret = func() (string, error) { return "", io.ErrUnexpectedEOF }
		cmd := NewRegisterCommand(app.App)
		parseFlags(t, cmd, "--username", "bob", "--email", "bob@example.com")

		err := cmd.Execute(context.Background(), nil)

		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}

func TestNewApp_SecretReaderOnlyForTerminals(t *testing.T) {
	app := NewApp(nil, testConfig(), WithOutput(&bytes.Buffer{}), WithInput(strings.NewReader("pw\n")))

	assert.Nil(t, app.readSecret)

	password, err := app.passwordOrPrompt("")
	require.NoError(t, err)
	assert.Equal(t, "pw", password)
}

func TestLoginCommand_Execute(t *testing.T) {
	t.Run("should log in and allow listing", func(t *testing.T) {
		app := setupTestApp(t, "")
		require.NoError(t, app.board.Logout(context.Background()))
		cmd := NewLoginCommand(app.App)
		parseFlags(t, cmd, "--email", "ada@example.com", "--password", "secret")

		require.NoError(t, cmd.Execute(context.Background(), nil))

		assert.Equal(t, "Logged in as ada@example.com\n", app.out.String())
		assert.NoError(t, app.board.Refresh(context.Background()))
	})

	t.Run("should report invalid credentials", func(t *testing.T) {
		app := setupTestApp(t, "")
		cmd := NewLoginCommand(app.App)
		parseFlags(t, cmd, "--email", "ada@example.com", "--password", "wrong")

		err := cmd.Execute(context.Background(), nil)

		require.Error(t, err)
		assert.Equal(t, "Invalid login credentials", err.Error())
	})

	t.Run("should validate the email before calling the service", func(t *testing.T) {
		app := setupTestApp(t, "")
		cmd := NewLoginCommand(app.App)
		parseFlags(t, cmd, "--email", "not-an-email", "--password", "secret")

		err := cmd.Execute(context.Background(), nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "email has invalid format")
	})
}

func TestLogoutCommand_Execute(t *testing.T) {
	app := setupTestApp(t, "")

	require.NoError(t, NewLogoutCommand(app.App).Execute(context.Background(), nil))

	assert.Equal(t, "Logged out\n", app.out.String())
	assert.Error(t, app.board.Refresh(context.Background()))
}
