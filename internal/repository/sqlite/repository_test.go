package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "task-manager/internal/errors"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()

	repo, err := New(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func fixedNow(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestNewWithOptions_DefaultsTimeouts(t *testing.T) {
	repo, err := NewWithOptions(filepath.Join(t.TempDir(), "session.db"), Options{QueryTimeout: time.Second})
	require.NoError(t, err)
	defer repo.Close()

	assert.Equal(t, time.Second, repo.queryTimeout)
	assert.Equal(t, defaultWriteTimeout, repo.writeTimeout)
}

func TestNew_InvalidPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "session.db"))
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDatabase))
}

func TestGetSession_Empty(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.GetSession(context.Background())
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeNotFound))
}

func TestSaveSession_Replaces(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	created := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)

	require.NoError(t, repo.SaveSession(ctx, &Session{Email: "a@example.com", Token: "first", CreatedAt: created}))
	require.NoError(t, repo.TouchSession(ctx, created.Add(time.Hour)))
	require.NoError(t, repo.SaveSession(ctx, &Session{Email: "b@example.com", Token: "second", CreatedAt: created.Add(2 * time.Hour)}))

	session, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b@example.com", session.Email)
	assert.Equal(t, "second", session.Token)
	assert.True(t, created.Add(2*time.Hour).Equal(session.CreatedAt))
	assert.Nil(t, session.LastUsedAt)
}

func TestToken_NotLoggedIn(t *testing.T) {
	repo := setupTestDB(t)

	token, err := repo.Token(context.Background())
	assert.Empty(t, token)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeAuthFailed))
}

func TestToken_RecordsLastUse(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	login := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	used := login.Add(30 * time.Minute)

	repo.now = fixedNow(login)
	require.NoError(t, repo.Save(ctx, "ada@example.com", "tok-1"))

	repo.now = fixedNow(used)
	token, err := repo.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)

	session, err := repo.GetSession(ctx)
	require.NoError(t, err)
	require.NotNil(t, session.LastUsedAt)
	assert.True(t, used.Equal(*session.LastUsedAt))
}

func TestSave_RejectsEmptyToken(t *testing.T) {
	repo := setupTestDB(t)

	err := repo.Save(context.Background(), "ada@example.com", "")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeValidation))
}

func TestClear(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "ada@example.com", "tok-1"))
	require.NoError(t, repo.Clear(ctx))

	_, err := repo.Token(ctx)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeAuthFailed))

	// already logged out
	assert.NoError(t, repo.Clear(ctx))
}

func TestSession_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.db")
	ctx := context.Background()

	repo, err := New(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, "ada@example.com", "tok-1"))
	require.NoError(t, repo.Close())

	reopened, err := New(path)
	require.NoError(t, err)
	defer reopened.Close()

	token, err := reopened.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
}
