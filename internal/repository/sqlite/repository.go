package sqlite

import (
	"context"
	"database/sql"
	"time"

	"task-manager/internal/errors"
	"task-manager/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

const (
	defaultQueryTimeout = 10 * time.Second
	defaultWriteTimeout = 5 * time.Second
)

// Options tunes per-statement timeouts. Zero values fall back to the defaults.
type Options struct {
	QueryTimeout time.Duration
	WriteTimeout time.Duration
}

// Repository defines the credential storage operations
type Repository interface {
	SaveSession(ctx context.Context, session *Session) error
	GetSession(ctx context.Context) (*Session, error)
	TouchSession(ctx context.Context, at time.Time) error
	DeleteSession(ctx context.Context) error

	Close() error
}

// SQLiteRepository keeps the bearer token of the logged-in user between runs.
// It holds at most one session.
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
	now          func() time.Time
}

// New opens (or creates) the database at dbPath with default timeouts
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithOptions(dbPath, Options{})
}

// NewWithOptions opens (or creates) the database at dbPath and runs pending migrations
func NewWithOptions(dbPath string, opts Options) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}
	if dbPath == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	repo := &SQLiteRepository{
		db:           db,
		queryTimeout: opts.QueryTimeout,
		writeTimeout: opts.WriteTimeout,
		now:          time.Now,
	}
	if repo.queryTimeout <= 0 {
		repo.queryTimeout = defaultQueryTimeout
	}
	if repo.writeTimeout <= 0 {
		repo.writeTimeout = defaultWriteTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), repo.writeTimeout)
	defer cancel()

	if err := migrations.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// SaveSession replaces the stored session
func (r *SQLiteRepository) SaveSession(ctx context.Context, session *Session) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	query := `
	INSERT INTO sessions (id, email, token, created_at, last_used_at)
	VALUES (1, ?, ?, ?, NULL)
	ON CONFLICT(id) DO UPDATE SET
		email = excluded.email,
		token = excluded.token,
		created_at = excluded.created_at,
		last_used_at = NULL`

	return ExecuteWithRowsAffected(ctx, r.db, query, "session", session.Email,
		session.Email, session.Token, FormatTimeForDB(session.CreatedAt))
}

// GetSession returns the stored session, or a not-found error when logged out
func (r *SQLiteRepository) GetSession(ctx context.Context) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, r.queryTimeout)
	defer cancel()

	query := `
	SELECT email, token, created_at, last_used_at
	FROM sessions
	WHERE id = 1`

	return QuerySingle(ctx, r.db, query, ScanSession, "session", "current")
}

// TouchSession records when the stored token was last handed out
func (r *SQLiteRepository) TouchSession(ctx context.Context, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	query := `UPDATE sessions SET last_used_at = ? WHERE id = 1`

	return ExecuteWithRowsAffected(ctx, r.db, query, "session", "current", FormatTimeForDB(at))
}

// DeleteSession removes the stored session
func (r *SQLiteRepository) DeleteSession(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.writeTimeout)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, r.db, `DELETE FROM sessions WHERE id = 1`, "session", "current")
}

// Token returns the stored bearer token. Without a session it fails with an
// auth error so callers can prompt for a login.
func (r *SQLiteRepository) Token(ctx context.Context) (string, error) {
	session, err := r.GetSession(ctx)
	if err != nil {
		if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
			return "", errors.NewAuthFailedError("Not logged in. Run 'tm login' first.", nil)
		}
		return "", err
	}

	// last-used tracking is informational only
	_ = r.TouchSession(ctx, r.now())

	return session.Token, nil
}

// Save stores the token issued for email, replacing any previous session
func (r *SQLiteRepository) Save(ctx context.Context, email, token string) error {
	if token == "" {
		return errors.NewValidationError("token cannot be empty", nil)
	}
	return r.SaveSession(ctx, &Session{
		Email:     email,
		Token:     token,
		CreatedAt: r.now(),
	})
}

// Clear removes the stored session. Clearing when logged out is not an error.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	err := r.DeleteSession(ctx)
	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		return nil
	}
	return err
}
