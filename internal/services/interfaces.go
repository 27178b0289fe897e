package services

import (
	"context"
	"time"

	"task-manager/internal/domain"
)

// TaskRepository is the remote task store. Every call carries the bearer
// token of the signed-in user.
type TaskRepository interface {
	List(ctx context.Context, token string) ([]*domain.Task, error)
	Create(ctx context.Context, draft domain.TaskDraft, token string) (*domain.Task, error)
	Update(ctx context.Context, id string, draft domain.TaskDraft, token string) (*domain.Task, error)
	Remove(ctx context.Context, id string, token string) error
}

// AuthClient registers accounts and exchanges credentials for a token
type AuthClient interface {
	Register(ctx context.Context, username, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
}

// SessionProvider hands out the current bearer token
type SessionProvider interface {
	Token(ctx context.Context) (string, error)
}

// SessionStore persists the token between runs
type SessionStore interface {
	SessionProvider
	Save(ctx context.Context, email, token string) error
	Clear(ctx context.Context) error
}

// Clock abstracts the wall clock so due-soon results can be tested
type Clock interface {
	Now() time.Time
}
