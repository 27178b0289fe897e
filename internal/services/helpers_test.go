package services

import (
	"context"
	"time"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
)

// fakeSession is an in-memory SessionStore that counts Token calls
type fakeSession struct {
	token      string
	email      string
	tokenCalls int
	saveErr    error
}

func (s *fakeSession) Token(ctx context.Context) (string, error) {
	s.tokenCalls++
	if s.token == "" {
		return "", errors.NewAuthFailedError("Not logged in", nil)
	}
	return s.token, nil
}

func (s *fakeSession) Save(ctx context.Context, email, token string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.email, s.token = email, token
	return nil
}

func (s *fakeSession) Clear(ctx context.Context) error {
	s.email, s.token = "", ""
	return nil
}

func dueIn(now time.Time, d time.Duration) *time.Time {
	t := now.Add(d)
	return &t
}

func task(id string, status domain.Status) *domain.Task {
	return &domain.Task{ID: id, Title: "Task " + id, Description: "about " + id, Status: status, Priority: domain.PriorityLow}
}

func ids(tasks []*domain.Task) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}
