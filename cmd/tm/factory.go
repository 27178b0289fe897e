package main

import (
	"fmt"
	"time"

	"task-manager/internal/api"
	"task-manager/internal/config"
	"task-manager/internal/logging"
	"task-manager/internal/repository/memory"
	"task-manager/internal/repository/remote"
	"task-manager/internal/services"
	"task-manager/internal/validation"
)

// boardFactory creates task boards for the configured environment
type boardFactory struct {
	now func() time.Time
}

func newBoardFactory() *boardFactory {
	return &boardFactory{now: time.Now}
}

// create builds the task board. The session store lives on disk in every
// environment; only the task repository changes.
func (f *boardFactory) create(cfg *config.Config, logger *logging.Logger) (api.TaskBoard, func() error, error) {
	sessions, err := config.CreateSessionStore(cfg)
	if err != nil {
		return nil, nil, err
	}

	repo, auth, err := f.createRepository(cfg, logger)
	if err != nil {
		sessions.Close()
		return nil, nil, err
	}

	board := api.NewTaskBoard(repo, auth, sessions, api.Options{
		WindowDays: cfg.Notifications.WindowDays,
		Clock:      services.RealClock{},
		Logger:     logger,
		Validator:  validation.NewDraftValidatorWith(validation.NewValidatorWithConfig(cfg)),
	})
	return board, sessions.Close, nil
}

func (f *boardFactory) createRepository(cfg *config.Config, logger *logging.Logger) (services.TaskRepository, services.AuthClient, error) {
	switch cfg.Application.Environment {
	case config.EnvTesting:
		// demo@example.com / demo, reseeded on every run
		repo := memory.NewDemoRepository(f.now())
		return repo, repo, nil
	default:
		client, err := remote.New(cfg.API.BaseURL, remote.Options{
			Timeout: cfg.API.Timeout,
			Logger:  logger,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create task service client: %w", err)
		}
		return client, client, nil
	}
}
