package config

import (
	"fmt"
	"os"

	"task-manager/internal/repository/sqlite"
)

// CreateSessionStore opens the credential database described by config,
// creating its directory if needed
func CreateSessionStore(config *Config) (*sqlite.SQLiteRepository, error) {
	if err := os.MkdirAll(config.Database.Dir, os.FileMode(config.Database.DirPermissions)); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	repo, err := sqlite.NewWithOptions(config.GetDatabasePath(), sqlite.Options{
		QueryTimeout: config.GetQueryTimeout(),
		WriteTimeout: config.GetWriteTimeout(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return repo, nil
}

// CreateTestSessionStore creates an in-memory credential store for testing
func CreateTestSessionStore() (*sqlite.SQLiteRepository, error) {
	repo, err := sqlite.New(":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize test database: %w", err)
	}

	return repo, nil
}
