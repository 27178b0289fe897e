package services

import (
	"context"
	"strings"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
	"task-manager/internal/validation"
)

const (
	MsgRegistered         = "User registered successfully"
	MsgRegistrationFailed = "Registration failed. Please try again."
	MsgInvalidLogin       = "Invalid login credentials"
)

// AuthService runs the register, login and logout flows
type AuthService struct {
	client    AuthClient
	store     SessionStore
	validator *validation.CredentialValidator
	logger    *logging.Logger
}

// NewAuthService creates an AuthService. A nil logger discards output.
func NewAuthService(client AuthClient, store SessionStore, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Discard()
	}
	return &AuthService{
		client:    client,
		store:     store,
		validator: validation.NewCredentialValidator(),
		logger:    logger,
	}
}

// Register creates an account and returns the message to show the user.
// Registering does not log in.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if err := s.validator.ValidateRegistration(username, email, password); err != nil {
		return "", asAppError(err)
	}

	if err := s.client.Register(ctx, username, email, password); err != nil {
		s.logger.DebugContextf(ctx, "register %s failed: %v", email, err)
		return "", errors.NewAuthFailedError(MsgRegistrationFailed, err)
	}
	return MsgRegistered, nil
}

// Login exchanges credentials for a token and stores it
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)

	if err := s.validator.ValidateLogin(email, password); err != nil {
		return asAppError(err)
	}

	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.logger.DebugContextf(ctx, "login %s failed: %v", email, err)
		return errors.NewAuthFailedError(MsgInvalidLogin, err)
	}

	return s.store.Save(ctx, email, token)
}

// Logout forgets the stored token. Logging out twice is fine.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}

func asAppError(err error) error {
	if ve, ok := err.(*validation.ValidationError); ok {
		return ve.ToAppError()
	}
	return err
}
