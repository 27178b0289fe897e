package remote

import (
	"context"
	stderrors "errors"
	"net/http"

	"task-manager/internal/errors"
)

// Register creates an account. The response body is ignored.
func (c *Client) Register(ctx context.Context, username, email, password string) error {
	req := registerRequest{Username: username, Email: email, Password: password}
	return c.do(ctx, http.MethodPost, "", req, nil, "auth", "register")
}

// Login exchanges credentials for a bearer token
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	var resp loginResponse
	err := c.do(ctx, http.MethodPost, "", loginRequest{Email: email, Password: password}, &resp, "auth", "login")
	if stderrors.Is(err, errEmptyBody) {
		return "", errors.NewTransportError(http.MethodPost, "/auth/login", http.StatusOK, err)
	}
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", errors.NewTransportError(http.MethodPost, "/auth/login", http.StatusOK, stderrors.New("response has no token"))
	}
	return resp.Token, nil
}
