// Package remote talks to the task service's REST API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"task-manager/internal/errors"
	"task-manager/internal/logging"
)

// DefaultBaseURL is where the task service listens when nothing is configured
const DefaultBaseURL = "http://localhost:3000/"

const maxErrorBody = 4 << 10

// Options configures a Client
type Options struct {
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *logging.Logger
}

// Client implements the task repository and auth client over HTTP
type Client struct {
	baseURL string
	client  *http.Client
	logger  *logging.Logger
}

// New creates a client for the service at baseURL
func New(baseURL string, opts Options) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.NewInvalidInputError("base_url", baseURL, "must be an absolute http(s) URL")
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	return &Client{
		baseURL: u.String(),
		client:  httpClient,
		logger:  logger,
	}, nil
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// do sends one request. A nil in is sent without a body; a nil out discards the
// response body. token is omitted from the request when empty.
func (c *Client) do(ctx context.Context, method, token string, in, out any, elem ...string) error {
	endpoint, err := url.JoinPath(c.baseURL, elem...)
	if err != nil {
		return errors.NewInvalidInputError("path", strings.Join(elem, "/"), err.Error())
	}
	path := "/" + strings.Join(elem, "/")

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		if stderrors.Is(err, context.DeadlineExceeded) || isTimeout(err) {
			return errors.NewTimeoutError(method+" "+path, c.client.Timeout)
		}
		return errors.NewTransportError(method, path, 0, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContextf(ctx, "%s %s -> %d (%s)", method, path, resp.StatusCode, time.Since(start).Round(time.Millisecond))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewTransportError(method, path, resp.StatusCode, serverError(resp))
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewTransportError(method, path, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err))
	}
	if len(bytes.TrimSpace(respBody)) == 0 {
		return errEmptyBody
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.NewTransportError(method, path, resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	return nil
}

var errEmptyBody = stderrors.New("empty response body")

// serverError extracts the service's message/error field, falling back to the raw body
func serverError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var payload errorResponse
	if json.Unmarshal(raw, &payload) == nil {
		if payload.Message != "" {
			return fmt.Errorf("%d: %s", resp.StatusCode, payload.Message)
		}
		if payload.Error != "" {
			return fmt.Errorf("%d: %s", resp.StatusCode, payload.Error)
		}
	}
	if text := strings.TrimSpace(string(raw)); text != "" {
		return fmt.Errorf("%d: %s", resp.StatusCode, text)
	}
	return fmt.Errorf("%d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

func isTimeout(err error) bool {
	var timeout interface{ Timeout() bool }
	return stderrors.As(err, &timeout) && timeout.Timeout()
}

// statusOf returns the HTTP status recorded on a transport error, or 0
func statusOf(err error) int {
	appErr, ok := errors.AsAppError(err)
	if !ok || !appErr.IsType(errors.ErrorTypeTransport) {
		return 0
	}
	status, _ := appErr.GetContext("status")
	code, _ := status.(int)
	return code
}
