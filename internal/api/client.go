// Package api is the client for the remote storefront REST API.
//
// Every response body passes through the normalizers in normalize.go before
// it reaches the rest of the program, so callers only ever see the domain
// models. Non-2xx responses become *Error.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const DefaultBaseURL = "https://jaanmak-backend.onrender.com"

const fallbackMessage = "An error occurred"

var (
	// ErrUnauthorized matches any *Error with status 401.
	ErrUnauthorized = errors.New("api: unauthorized")
	// ErrNotFound matches any *Error with status 404.
	ErrNotFound = errors.New("api: not found")
)

// Error is a non-2xx response. Message is the server's `message` field, or
// a generic message when the body carried none.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	}
	return false
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func New(baseURL string, timeout time.Duration, logger *zap.SugaredLogger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// do sends one request. A non-empty token is sent as a bearer credential.
// out may be nil when the response body is not needed.
func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("api %s %s: encode: %w", method, path, err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("api %s %s: %w", method, path, err)
	}
	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debugw("api request failed", "method", method, "path", path, "request_id", reqID, "error", err)
		return fmt.Errorf("api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.logger.Debugw("api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
		"request_id", reqID,
	)
	if err != nil {
		return fmt.Errorf("api %s %s: read body: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return responseError(resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("api %s %s: decode: %w", method, path, err)
	}
	return nil
}

func responseError(status int, raw []byte) *Error {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return &Error{Status: status, Message: fallbackMessage}
	}
	if body.Message == "" {
		msg := http.StatusText(status)
		if msg == "" {
			msg = fallbackMessage
		}
		return &Error{Status: status, Message: msg}
	}
	return &Error{Status: status, Message: body.Message}
}

type messageResponse struct {
	Message string `json:"message"`
}
