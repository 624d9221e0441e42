package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"
	log "github.com/sirupsen/logrus"

	"github.com/addisfleet/transport-admin/internal/session"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a non-2xx response from the backend. Message is the
// server-supplied detail when the body carries one, else a generic fallback.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Unwrap maps authentication failures onto ErrUnauthorized so callers can
// route them to the login flow with errors.Is.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// Client issues authenticated requests against the transport backend. Every
// call is attempted exactly once; retry policy, if any, belongs to callers.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

// NewClient creates a client for the given base URL, reading the bearer token
// from sess on each request.
func NewClient(baseURL string, sess *session.Session, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		session: sess,
	}
}

// do issues an authenticated request. A missing session token short-circuits
// with session.ErrNoToken before anything goes on the wire.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	token, err := c.session.Token()
	if err != nil {
		return err
	}
	return c.send(ctx, method, path, token, body, out)
}

// doAnon issues a request without an Authorization header.
func (c *Client) doAnon(ctx context.Context, method, path string, body, out any) error {
	return c.send(ctx, method, path, "", body, out)
}

func (c *Client) send(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if id, err := uuid.NewV4(); err == nil {
		req.Header.Set("X-Request-ID", id.String())
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	log.WithFields(log.Fields{"method": method, "path": path}).Debug("api request")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Message: errorMessage(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// errorMessage pulls the human-readable message out of an error body,
// preferring "detail" over "error", with a generic fallback.
func errorMessage(body []byte) string {
	var eb struct {
		Detail string `json:"detail"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Detail != "" {
			return eb.Detail
		}
		if eb.Error != "" {
			return eb.Error
		}
	}
	return "request failed"
}
