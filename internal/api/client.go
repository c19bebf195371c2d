// Package api is the HTTP client for the shopping-list backend. Every call
// is a single attempt: errors are reported to the caller and never retried
// here.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Config holds client configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks to the backend. The bearer token is set by the session
// manager after login/restore and cleared on logout; requests marked
// authed send it as an Authorization header.
type Client struct {
	mu         sync.RWMutex
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the given backend.
func NewClient(cfg Config) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// SetToken installs or clears the bearer token used for authed requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// Token returns the currently installed bearer token.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

const (
	authed   = true
	unauthed = false
)

// do performs one request. A non-nil body is sent as JSON; a non-nil out
// receives the decoded response body. Non-2xx statuses become
// *StatusError with the server's message when the body carries one;
// 2xx bodies that fail to parse become ErrNonJSON.
func (c *Client) do(ctx context.Context, method, path string, body, out any, auth bool) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if auth {
		if token := c.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("%w (status %d)", ErrNonJSON, resp.StatusCode)
		}
	}
	return nil
}
