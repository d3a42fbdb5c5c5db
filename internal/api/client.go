// Package api is the single HTTP entry point to the external task backend.
// It groups the REST surface into four resource families (auth, users, tasks,
// categories), injects the bearer token on every request, and invalidates the
// session on any authorization failure. Failures are surfaced unchanged;
// there are no retries.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// TokenSource supplies the persisted bearer token, when one exists.
type TokenSource interface {
	Token() (string, bool)
}

type ClientConfig struct {
	BaseURL string
	// HTTPClient defaults to one with a 15s timeout.
	HTTPClient *http.Client
	Tokens     TokenSource
	// OnUnauthorized runs once per 401/403 response, before the call returns
	// ErrUnauthorized. It clears the session; callers cannot opt out.
	OnUnauthorized func()
}

type Client struct {
	baseURL        string
	http           *http.Client
	tokens         TokenSource
	onUnauthorized func()

	Auth       *AuthAPI
	Users      *UserAPI
	Tasks      *TaskAPI
	Categories *CategoryAPI
}

func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	if cfg.Tokens == nil {
		return nil, fmt.Errorf("api: Tokens is required")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	c := &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           httpClient,
		tokens:         cfg.Tokens,
		onUnauthorized: cfg.OnUnauthorized,
	}
	c.Auth = &AuthAPI{c: c}
	c.Users = &UserAPI{c: c}
	c.Tasks = &TaskAPI{c: c}
	c.Categories = &CategoryAPI{c: c}
	return c, nil
}

// do issues one request and decodes the JSON response into out (skipped when
// out is nil). A 401/403 triggers the unauthorized hook and ErrUnauthorized;
// any other non-2xx status becomes an *APIError carrying the backend payload.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token, ok := c.tokens.Token(); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if isAuthFailure(resp.StatusCode) {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return fmt.Errorf("%s %s returned %d: %w", method, path, resp.StatusCode, ErrUnauthorized)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
