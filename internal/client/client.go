// Package client is the typed HTTP client for the taskboard API. It is the
// concrete Remote Task Service implementation consumed by the action
// controller.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Basantrajshakti/taskboard/pkg/cerr"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type Option func(*Client)

// WithToken sets the bearer session token sent on every request.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the session token, e.g. after sign-in.
func (c *Client) SetToken(token string) {
	c.token = token
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do performs one JSON request/response round trip. Error bodies are decoded
// back into cerr errors so callers see the server's code and message.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return cerr.NewError(cerr.Unavailable, "failed to reach server", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var eb errorBody
		if decErr := json.NewDecoder(resp.Body).Decode(&eb); decErr == nil && eb.Message != "" {
			return cerr.NewError(cerr.CodeFromString(eb.Code), eb.Message, nil)
		}
		code := cerr.CodeFromHTTPStatus(resp.StatusCode)
		return cerr.NewError(code, http.StatusText(resp.StatusCode), nil)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return cerr.NewError(cerr.Unknown, "malformed server response", err)
	}
	return nil
}
