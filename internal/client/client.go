// Package client provides a client for reading the resolved configuration
// from a running coderws server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/nauticalab/coder-workspace/internal/api"
	"github.com/nauticalab/coder-workspace/internal/config"
	"github.com/nauticalab/coder-workspace/internal/store"
)

const (
	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second
)

// Client represents an HTTP client for the coderws API
type Client struct {
	http   *resty.Client
	plugin string
}

// Option configures a Client.
type Option func(*Client)

// WithPlugin sets the plugin name used to build the Gerrit config path.
func WithPlugin(name string) Option {
	return func(c *Client) {
		c.plugin = name
	}
}

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.SetTimeout(d)
	}
}

// WithRetries retries failed requests up to count times.
func WithRetries(count int) Option {
	return func(c *Client) {
		c.http.SetRetryCount(count).SetRetryWaitTime(200 * time.Millisecond)
	}
}

// NewClient creates a new API client for the server at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(DefaultTimeout).
			SetHeader("Accept", "application/json"),
		plugin: store.DefaultPluginName,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchConfig reads the configuration from the Gerrit-compatible endpoint.
// The XSSI guard line is stripped when present.
func (c *Client) FetchConfig(ctx context.Context) (*config.Configuration, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&api.ErrorResponse{}).
		SetPathParam("plugin", c.plugin).
		Get("/config/server/{plugin}~config")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return nil, handleError(resp)
	}

	body := bytes.TrimPrefix(resp.Body(), []byte(api.XSSIPrefix))
	var cfg config.Configuration
	if err := json.Unmarshal(body, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &cfg, nil
}

// Health checks the health of the API server
func (c *Client) Health(ctx context.Context) (*api.HealthResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&api.HealthResponse{}).
		SetError(&api.ErrorResponse{}).
		Get("/api/v1/health")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return nil, handleError(resp)
	}
	return resp.Result().(*api.HealthResponse), nil
}

// Version returns the server build information.
func (c *Client) Version(ctx context.Context) (*api.VersionResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&api.VersionResponse{}).
		SetError(&api.ErrorResponse{}).
		Get("/api/v1/version")
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return nil, handleError(resp)
	}
	return resp.Result().(*api.VersionResponse), nil
}

// handleError turns a non-2xx response into an error, preferring the
// server's ErrorResponse message.
func handleError(resp *resty.Response) error {
	if errResp, ok := resp.Error().(*api.ErrorResponse); ok && errResp.Message != "" {
		return fmt.Errorf("API error: %s (code: %d)", errResp.Message, errResp.Code)
	}
	return fmt.Errorf("HTTP %d: %s", resp.StatusCode(), resp.String())
}
