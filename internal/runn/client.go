// Copyright 2026 Runn MCP Server Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package runn is the HTTP adapter for the Runn resource-planning API.
//
// The adapter is deliberately thin: it attaches the bearer key, speaks
// JSON, and walks cursor pagination. Upstream payloads are kept as untyped
// records; the server never validates them beyond the handful of fields the
// report engine reads.
package runn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gemini2026/runn-mcp-server/internal/config"
)

// UpstreamError is returned for any non-2xx upstream response. The status
// and upstream-provided error body are carried verbatim to the caller; no
// retry is attempted here.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("runn: upstream status %d: %s", e.Status, e.Body)
}

// Client issues authenticated requests against the Runn API. A Client is
// immutable after construction and safe for concurrent use.
type Client struct {
	baseURL  string
	apiKey   string
	maxPages int
	httpc    *http.Client
	logger   *slog.Logger
}

// Options configures optional Client collaborators.
type Options struct {
	// HTTPClient overrides the transport, primarily for tests. If nil, a
	// client with the configured per-request timeout is used.
	HTTPClient *http.Client

	// Logger for request activity. If nil, slog.Default is used.
	Logger *slog.Logger
}

// NewClient builds a Client from the process configuration.
func NewClient(cfg *config.Config, opts *Options) *Client {
	if opts == nil {
		opts = &Options{}
	}
	httpc := opts.HTTPClient
	if httpc == nil {
		httpc = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		maxPages: cfg.MaxPages,
		httpc:    httpc,
		logger:   logger,
	}
}

// Request performs a single upstream call and returns the HTTP status and
// the raw JSON body. path is upstream-relative and forwarded verbatim;
// there is no whitelist, the generic passthrough tool depends on that.
// A non-2xx response returns a *UpstreamError.
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body any) (int, json.RawMessage, error) {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("runn: encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("runn: building request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	c.logger.Debug("runn request", "method", method, "path", path)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("runn: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("runn: reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, nil, &UpstreamError{Status: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}
	return resp.StatusCode, data, nil
}
