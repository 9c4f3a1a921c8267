// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package network reads the template catalog from the static file server.
package network

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/platform"
	"go.uber.org/zap"
)

// DefaultMaxBodyBytes caps every response read by the client.
const DefaultMaxBodyBytes = 4 << 20

// StatusError is returned for a response outside 2xx.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: status %d", e.URL, e.Code)
}

// Option customises an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *HTTPClient) {
		c.client = client
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *HTTPClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxBodyBytes caps response bodies.
func WithMaxBodyBytes(limit int64) Option {
	return func(c *HTTPClient) {
		if limit > 0 {
			c.maxBody = limit
		}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(agent string) Option {
	return func(c *HTTPClient) {
		c.userAgent = agent
	}
}

// HTTPClient performs GET requests against the catalog base URL.
type HTTPClient struct {
	baseURL   string
	client    *http.Client
	userAgent string
	maxBody   int64
	logger    *zap.Logger
}

// NewHTTPClient creates a client for baseURL with timeout.
func NewHTTPClient(baseURL string, timeout time.Duration, opts ...Option) *HTTPClient {
	client := &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		client:    platform.NewHTTPClient(timeout),
		userAgent: "blueprints",
		maxBody:   DefaultMaxBodyBytes,
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// BaseURL returns the server root without a trailing slash.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL
}

// URL joins path onto the base URL.
func (c *HTTPClient) URL(path string) string {
	return c.baseURL + path
}

// Close releases idle keep-alive connections.
func (c *HTTPClient) Close() {
	c.client.CloseIdleConnections()
}

// getBytes fetches path. A non-2xx response is reported as *StatusError and
// its body is discarded.
func (c *HTTPClient) getBytes(ctx context.Context, path string) ([]byte, error) {
	target := c.URL(path)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Debug("request failed", zap.String("url", target), zap.Error(err))

		return nil, fmt.Errorf("failed to get %s: %w", target, err)
	}

	defer func() {
		_ = resp.Body.Close()
	}()

	c.logger.Debug("response",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, c.maxBody))

		return nil, &StatusError{URL: target, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", target, err)
	}

	if int64(len(body)) > c.maxBody {
		return nil, fmt.Errorf("%s: %w (%d bytes)", target, domain.ErrBodyTooLarge, c.maxBody)
	}

	return body, nil
}

// isStatus reports whether err is a non-2xx response.
func isStatus(err error) bool {
	var statusErr *StatusError

	return errors.As(err, &statusErr)
}
