// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package handlers implements CLI command execution logic.
package handlers

import (
	"context"
	"io"
	"time"

	cliAdapter "github.com/janderssonse/blueprints/internal/adapters/cli"
)

// BaseHandler provides common functionality for all command handlers.
type BaseHandler struct {
	Verbose bool
	JSON    bool
	Quiet   bool
	Timeout time.Duration
	Output  *cliAdapter.OutputAdapter
}

// NewBaseHandler creates a new base handler writing results to writer.
func NewBaseHandler(writer io.Writer, verbose, json, quiet bool, timeout time.Duration) *BaseHandler {
	return &BaseHandler{
		Verbose: verbose,
		JSON:    json,
		Quiet:   quiet,
		Timeout: timeout,
		Output:  cliAdapter.OutputFromFlags(writer, json, quiet),
	}
}

// WithTimeout applies timeout to context if configured.
func (h *BaseHandler) WithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.Timeout > 0 {
		return context.WithTimeout(ctx, h.Timeout)
	}

	return ctx, func() {}
}

// GetOutput returns the output port for CLI rendering.
func (h *BaseHandler) GetOutput() *cliAdapter.OutputAdapter {
	if h.Output == nil {
		h.Output = cliAdapter.OutputFromFlags(io.Discard, h.JSON, h.Quiet)
	}

	return h.Output
}
