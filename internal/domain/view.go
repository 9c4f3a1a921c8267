// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"fmt"
	"strings"
)

// DisplayMode is the grid/rows rendering preference.
type DisplayMode string

// Supported display modes.
const (
	ViewGrid DisplayMode = "grid"
	ViewRows DisplayMode = "rows"

	DefaultView = ViewGrid
)

// ParseDisplayMode validates a persisted or user-supplied mode.
func ParseDisplayMode(raw string) (DisplayMode, error) {
	switch mode := DisplayMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case ViewGrid, ViewRows:
		return mode, nil
	default:
		return DefaultView, fmt.Errorf("%w: %q", ErrInvalidDisplayMode, raw)
	}
}

// Toggle returns the other display mode.
func (m DisplayMode) Toggle() DisplayMode {
	if m == ViewRows {
		return ViewGrid
	}

	return ViewRows
}

// IsValid reports whether m is one of the known modes.
func (m DisplayMode) IsValid() bool {
	return m == ViewGrid || m == ViewRows
}

func (m DisplayMode) String() string {
	return string(m)
}
