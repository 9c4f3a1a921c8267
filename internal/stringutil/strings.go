// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package stringutil provides string helpers shared by the catalog and the TUI.
package stringutil

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const ellipsis = "…"

// ContainsIgnoreCase checks if text contains substr (case-insensitive).
// An empty substr always matches.
func ContainsIgnoreCase(text, substr string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(substr))
}

// Truncate shortens text to at most width terminal cells, appending an ellipsis
// when something was cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}

	return runewidth.Truncate(text, width, ellipsis)
}

// PadRight pads text with spaces to exactly width cells, truncating first if needed.
func PadRight(text string, width int) string {
	return runewidth.FillRight(Truncate(text, width), width)
}

// Width returns the number of terminal cells text occupies.
func Width(text string) int {
	return runewidth.StringWidth(text)
}
