// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package console writes human-facing status messages to stderr.
package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// OutputState holds global output configuration.
type OutputState struct {
	Verbose bool
	JSON    bool
	Quiet   bool

	// Err receives status messages. Nil means os.Stderr.
	Err io.Writer
}

// DefaultOutput provides output formatting utilities.
var DefaultOutput = &OutputState{} //nolint:gochecknoglobals

// SetMode configures output mode.
func (o *OutputState) SetMode(verbose, json, quiet bool) {
	o.Verbose = verbose
	o.JSON = json
	o.Quiet = quiet
}

// IsTTY checks if fd is a terminal (not piped/redirected).
func (o *OutputState) IsTTY(fd uintptr) bool {
	return term.IsTerminal(int(fd)) //nolint:gosec // file descriptors fit in int
}

// IsInteractive reports whether both stdin and stdout are terminals.
func (o *OutputState) IsInteractive() bool {
	return o.IsTTY(os.Stdin.Fd()) && o.IsTTY(os.Stdout.Fd())
}

// Bold formats text with bold when in TTY, uppercase when piped.
func (o *OutputState) Bold(text string) string {
	if o.JSON {
		return text
	}

	// Check no-color.org standards
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return text
	}

	if o.IsTTY(os.Stdout.Fd()) {
		return "\033[1m" + text + "\033[0m"
	}

	return strings.ToUpper(text)
}

// Progressf writes progress messages (only if verbose and not JSON).
func (o *OutputState) Progressf(format string, args ...any) {
	if o.Verbose && !o.JSON {
		fmt.Fprintf(o.errWriter(), format+"\n", args...)
	}
}

// Successf writes success messages (only if not JSON or quiet).
func (o *OutputState) Successf(format string, args ...any) {
	if !o.JSON && !o.Quiet {
		fmt.Fprintf(o.errWriter(), "✓ "+format+"\n", args...)
	}
}

// Warningf writes warning messages (always visible).
func (o *OutputState) Warningf(format string, args ...any) {
	fmt.Fprintf(o.errWriter(), "⚠ "+format+"\n", args...)
}

// Errorf writes a preformatted error message (always visible).
func (o *OutputState) Errorf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !strings.HasPrefix(msg, "✗ ") {
		msg = "✗ " + msg
	}

	fmt.Fprintln(o.errWriter(), msg)
}

func (o *OutputState) errWriter() io.Writer {
	if o.Err != nil {
		return o.Err
	}

	return os.Stderr
}
