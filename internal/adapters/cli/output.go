// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides output adapters for CLI operations.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/janderssonse/blueprints/internal/domain"
)

var (
	// ErrUnsupportedFormat is returned when an unsupported output format is requested.
	ErrUnsupportedFormat = errors.New("unsupported output format")
)

var _ domain.OutputPort = (*OutputAdapter)(nil)

// OutputAdapter implements domain.OutputPort for CLI output.
type OutputAdapter struct {
	writer io.Writer
	format OutputFormat
	quiet  bool
}

// OutputFormat represents the output format type.
type OutputFormat int

const (
	// TextFormat outputs human-readable text.
	TextFormat OutputFormat = iota
	// JSONFormat outputs machine-readable JSON.
	JSONFormat
)

// NewOutputAdapter creates a new output adapter writing to stdout.
func NewOutputAdapter(format OutputFormat, quiet bool) *OutputAdapter {
	return NewOutputAdapterWithWriter(os.Stdout, format, quiet)
}

// NewOutputAdapterWithWriter creates a new output adapter with a custom writer.
func NewOutputAdapterWithWriter(writer io.Writer, format OutputFormat, quiet bool) *OutputAdapter {
	return &OutputAdapter{
		writer: writer,
		format: format,
		quiet:  quiet,
	}
}

// Success outputs a message, or data as JSON in JSON mode.
// In quiet text mode only the message is suppressed.
func (o *OutputAdapter) Success(message string, data any) error {
	if o.format == JSONFormat && data != nil {
		return o.outputJSON(data)
	}

	if message != "" && !o.quiet {
		_, _ = fmt.Fprintln(o.writer, message)
	}

	return nil
}

// Error outputs an error message.
func (o *OutputAdapter) Error(message string) error {
	if o.quiet {
		return nil
	}

	if o.format == JSONFormat {
		return o.outputJSON(map[string]string{"error": message})
	}

	_, _ = fmt.Fprintf(o.writer, "Error: %s\n", message)

	return nil
}

// Info outputs an informational message.
func (o *OutputAdapter) Info(message string) error {
	if o.quiet {
		return nil
	}

	if o.format == JSONFormat {
		return o.outputJSON(map[string]string{"info": message})
	}

	_, _ = fmt.Fprintln(o.writer, message)

	return nil
}

// Value writes a primary result line. It is printed even in quiet mode,
// since scripts depend on it.
func (o *OutputAdapter) Value(value string) error {
	if o.format == JSONFormat {
		return o.outputJSON(map[string]string{"value": value})
	}

	_, err := fmt.Fprintln(o.writer, value)

	return err
}

// Table outputs tabular data.
func (o *OutputAdapter) Table(headers []string, rows [][]string) error {
	if o.format == JSONFormat {
		return o.outputJSON(map[string]any{
			"headers": headers,
			"rows":    rows,
		})
	}

	w := tabwriter.NewWriter(o.writer, 0, 0, 2, ' ', 0)

	defer func() { _ = w.Flush() }()

	if !o.quiet {
		_, _ = fmt.Fprintln(w, strings.Join(headers, "\t"))

		separators := make([]string, len(headers))
		for i := range headers {
			separators[i] = strings.Repeat("-", len(headers[i]))
		}

		_, _ = fmt.Fprintln(w, strings.Join(separators, "\t"))
	}

	for _, row := range rows {
		_, _ = fmt.Fprintln(w, strings.Join(row, "\t"))
	}

	return nil
}

// IsQuiet returns true if output should be suppressed.
func (o *OutputAdapter) IsQuiet() bool {
	return o.quiet
}

// IsJSON reports whether the adapter emits JSON.
func (o *OutputAdapter) IsJSON() bool {
	return o.format == JSONFormat
}

// Writer exposes the destination for free-form text.
func (o *OutputAdapter) Writer() io.Writer {
	return o.writer
}

// outputJSON outputs data as JSON.
func (o *OutputAdapter) outputJSON(data any) error {
	encoder := json.NewEncoder(o.writer)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	return encoder.Encode(data)
}

// ParseOutputFormat parses a string into an OutputFormat.
func ParseOutputFormat(format string) (OutputFormat, error) {
	switch strings.ToLower(format) {
	case "", "text":
		return TextFormat, nil
	case "json":
		return JSONFormat, nil
	default:
		return TextFormat, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
}

// OutputFromFlags creates an OutputAdapter from the global flags.
func OutputFromFlags(writer io.Writer, jsonFlag, quietFlag bool) *OutputAdapter {
	format := TextFormat
	if jsonFlag {
		format = JSONFormat
	}

	return NewOutputAdapterWithWriter(writer, format, quietFlag)
}
