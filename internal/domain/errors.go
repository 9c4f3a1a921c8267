// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Common domain errors.
var (
	ErrIndexUnavailable   = errors.New("template index unavailable")
	ErrFetchFailed        = errors.New("template detail fetch failed")
	ErrInvalidTemplateID  = errors.New("invalid template identifier")
	ErrInvalidDisplayMode = errors.New("invalid display mode")
	ErrBodyTooLarge       = errors.New("response body exceeds size limit")
	ErrTemplateNotFound   = errors.New("template not found")
)

// LoadError reports that the metadata index could not be retrieved or decoded.
// The catalog keeps whatever it held before; consumers show an error state.
type LoadError struct {
	Message string // Human-readable summary
	Err     error
}

// NewLoadError creates a LoadError with the specified message and cause.
func NewLoadError(message string, err error) *LoadError {
	return &LoadError{
		Message: message,
		Err:     err,
	}
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

// Unwrap exposes both the cause and ErrIndexUnavailable to errors.Is.
func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrIndexUnavailable}
	}

	return []error{ErrIndexUnavailable, e.Err}
}

// FetchError reports that the detail retrieval itself failed, as opposed to an
// artifact being absent.
type FetchError struct {
	TemplateID string
	Err        error
}

// NewFetchError creates a FetchError for templateID.
func NewFetchError(templateID string, err error) *FetchError {
	return &FetchError{
		TemplateID: templateID,
		Err:        err,
	}
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetching %q: %v", e.TemplateID, e.Err)
	}

	return fmt.Sprintf("fetching %q failed", e.TemplateID)
}

// Unwrap exposes both the cause and ErrFetchFailed to errors.Is.
func (e *FetchError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrFetchFailed}
	}

	return []error{ErrFetchFailed, e.Err}
}

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string   // User-friendly message
	Suggestions []string // Actionable suggestions
	ShowDetails bool     // Whether to show technical details
}

// getErrorMatchers returns error patterns and their corresponding info.
func getErrorMatchers() []struct {
	patterns []string
	getInfo  func(bool) ErrorInfo
} {
	return []struct {
		patterns []string
		getInfo  func(bool) ErrorInfo
	}{
		{
			patterns: []string{"connection refused", "no such host", "timeout", "deadline exceeded", "network is unreachable"},
			getInfo: func(verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Catalog server unreachable",
					Suggestions: []string{"Check the --base-url value", "Check your network connection"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"status 404", "not found"},
			getInfo: func(verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Not found on the catalog server",
					Suggestions: []string{"Verify that the server publishes /meta.json", "Use 'blueprints list' to see template identifiers"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"invalid character", "cannot unmarshal", "unexpected end of json"},
			getInfo: func(verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Template index is malformed",
					Suggestions: []string{"Check that meta.json is a JSON array of templates"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"size limit"},
			getInfo: func(verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Response too large",
					Suggestions: []string{"Raise max_body_bytes in config.toml"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"display mode"},
			getInfo: func(verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Unknown display mode",
					Suggestions: []string{"Use 'grid' or 'rows'"},
					ShowDetails: verbose,
				}
			},
		},
		{
			patterns: []string{"permission", "denied", "read-only file system"},
			getInfo: func(verbose bool) ErrorInfo {
				return ErrorInfo{
					Message:     "Cannot write preferences",
					Suggestions: []string{"Check permissions of $XDG_CONFIG_HOME/blueprints"},
					ShowDetails: verbose,
				}
			},
		},
	}
}

// GetErrorInfo analyzes an error and returns user-friendly information.
func GetErrorInfo(err error, verbose bool) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	errStr := strings.ToLower(err.Error())

	for _, matcher := range getErrorMatchers() {
		for _, pattern := range matcher.patterns {
			if strings.Contains(errStr, pattern) {
				return matcher.getInfo(verbose)
			}
		}
	}

	return ErrorInfo{
		Message:     "Operation failed",
		Suggestions: []string{"Run with --verbose for more details"},
		ShowDetails: verbose,
	}
}

// FormatErrorMessage formats an error for display.
func FormatErrorMessage(err error, verbose bool) string {
	info := GetErrorInfo(err, verbose)

	var result strings.Builder

	result.WriteString("✗ ")
	result.WriteString(info.Message)

	if info.ShowDetails && err != nil {
		result.WriteString("\n  Technical details: ")
		result.WriteString(err.Error())
	}

	switch {
	case len(info.Suggestions) > 0 && !verbose:
		result.WriteString(" (")
		result.WriteString(info.Suggestions[0])
		result.WriteString(")")
	case len(info.Suggestions) > 0:
		result.WriteString("\n  Suggestions:")

		for _, suggestion := range info.Suggestions {
			result.WriteString("\n    • ")
			result.WriteString(suggestion)
		}
	}

	return result.String()
}
