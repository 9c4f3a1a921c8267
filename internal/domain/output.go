// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

// OutputPort defines the interface for presenting command results.
// This is a domain port that adapters implement for different output formats.
type OutputPort interface {
	// Success outputs a success message with optional structured data
	Success(message string, data any) error

	// Error outputs an error message
	Error(message string) error

	// Info outputs an informational message
	Info(message string) error

	// Table outputs tabular data
	Table(headers []string, rows [][]string) error

	// IsQuiet returns true if output should be suppressed
	IsQuiet() bool
}

// ListResult is the structured form of a filtered catalog listing.
type ListResult struct {
	Templates []Template `json:"templates"`
	Matched   int        `json:"matched"`
	Total     int        `json:"total"`
	Search    string     `json:"search,omitempty"`
	Tags      []string   `json:"tags,omitempty"`
}

// TagsResult is the structured form of the tag universe.
type TagsResult struct {
	Tags []string `json:"tags"`
}

// ViewResult reports the persisted display mode.
type ViewResult struct {
	View DisplayMode `json:"view"`
}

// ShowResult is the structured form of one template with its artifacts.
// Absent artifacts are null.
type ShowResult struct {
	Template   Template `json:"template"`
	EditURL    string   `json:"edit_url"`
	Compose    *string  `json:"compose"`
	Config     *string  `json:"config"`
	Blob       string   `json:"blob"`
	Services   []string `json:"services,omitempty"`
	ConfigKeys []string `json:"config_keys,omitempty"`
}
