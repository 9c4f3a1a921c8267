// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import "github.com/janderssonse/blueprints/internal/domain"

// Accessor extracts one string field from an item.
type Accessor[T any] func(T) string

// Option is a key/label pair for pickers.
type Option struct {
	Key   string
	Label string
}

// Options maps items to picker options using explicit accessors.
func Options[T any](items []T, key, label Accessor[T]) []Option {
	options := make([]Option, 0, len(items))

	for _, item := range items {
		options = append(options, Option{Key: key(item), Label: label(item)})
	}

	return options
}

// TemplateID is the identifier accessor for templates.
func TemplateID(t domain.Template) string { return t.ID }

// TemplateName is the display-name accessor for templates.
func TemplateName(t domain.Template) string { return t.Name }

// TemplateLabel renders "Name (version)" for pickers.
func TemplateLabel(t domain.Template) string {
	if t.Version == "" {
		return t.Name
	}

	return t.Name + " (" + t.Version + ")"
}

// Identity is the accessor for plain string items such as tags.
func Identity(s string) string { return s }
