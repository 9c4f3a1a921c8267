// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package models implements the blueprints screens as Bubble Tea models.
package models

import (
	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/janderssonse/blueprints/internal/domain"
)

// Screen identifies what the App shows.
type Screen int

// Screens.
const (
	LoadingScreen Screen = iota
	ErrorScreen
	BrowseScreen
	DetailScreen
	TagsScreen
)

// Key constants shared by the screens.
const (
	KeyEnter = "enter"
	KeyEsc   = "esc"
)

// Common messages.
const (
	GoodbyeMessage = "Goodbye!\n"
	NoConfigFiles  = "No configuration files available for this template."
	NoMatches      = "No templates match the current filters."
)

// IndexLoadedMsg carries a freshly loaded catalog.
type IndexLoadedMsg struct {
	Templates []domain.Template
}

// IndexFailedMsg reports a failed index load.
type IndexFailedMsg struct {
	Err error
}

// RetryLoadMsg asks the App to load the index again.
type RetryLoadMsg struct{}

// OpenDetailMsg asks the App to open the detail view for a template.
type OpenDetailMsg struct {
	TemplateID string
}

// DetailLoadedMsg carries the result of one detail fetch.
type DetailLoadedMsg struct {
	Ticket catalog.Ticket
	Detail domain.Detail
	Err    error
}

// CloseDetailMsg dismisses the detail view.
type CloseDetailMsg struct{}

// OpenTagsMsg opens the tag picker.
type OpenTagsMsg struct{}

// CloseTagsMsg returns from the tag picker.
type CloseTagsMsg struct{}

// StatusMsg shows a transient line in the footer.
type StatusMsg struct {
	Text  string
	Error bool
}
