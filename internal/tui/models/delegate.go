// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/blueprints/internal/tui/styles"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TagItem is one entry of the tag picker.
type TagItem struct {
	Name  string
	Count int
}

// FilterValue implements the list.Item interface.
func (t TagItem) FilterValue() string {
	return t.Name
}

// TagDelegate implements the list.ItemDelegate interface for tag items.
type TagDelegate struct {
	styles     *styles.Styles
	isSelected func(string) bool
	caser      cases.Caser
}

// NewTagDelegate creates a delegate that marks tags for which isSelected is true.
func NewTagDelegate(s *styles.Styles, isSelected func(string) bool) *TagDelegate {
	return &TagDelegate{
		styles:     s,
		isSelected: isSelected,
		caser:      cases.Title(language.English),
	}
}

// Height returns the height of each list item.
func (d *TagDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between list items.
func (d *TagDelegate) Spacing() int {
	return 0
}

// Update handles item-specific updates.
func (d *TagDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a list item.
func (d *TagDelegate) Render(writer io.Writer, listModel list.Model, index int, item list.Item) {
	tag, ok := item.(TagItem)
	if !ok {
		return
	}

	isCursor := index == listModel.Index()
	isToggled := d.isSelected(tag.Name)

	indicator := "○"
	if isToggled {
		indicator = "◉"
	}

	line := fmt.Sprintf("%s %-24s %3d", indicator, d.caser.String(tag.Name), tag.Count)

	var style lipgloss.Style

	switch {
	case isCursor:
		style = d.styles.Selected.Bold(true)
	default:
		style = d.styles.Unselected
	}

	if isToggled && !isCursor {
		style = style.Foreground(d.styles.Success)
	}

	_, _ = fmt.Fprint(writer, style.Render(line))
}
