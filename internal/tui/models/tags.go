// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/janderssonse/blueprints/internal/tui/styles"
)

// TagsKeyMap defines key bindings for the tag picker.
type TagsKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Clear  key.Binding
	Close  key.Binding
}

// DefaultTagsKeyMap returns the default key bindings.
func DefaultTagsKeyMap() TagsKeyMap {
	return TagsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n"),
			key.WithHelp("↓", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(KeyEnter, " "),
			key.WithHelp("enter/space", "toggle"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+x"),
			key.WithHelp("ctrl+x", "clear all"),
		),
		Close: key.NewBinding(
			key.WithKeys(KeyEsc),
			key.WithHelp("esc", "done"),
		),
	}
}

// TagPicker selects the tags the catalog is filtered by. Typing narrows the
// list; toggling writes straight through to the store.
type TagPicker struct {
	styles *styles.Styles
	store  *catalog.Store
	width  int
	height int
	filter textinput.Model
	list   list.Model
	counts map[string]int
	keyMap TagsKeyMap
}

// NewTagPicker creates a picker over the tag universe of store.
func NewTagPicker(styleConfig *styles.Styles, store *catalog.Store) *TagPicker {
	filter := textinput.New()
	filter.Prompt = "Filter: "
	filter.Placeholder = "type to narrow tags"
	filter.CharLimit = 64
	filter.Focus()

	counts := make(map[string]int)
	for _, tmpl := range store.Templates() {
		for _, tag := range tmpl.Tags {
			counts[tag]++
		}
	}

	tagList := list.New(nil, NewTagDelegate(styleConfig, store.HasSelectedTag), 40, 10)
	tagList.SetShowTitle(false)
	tagList.SetShowStatusBar(false)
	tagList.SetShowHelp(false)
	tagList.SetFilteringEnabled(false)
	tagList.DisableQuitKeybindings()

	picker := &TagPicker{
		styles: styleConfig,
		store:  store,
		width:  80,
		height: 24,
		filter: filter,
		list:   tagList,
		counts: counts,
		keyMap: DefaultTagsKeyMap(),
	}
	picker.refresh()

	return picker
}

// Init implements tea.Model.
func (p *TagPicker) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (p *TagPicker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)

		return p, nil
	case tea.KeyMsg:
		return p, p.handleKey(msg)
	}

	var cmd tea.Cmd

	p.filter, cmd = p.filter.Update(msg)

	return p, cmd
}

func (p *TagPicker) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keyMap.Close):
		return func() tea.Msg { return CloseTagsMsg{} }
	case key.Matches(msg, p.keyMap.Toggle):
		if item, ok := p.list.SelectedItem().(TagItem); ok {
			p.store.ToggleSelectedTag(item.Name)
		}

		return nil
	case key.Matches(msg, p.keyMap.Clear):
		p.store.ClearSelectedTags()

		return nil
	case key.Matches(msg, p.keyMap.Up):
		p.list.CursorUp()

		return nil
	case key.Matches(msg, p.keyMap.Down):
		p.list.CursorDown()

		return nil
	}

	before := p.filter.Value()

	var cmd tea.Cmd

	p.filter, cmd = p.filter.Update(msg)

	if p.filter.Value() != before {
		p.refresh()
	}

	return cmd
}

// SetSize updates the available area.
func (p *TagPicker) SetSize(width, height int) {
	p.width = max(width, styles.MinWidth)
	p.height = max(height, 1)
	p.filter.Width = max(p.width-16, 10)
	p.list.SetSize(p.width-4, max(p.height-8, 3))
}

// Typing reports that keystrokes feed the filter field.
func (p *TagPicker) Typing() bool {
	return true
}

// Visible returns the tag names currently listed.
func (p *TagPicker) Visible() []string {
	items := p.list.Items()
	names := make([]string, 0, len(items))

	for _, item := range items {
		if tag, ok := item.(TagItem); ok {
			names = append(names, tag.Name)
		}
	}

	return names
}

func (p *TagPicker) refresh() {
	tags := catalog.FilterTags(p.store.UniqueTags(), p.filter.Value())
	items := make([]list.Item, 0, len(tags))

	for _, tag := range tags {
		items = append(items, TagItem{Name: tag, Count: p.counts[tag]})
	}

	p.list.SetItems(items)
	p.list.ResetSelected()
}

// View implements tea.Model.
func (p *TagPicker) View() string {
	title := p.styles.Title.Render("Filter by tag")
	selected := p.styles.MutedText.Render("  " + pluralTags(len(p.store.SelectedTags())))

	body := p.list.View()
	if len(p.list.Items()) == 0 {
		body = p.styles.MutedText.Render("No tags match.")
	}

	footer := RenderFooter(p.styles, p.width, []FooterAction{
		{Key: "Enter", Action: "Toggle"},
		{Key: "Ctrl+X", Action: "Clear All"},
		{Key: "Esc", Action: "Done"},
	}, false)

	content := lipgloss.JoinVertical(lipgloss.Left, title+selected, p.filter.View(), "", body)

	return lipgloss.JoinVertical(lipgloss.Left, p.styles.Modal.Width(p.width-2).Render(content), footer)
}

func pluralTags(n int) string {
	if n == 1 {
		return "1 tag selected"
	}

	return fmt.Sprintf("%d tags selected", n)
}
