// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/stringutil"
	"github.com/janderssonse/blueprints/internal/tui/styles"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const quickTags = 3

// BrowserKeyMap defines key bindings for the browse screen.
type BrowserKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Left        key.Binding
	Right       key.Binding
	Open        key.Binding
	Search      key.Binding
	ClearSearch key.Binding
	ToggleView  key.Binding
	Tags        key.Binding
	ClearTags   key.Binding
	QuickTag    key.Binding
}

// DefaultBrowserKeyMap returns the default key bindings.
func DefaultBrowserKeyMap() BrowserKeyMap {
	return BrowserKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Open: key.NewBinding(
			key.WithKeys(KeyEnter),
			key.WithHelp("enter", "open"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		ClearSearch: key.NewBinding(
			key.WithKeys(KeyEsc),
			key.WithHelp("esc", "clear search"),
		),
		ToggleView: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "grid/rows"),
		),
		Tags: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tags"),
		),
		ClearTags: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear tags"),
		),
		QuickTag: key.NewBinding(
			key.WithKeys("1", "2", "3"),
			key.WithHelp("1-3", "add tag"),
		),
	}
}

// Browser lists the filtered catalog as a grid of cards or as rows.
type Browser struct {
	styles   *styles.Styles
	store    *catalog.Store
	width    int
	height   int
	cursor   int
	search   textinput.Model
	viewport viewport.Model
	keyMap   BrowserKeyMap
	status   StatusMsg
	caser    cases.Caser
}

// NewBrowser creates the browse screen over store.
func NewBrowser(styleConfig *styles.Styles, store *catalog.Store) *Browser {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search templates..."
	search.CharLimit = 128
	search.SetValue(store.SearchQuery())

	return &Browser{
		styles:   styleConfig,
		store:    store,
		width:    80,
		height:   24,
		search:   search,
		viewport: viewport.New(80, 20),
		keyMap:   DefaultBrowserKeyMap(),
		caser:    cases.Title(language.English),
	}
}

// Init implements tea.Model.
func (b *Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (b *Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.SetSize(msg.Width, msg.Height)

		return b, nil
	case StatusMsg:
		b.status = msg

		return b, nil
	case tea.KeyMsg:
		if b.search.Focused() {
			return b, b.handleSearchKey(msg)
		}

		return b, b.handleKey(msg)
	}

	return b, nil
}

// SetSize updates the available area.
func (b *Browser) SetSize(width, height int) {
	b.width = max(width, styles.MinWidth)
	b.height = max(height, 1)
	b.search.Width = max(b.width-8, 10)
	b.viewport.Width = b.width
}

// Typing reports whether keystrokes go to the search field.
func (b *Browser) Typing() bool {
	return b.search.Focused()
}

// Cursor returns the index of the highlighted template in the filtered view.
func (b *Browser) Cursor() int {
	return b.cursor
}

// Current returns the highlighted template.
func (b *Browser) Current() (domain.Template, bool) {
	view := b.store.FilteredTemplates()
	if b.cursor < 0 || b.cursor >= len(view) {
		return domain.Template{}, false
	}

	return view[b.cursor], true
}

// Refresh re-reads the store after outside mutations.
func (b *Browser) Refresh() {
	if b.search.Value() != b.store.SearchQuery() {
		b.search.SetValue(b.store.SearchQuery())
	}

	b.clampCursor()
}

func (b *Browser) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case KeyEsc, KeyEnter:
		b.search.Blur()

		return nil
	}

	var cmd tea.Cmd

	before := b.search.Value()
	b.search, cmd = b.search.Update(msg)

	if b.search.Value() != before {
		b.store.SetSearchQuery(b.search.Value())
		b.cursor = 0
	}

	return cmd
}

func (b *Browser) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, b.keyMap.Search):
		b.status = StatusMsg{}

		return b.search.Focus()
	case key.Matches(msg, b.keyMap.ClearSearch):
		if b.store.SearchQuery() != "" {
			b.search.SetValue("")
			b.store.ClearSearch()
			b.clampCursor()
		}
	case key.Matches(msg, b.keyMap.Up):
		b.move(-b.columns())
	case key.Matches(msg, b.keyMap.Down):
		b.move(b.columns())
	case key.Matches(msg, b.keyMap.Left):
		b.move(-1)
	case key.Matches(msg, b.keyMap.Right):
		b.move(1)
	case key.Matches(msg, b.keyMap.Open):
		if tmpl, ok := b.Current(); ok {
			return func() tea.Msg { return OpenDetailMsg{TemplateID: tmpl.ID} }
		}
	case key.Matches(msg, b.keyMap.ToggleView):
		return b.toggleView()
	case key.Matches(msg, b.keyMap.Tags):
		return func() tea.Msg { return OpenTagsMsg{} }
	case key.Matches(msg, b.keyMap.ClearTags):
		b.store.ClearSelectedTags()
		b.clampCursor()
	case key.Matches(msg, b.keyMap.QuickTag):
		b.quickTag(int(msg.Runes[0] - '1'))
	}

	return nil
}

func (b *Browser) toggleView() tea.Cmd {
	next := b.store.View().Toggle()
	if err := b.store.SetView(next); err != nil {
		b.status = StatusMsg{Text: "View changed but the preference could not be saved", Error: true}

		return nil
	}

	b.status = StatusMsg{Text: "View: " + next.String()}

	return nil
}

func (b *Browser) quickTag(index int) {
	tmpl, ok := b.Current()
	if !ok || index < 0 || index >= len(tmpl.Tags) || index >= quickTags {
		return
	}

	b.store.AddSelectedTag(tmpl.Tags[index])
	b.cursor = 0
	b.status = StatusMsg{Text: "Filtering by " + tmpl.Tags[index]}
}

func (b *Browser) columns() int {
	if b.store.View() == domain.ViewRows {
		return 1
	}

	return max(1, b.width/styles.CardWidth)
}

func (b *Browser) move(delta int) {
	count := b.store.TemplatesCount()
	if count == 0 {
		b.cursor = 0

		return
	}

	next := b.cursor + delta
	if next < 0 || next >= count {
		return
	}

	b.cursor = next
}

func (b *Browser) clampCursor() {
	count := b.store.TemplatesCount()

	switch {
	case count == 0:
		b.cursor = 0
	case b.cursor >= count:
		b.cursor = count - 1
	case b.cursor < 0:
		b.cursor = 0
	}
}

// View implements tea.Model.
func (b *Browser) View() string {
	b.clampCursor()

	header := b.renderHeader()
	footer := b.renderFooter()

	bodyHeight := b.height - lipgloss.Height(header) - lipgloss.Height(footer)
	b.viewport.Height = max(bodyHeight, 1)
	b.viewport.SetContent(b.renderBody())
	b.scrollToCursor()

	return lipgloss.JoinVertical(lipgloss.Left, header, b.viewport.View(), footer)
}

func (b *Browser) renderHeader() string {
	title := b.styles.Title.Render("Blueprints")
	counts := b.styles.MutedText.Render(fmt.Sprintf("  %d of %d templates · %s view",
		b.store.TemplatesCount(), b.store.TotalCount(), b.store.View()))

	lines := []string{title + counts, b.search.View()}

	if tags := b.store.SelectedTags(); len(tags) > 0 {
		chips := make([]string, 0, len(tags))
		for _, tag := range tags {
			chips = append(chips, b.styles.Chip.Render(b.caser.String(tag)))
		}

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}

	return b.styles.Header.Width(b.width).Render(strings.Join(lines, "\n"))
}

func (b *Browser) renderFooter() string {
	actions := []FooterAction{
		{Key: "/", Action: "Search"},
		{Key: "Enter", Action: "Open"},
		{Key: "v", Action: "Grid/Rows"},
		{Key: "t", Action: "Tags"},
		{Key: "1-3", Action: "Add Tag"},
		{Key: "x", Action: "Clear Tags"},
		{Key: "q", Action: "Quit"},
	}

	if b.search.Focused() {
		actions = []FooterAction{
			{Key: "Enter", Action: "Done"},
			{Key: "Esc", Action: "Stop Typing"},
		}
	}

	return RenderFooterWithStatus(b.styles, b.width, actions, !b.search.Focused(), b.status)
}

func (b *Browser) renderBody() string {
	view := b.store.FilteredTemplates()
	if len(view) == 0 {
		return b.styles.MutedText.Padding(1, 2).Render(NoMatches)
	}

	if b.store.View() == domain.ViewRows {
		return b.renderRows(view)
	}

	return b.renderGrid(view)
}

func (b *Browser) renderGrid(view []domain.Template) string {
	cols := b.columns()
	inner := styles.CardWidth - 4

	rows := make([]string, 0, len(view)/cols+1)

	for start := 0; start < len(view); start += cols {
		end := min(start+cols, len(view))
		cards := make([]string, 0, cols)

		for i := start; i < end; i++ {
			tmpl := view[i]

			style := b.styles.Card
			if i == b.cursor {
				style = b.styles.CardSelected
			}

			version := tmpl.Version
			if version != "" {
				version = "v" + version
			}

			body := strings.Join([]string{
				lipgloss.NewStyle().Bold(true).Render(stringutil.Truncate(tmpl.Name, inner)),
				b.styles.MutedText.Render(stringutil.Truncate(version, inner)),
				stringutil.Truncate(tmpl.Description, inner),
				lipgloss.NewStyle().Foreground(b.styles.Secondary).Render(stringutil.Truncate(strings.Join(tmpl.Tags, " "), inner)),
			}, "\n")

			cards = append(cards, style.Render(body))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b *Browser) renderRows(view []domain.Template) string {
	const (
		maxNameWidth = 26
		versionWidth = 10
	)

	nameWidth := 4
	for _, tmpl := range view {
		nameWidth = max(nameWidth, stringutil.Width(tmpl.Name))
	}

	nameWidth = min(nameWidth, maxNameWidth)
	restWidth := max(b.width-nameWidth-versionWidth-6, 10)
	lines := make([]string, 0, len(view))

	for i, tmpl := range view {
		marker := "  "
		if i == b.cursor {
			marker = "▸ "
		}

		rest := tmpl.Description
		if len(tmpl.Tags) > 0 {
			rest += "  [" + strings.Join(tmpl.Tags, ", ") + "]"
		}

		line := marker +
			stringutil.PadRight(tmpl.Name, nameWidth) + " " +
			stringutil.PadRight(tmpl.Version, versionWidth) + " " +
			stringutil.Truncate(rest, restWidth)

		if i == b.cursor {
			line = b.styles.PrimaryText.Bold(true).Render(line)
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func (b *Browser) scrollToCursor() {
	top, height := b.cursor, 1

	if b.store.View() == domain.ViewGrid {
		top = (b.cursor / b.columns()) * styles.CardHeight
		height = styles.CardHeight
	}

	switch {
	case top < b.viewport.YOffset:
		b.viewport.SetYOffset(top)
	case top+height > b.viewport.YOffset+b.viewport.Height:
		b.viewport.SetYOffset(top + height - b.viewport.Height)
	}
}
