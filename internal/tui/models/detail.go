// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/blueprints/internal/artifact"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/encoder"
	"github.com/janderssonse/blueprints/internal/tui/styles"
)

// Detail tabs.
const (
	TabCompose = iota
	TabConfig
	TabBlob
	tabCount
)

var tabTitles = [tabCount]string{domain.ComposeFile, domain.ConfigFile, "Import blob"}

// DetailKeyMap defines key bindings for the detail screen.
type DetailKeyMap struct {
	NextTab key.Binding
	PrevTab key.Binding
	Retry   key.Binding
	Close   key.Binding
}

// DefaultDetailKeyMap returns the default key bindings.
func DefaultDetailKeyMap() DetailKeyMap {
	return DetailKeyMap{
		NextTab: key.NewBinding(
			key.WithKeys("tab", "l", "right"),
			key.WithHelp("tab", "next file"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "h", "left"),
			key.WithHelp("shift+tab", "previous file"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Close: key.NewBinding(
			key.WithKeys(KeyEsc, "backspace"),
			key.WithHelp("esc", "close"),
		),
	}
}

// Detail shows one template with its two artifacts and the import blob.
type Detail struct {
	styles   *styles.Styles
	template domain.Template
	editBase string
	width    int
	height   int

	loading bool
	err     error
	detail  domain.Detail
	blob    string
	summary artifact.Summary

	tab      int
	spinner  spinner.Model
	viewport viewport.Model
	keyMap   DetailKeyMap

	renderer      *glamour.TermRenderer
	rendererWidth int
}

// NewDetail creates a detail screen for tmpl in its loading state.
func NewDetail(styleConfig *styles.Styles, tmpl domain.Template, editBase string) *Detail {
	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styleConfig.Primary)),
	)

	return &Detail{
		styles:   styleConfig,
		template: tmpl,
		editBase: editBase,
		width:    80,
		height:   24,
		loading:  true,
		spinner:  spin,
		viewport: viewport.New(80, 10),
		keyMap:   DefaultDetailKeyMap(),
	}
}

// Init implements tea.Model.
func (d *Detail) Init() tea.Cmd {
	return d.spinner.Tick
}

// Update implements tea.Model.
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (d *Detail) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !d.loading {
			return d, nil
		}

		var cmd tea.Cmd

		d.spinner, cmd = d.spinner.Update(msg)

		return d, cmd
	case tea.WindowSizeMsg:
		d.SetSize(msg.Width, msg.Height)

		return d, nil
	case tea.KeyMsg:
		return d, d.handleKey(msg)
	}

	return d, nil
}

func (d *Detail) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, d.keyMap.Close):
		return func() tea.Msg { return CloseDetailMsg{} }
	case key.Matches(msg, d.keyMap.Retry):
		if d.err != nil {
			id := d.template.ID

			return func() tea.Msg { return OpenDetailMsg{TemplateID: id} }
		}
	case key.Matches(msg, d.keyMap.NextTab):
		d.SetTab((d.tab + 1) % tabCount)
	case key.Matches(msg, d.keyMap.PrevTab):
		d.SetTab((d.tab + tabCount - 1) % tabCount)
	default:
		var cmd tea.Cmd

		d.viewport, cmd = d.viewport.Update(msg)

		return cmd
	}

	return nil
}

// SetSize updates the available area.
func (d *Detail) SetSize(width, height int) {
	d.width = max(width, styles.MinWidth)
	d.height = max(height, 1)
	d.viewport.Width = d.width
	d.refreshContent()
}

// SetResult ends the loading state with the outcome of a fetch.
func (d *Detail) SetResult(detail domain.Detail, err error) {
	d.loading = false
	d.err = err

	if err != nil {
		d.detail = domain.Detail{}
		d.blob = ""
		d.summary = artifact.Summary{}

		return
	}

	d.detail = detail
	d.blob = encoder.Encode(detail)
	d.summary = artifact.Summarize(detail)

	if detail.Compose == nil && detail.Config != nil {
		d.tab = TabConfig
	}

	d.refreshContent()
}

// SetTab selects the visible artifact.
func (d *Detail) SetTab(tab int) {
	if tab < 0 || tab >= tabCount {
		return
	}

	d.tab = tab
	d.refreshContent()
	d.viewport.GotoTop()
}

// TemplateID returns the identifier of the shown template.
func (d *Detail) TemplateID() string {
	return d.template.ID
}

// Loading reports whether the fetch is still running.
func (d *Detail) Loading() bool {
	return d.loading
}

// Err returns the fetch failure, if any.
func (d *Detail) Err() error {
	return d.err
}

// Blob returns the encoded configuration.
func (d *Detail) Blob() string {
	return d.blob
}

// Tab returns the selected tab.
func (d *Detail) Tab() int {
	return d.tab
}

func (d *Detail) refreshContent() {
	if d.loading || d.err != nil || d.detail.Empty() {
		return
	}

	switch d.tab {
	case TabCompose:
		d.viewport.SetContent(d.renderArtifact(domain.ComposeFile, d.detail.Compose))
	case TabConfig:
		d.viewport.SetContent(d.renderArtifact(domain.ConfigFile, d.detail.Config))
	case TabBlob:
		d.viewport.SetContent(lipgloss.NewStyle().Width(max(d.width-4, 10)).Padding(1, 2).Render(d.blob))
	}
}

func (d *Detail) renderArtifact(name string, text *string) string {
	if text == nil {
		return d.styles.MutedText.Padding(1, 2).Render(name + " is not available for this template.")
	}

	markdown := "```yaml\n" + strings.TrimRight(*text, "\n") + "\n```\n"

	renderer := d.markdownRenderer()
	if renderer == nil {
		return *text
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		return *text
	}

	return out
}

func (d *Detail) markdownRenderer() *glamour.TermRenderer {
	if d.renderer != nil && d.rendererWidth == d.width {
		return d.renderer
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(d.styles.GlamourStyle),
		glamour.WithWordWrap(max(d.width-4, 20)),
	)
	if err != nil {
		return nil
	}

	d.renderer = renderer
	d.rendererWidth = d.width

	return renderer
}

// View implements tea.Model.
func (d *Detail) View() string {
	header := d.renderHeader()
	footer := d.renderFooter()
	available := d.height - lipgloss.Height(header) - lipgloss.Height(footer)

	var body string

	switch {
	case d.loading:
		body = lipgloss.NewStyle().Padding(1, 2).Render(d.spinner.View() + " Fetching configuration files...")
	case d.err != nil:
		body = lipgloss.NewStyle().Padding(1, 2).Render(
			d.styles.ErrorText.Render(domain.FormatErrorMessage(d.err, false)) + "\n\n" +
				d.styles.MutedText.Render("Press r to retry or esc to go back."))
	case d.detail.Empty():
		body = d.styles.MutedText.Padding(1, 2).Render(NoConfigFiles)
	default:
		tabs := d.renderTabs()
		d.viewport.Height = max(available-lipgloss.Height(tabs), 1)
		body = lipgloss.JoinVertical(lipgloss.Left, tabs, d.viewport.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (d *Detail) renderHeader() string {
	tmpl := d.template
	title := d.styles.Title.Render(tmpl.Name)

	if tmpl.Version != "" {
		title += d.styles.MutedText.Render("  v" + tmpl.Version)
	}

	lines := []string{title}

	if tmpl.Description != "" {
		lines = append(lines, lipgloss.NewStyle().Width(max(d.width-4, 10)).Render(tmpl.Description))
	}

	for _, link := range []struct{ label, url string }{
		{"GitHub", tmpl.Links.GitHub},
		{"Website", tmpl.Links.Website},
		{"Docs", tmpl.Links.Docs},
	} {
		if link.url != "" {
			lines = append(lines, d.styles.MutedText.Render(fmt.Sprintf("%-8s", link.label))+link.url)
		}
	}

	lines = append(lines, d.styles.MutedText.Render("Edit    ")+tmpl.EditURL(d.editBase))

	if len(tmpl.Tags) > 0 {
		chips := make([]string, 0, len(tmpl.Tags))
		for _, tag := range tmpl.Tags {
			chips = append(chips, d.styles.Chip.Render(tag))
		}

		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, chips...))
	}

	if !d.loading && d.err == nil && !d.summary.Empty() {
		lines = append(lines, d.styles.SuccessText.Render(summaryLine(d.summary)))
	}

	return d.styles.Header.Width(d.width).Render(strings.Join(lines, "\n"))
}

func summaryLine(summary artifact.Summary) string {
	parts := make([]string, 0, 2)

	if len(summary.Services) > 0 {
		parts = append(parts, "Services: "+strings.Join(summary.Services, ", "))
	}

	if len(summary.ConfigKeys) > 0 {
		parts = append(parts, "Config: "+strings.Join(summary.ConfigKeys, ", "))
	}

	return strings.Join(parts, " · ")
}

func (d *Detail) renderTabs() string {
	tabs := make([]string, 0, tabCount)

	for i, title := range tabTitles {
		style := d.styles.Tab
		if i == d.tab {
			style = d.styles.TabActive
		}

		tabs = append(tabs, style.Render(title))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (d *Detail) renderFooter() string {
	actions := []FooterAction{{Key: "Esc", Action: "Back"}}

	switch {
	case d.err != nil:
		actions = append(actions, FooterAction{Key: "r", Action: "Retry"})
	case !d.loading && !d.detail.Empty():
		actions = append(actions,
			FooterAction{Key: "Tab", Action: "Next File"},
			FooterAction{Key: "↑/↓", Action: "Scroll"})
	}

	return RenderFooter(d.styles, d.width, actions, true)
}
