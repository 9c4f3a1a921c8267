// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package tui runs the interactive catalog browser.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/janderssonse/blueprints/internal/console"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/tui/models"
	"github.com/janderssonse/blueprints/internal/tui/styles"
	"go.uber.org/zap"
)

// ErrNoTerminal is returned when the TUI is launched in a non-terminal environment.
var ErrNoTerminal = errors.New("TUI requires a terminal environment")

// Options wires the App to its collaborators.
type Options struct {
	Store       *catalog.Store
	Loader      domain.IndexLoader
	Fetcher     domain.DetailFetcher
	Styles      *styles.Styles
	Logger      *zap.Logger
	BaseURL     string
	EditBaseURL string
}

// App represents the main TUI application following tree-of-models pattern.
// It owns the catalog store and routes messages to the active screen.
//
//nolint:containedctx // TUI models require context for proper cancellation propagation
type App struct {
	width  int
	height int
	styles *styles.Styles
	screen models.Screen

	store     *catalog.Store
	loader    domain.IndexLoader
	fetcher   domain.DetailFetcher
	selection *catalog.Selection
	ctx       context.Context
	logger    *zap.Logger

	baseURL  string
	editBase string

	browser *models.Browser
	detail  *models.Detail
	tags    *models.TagPicker
	help    *models.HelpModal
	spinner spinner.Model
	loadErr error

	quitting bool
}

// NewApp creates the application in its loading state.
func NewApp(opts Options) *App {
	styleConfig := opts.Styles
	if styleConfig == nil {
		styleConfig = styles.New()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	store := opts.Store
	if store == nil {
		store = catalog.NewStore(nil, logger)
	}

	spin := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(styleConfig.Primary)),
	)

	app := &App{
		width:     80,
		height:    24,
		styles:    styleConfig,
		screen:    models.LoadingScreen,
		store:     store,
		loader:    opts.Loader,
		fetcher:   opts.Fetcher,
		selection: catalog.NewSelection(),
		ctx:       context.Background(),
		logger:    logger,
		baseURL:   opts.BaseURL,
		editBase:  opts.EditBaseURL,
		browser:   models.NewBrowser(styleConfig, store),
		help:      models.NewHelpModal(styleConfig),
		spinner:   spin,
	}
	app.help.SetScreen(app.screen)

	return app
}

// Run starts the TUI application with the provided context.
func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx

	program := tea.NewProgram(
		a,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)

	_, err := program.Run()

	a.selection.Reset()

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("TUI application failed: %w", err)
	}

	return nil
}

// Launch checks for a terminal and runs a new App until the user quits.
func Launch(ctx context.Context, opts Options) error {
	if !console.DefaultOutput.IsInteractive() {
		return fmt.Errorf("terminal check failed: %w", ErrNoTerminal)
	}

	return NewApp(opts).Run(ctx)
}

// Init implements the tea.Model interface.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadIndex(), a.spinner.Tick)
}

// Screen returns the active screen.
func (a *App) Screen() models.Screen {
	return a.screen
}

// Store returns the catalog store the screens share.
func (a *App) Store() *catalog.Store {
	return a.store
}

// Detail returns the open detail screen, or nil.
func (a *App) Detail() *models.Detail {
	return a.detail
}

// Update implements the tea.Model interface.
//
//nolint:ireturn,cyclop // Bubble Tea framework requires returning tea.Model interface
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a, a.resize(msg)
	case spinner.TickMsg:
		return a, a.tick(msg)
	case models.IndexLoadedMsg:
		a.store.SetTemplates(msg.Templates)
		a.loadErr = nil
		a.browser.Refresh()
		a.setScreen(models.BrowseScreen)

		return a, nil
	case models.IndexFailedMsg:
		a.loadErr = msg.Err
		a.setScreen(models.ErrorScreen)

		return a, nil
	case models.RetryLoadMsg:
		a.loadErr = nil
		a.setScreen(models.LoadingScreen)

		return a, tea.Batch(a.loadIndex(), a.spinner.Tick)
	case models.OpenDetailMsg:
		return a, a.openDetail(msg.TemplateID)
	case models.DetailLoadedMsg:
		a.applyDetail(msg)

		return a, nil
	case models.CloseDetailMsg:
		a.selection.Reset()
		a.detail = nil
		a.setScreen(models.BrowseScreen)

		return a, nil
	case models.OpenTagsMsg:
		a.tags = models.NewTagPicker(a.styles, a.store)
		a.tags.SetSize(a.width, a.height)
		a.setScreen(models.TagsScreen)

		return a, a.tags.Init()
	case models.CloseTagsMsg:
		a.tags = nil
		a.browser.Refresh()
		a.setScreen(models.BrowseScreen)

		return a, nil
	case models.StatusMsg:
		a.browser.Update(msg)

		return a, nil
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	return a, a.forward(msg)
}

func (a *App) setScreen(screen models.Screen) {
	a.screen = screen
	a.help.SetScreen(screen)
}

func (a *App) resize(msg tea.WindowSizeMsg) tea.Cmd {
	a.width = msg.Width
	a.height = msg.Height

	a.browser.SetSize(msg.Width, msg.Height)

	if a.detail != nil {
		a.detail.SetSize(msg.Width, msg.Height)
	}

	if a.tags != nil {
		a.tags.SetSize(msg.Width, msg.Height)
	}

	return nil
}

// tick feeds both spinners; each ignores ticks carrying another spinner's ID.
func (a *App) tick(msg spinner.TickMsg) tea.Cmd {
	var cmds []tea.Cmd

	if a.screen == models.LoadingScreen {
		var cmd tea.Cmd

		a.spinner, cmd = a.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	if a.detail != nil {
		_, cmd := a.detail.Update(msg)
		cmds = append(cmds, cmd)
	}

	return tea.Batch(cmds...)
}

func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch a.screen {
	case models.BrowseScreen:
		_, cmd = a.browser.Update(msg)
	case models.DetailScreen:
		if a.detail != nil {
			_, cmd = a.detail.Update(msg)
		}
	case models.TagsScreen:
		if a.tags != nil {
			_, cmd = a.tags.Update(msg)
		}
	case models.LoadingScreen, models.ErrorScreen:
	}

	return cmd
}

func (a *App) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	if a.help.IsVisible() {
		return a.help.Update(msg)
	}

	switch {
	case msg.String() == "?" && !a.browserTyping():
		a.help.Toggle()

		return nil
	case msg.String() == "q" && !a.typing():
		return a.quit()
	}

	if a.screen == models.ErrorScreen && msg.String() == "r" {
		return func() tea.Msg { return models.RetryLoadMsg{} }
	}

	return a.forward(msg)
}

func (a *App) typing() bool {
	switch a.screen {
	case models.BrowseScreen:
		return a.browser.Typing()
	case models.TagsScreen:
		return a.tags != nil && a.tags.Typing()
	case models.LoadingScreen, models.ErrorScreen, models.DetailScreen:
	}

	return false
}

// browserTyping reports whether the search field owns the keyboard. No tag
// contains "?", so the picker leaves it to the help modal.
func (a *App) browserTyping() bool {
	return a.screen == models.BrowseScreen && a.browser.Typing()
}

func (a *App) quit() tea.Cmd {
	a.quitting = true
	a.selection.Reset()

	return tea.Quit
}

func (a *App) loadIndex() tea.Cmd {
	ctx, loader, logger := a.ctx, a.loader, a.logger

	return func() tea.Msg {
		if loader == nil {
			return models.IndexFailedMsg{Err: domain.NewLoadError("no index loader configured", nil)}
		}

		templates, err := loader.Load(ctx)
		if err != nil {
			logger.Warn("template index load failed", zap.Error(err))

			return models.IndexFailedMsg{Err: err}
		}

		logger.Info("template index loaded", zap.Int("templates", len(templates)))

		return models.IndexLoadedMsg{Templates: templates}
	}
}

func (a *App) openDetail(templateID string) tea.Cmd {
	tmpl, ok := a.store.Lookup(templateID)
	if !ok {
		a.logger.Warn("detail requested for unknown template", zap.String("template_id", templateID))

		return func() tea.Msg {
			return models.StatusMsg{Text: "Unknown template " + templateID, Error: true}
		}
	}

	ticket := a.selection.Begin(a.ctx, templateID)

	a.detail = models.NewDetail(a.styles, tmpl, a.editBase)
	a.detail.SetSize(a.width, a.height)
	a.setScreen(models.DetailScreen)

	return tea.Batch(a.detail.Init(), a.fetchDetail(ticket))
}

func (a *App) fetchDetail(ticket catalog.Ticket) tea.Cmd {
	fetcher, logger := a.fetcher, a.logger

	return func() tea.Msg {
		if fetcher == nil {
			return models.DetailLoadedMsg{
				Ticket: ticket,
				Err:    domain.NewFetchError(ticket.TemplateID, errors.New("no detail fetcher configured")),
			}
		}

		detail, err := fetcher.FetchDetail(ticket.Ctx, ticket.TemplateID)
		if err != nil {
			logger.Warn("template detail fetch failed",
				zap.String("template_id", ticket.TemplateID), zap.Error(err))
		}

		return models.DetailLoadedMsg{Ticket: ticket, Detail: detail, Err: err}
	}
}

func (a *App) applyDetail(msg models.DetailLoadedMsg) {
	if a.detail == nil || !a.selection.IsCurrent(msg.Ticket) {
		a.logger.Debug("discarding stale detail result",
			zap.String("template_id", msg.Ticket.TemplateID), zap.Uint64("generation", msg.Ticket.Generation))

		return
	}

	a.detail.SetResult(msg.Detail, msg.Err)
}

// View implements the tea.Model interface.
func (a *App) View() string {
	if a.quitting {
		return models.GoodbyeMessage
	}

	var content string

	switch a.screen {
	case models.LoadingScreen:
		content = a.renderLoading()
	case models.ErrorScreen:
		content = a.renderError()
	case models.BrowseScreen:
		content = a.browser.View()
	case models.DetailScreen:
		if a.detail != nil {
			content = a.detail.View()
		}
	case models.TagsScreen:
		if a.tags != nil {
			content = a.tags.View()
		}
	}

	if a.help.IsVisible() {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.help.View())
	}

	return content
}

func (a *App) renderLoading() string {
	text := a.spinner.View() + " Loading templates"
	if a.baseURL != "" {
		text += " from " + a.baseURL
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, text+"...")
}

func (a *App) renderError() string {
	lines := []string{
		a.styles.Title.Render("Blueprints"),
		"",
		a.styles.ErrorText.Render(domain.FormatErrorMessage(a.loadErr, false)),
		"",
		models.RenderFooter(a.styles, min(a.width, 60), []models.FooterAction{
			{Key: "r", Action: "Retry"},
			{Key: "q", Action: "Quit"},
		}, true),
	}

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
}
