// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package styles defines consistent visual styling for TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Layout constants shared by the screens.
const (
	CardWidth   = 34 // Outer width of a grid card, border included
	CardHeight  = 6  // Outer height of a grid card, border included
	MinWidth    = 40
	FooterLines = 2
)

// Styles contains all the styles used in the TUI.
type Styles struct {
	// Color palette
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
	Muted     lipgloss.Color

	// Component styles
	Header       lipgloss.Style
	Title        lipgloss.Style
	Subtitle     lipgloss.Style
	Card         lipgloss.Style
	CardSelected lipgloss.Style
	Chip         lipgloss.Style
	Tab          lipgloss.Style
	TabActive    lipgloss.Style
	Selected     lipgloss.Style
	Unselected   lipgloss.Style
	Modal        lipgloss.Style

	// Text styles (cached for performance)
	MutedText   lipgloss.Style
	PrimaryText lipgloss.Style
	SuccessText lipgloss.Style
	ErrorText   lipgloss.Style
	WarningText lipgloss.Style

	// GlamourStyle names the markdown style used for artifacts.
	GlamourStyle string
}

// New creates a new Styles instance with default Tokyo Night theme.
func New() *Styles {
	return NewWithTheme("tokyo-night")
}

// NewWithTheme creates styles for theme. Unknown themes fall back to Tokyo Night
// colors; the name is still handed to glamour when it knows it.
func NewWithTheme(theme string) *Styles {
	// Tokyo Night color palette
	primary := lipgloss.Color("#7aa2f7")    // Blue
	secondary := lipgloss.Color("#bb9af7")  // Purple
	success := lipgloss.Color("#9ece6a")    // Green
	warning := lipgloss.Color("#e0af68")    // Yellow
	errorColor := lipgloss.Color("#f7768e") // Red
	info := lipgloss.Color("#7dcfff")       // Cyan
	muted := lipgloss.Color("#565f89")      // Gray

	background := lipgloss.Color("#1a1b26") // Dark background
	foreground := lipgloss.Color("#c0caf5") // Light foreground

	return &Styles{
		Primary:   primary,
		Secondary: secondary,
		Success:   success,
		Warning:   warning,
		Error:     errorColor,
		Info:      info,
		Muted:     muted,

		Header: lipgloss.NewStyle().
			Padding(0, 2).
			Border(lipgloss.RoundedBorder(), false, false, true, false).
			BorderForeground(primary),

		Title: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),

		Subtitle: lipgloss.NewStyle().
			Foreground(secondary).
			Italic(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1).
			Width(CardWidth - 2),

		CardSelected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(primary).
			Padding(0, 1).
			Width(CardWidth - 2),

		Chip: lipgloss.NewStyle().
			Foreground(background).
			Background(secondary).
			Padding(0, 1).
			MarginRight(1),

		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 2),

		TabActive: lipgloss.NewStyle().
			Foreground(background).
			Background(primary).
			Bold(true).
			Padding(0, 2),

		Selected: lipgloss.NewStyle().
			Background(primary).
			Foreground(background).
			Padding(0, 1),

		Unselected: lipgloss.NewStyle().
			Foreground(foreground).
			Padding(0, 1),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(1, 2),

		// Cached text styles
		MutedText:   lipgloss.NewStyle().Foreground(muted),
		PrimaryText: lipgloss.NewStyle().Foreground(primary),
		SuccessText: lipgloss.NewStyle().Foreground(success),
		ErrorText:   lipgloss.NewStyle().Foreground(errorColor),
		WarningText: lipgloss.NewStyle().Foreground(warning),

		GlamourStyle: glamourStyle(theme),
	}
}

// glamourStyle maps a theme name to a glamour standard style.
func glamourStyle(theme string) string {
	switch theme {
	case "dark", "light", "dracula", "pink", "ascii", "notty", "tokyo-night":
		return theme
	default:
		return "tokyo-night"
	}
}

// Keybinding returns styled keybinding text.
func (s *Styles) Keybinding(key, desc string) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(s.Primary).
		Bold(true)

	descStyle := lipgloss.NewStyle().
		Foreground(s.Muted)

	return keyStyle.Render("["+key+"]") + " " + descStyle.Render(desc)
}
