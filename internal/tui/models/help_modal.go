// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/blueprints/internal/tui/styles"
)

// HelpModal shows the key bindings of the current screen.
type HelpModal struct {
	styles   *styles.Styles
	visible  bool
	screen   Screen
	commands []HelpModalSection
	keys     HelpKeyMap
}

// HelpModalSection groups related commands.
type HelpModalSection struct {
	Title    string
	Commands []HelpModalCommand
}

// HelpModalCommand represents a single keyboard command.
type HelpModalCommand struct {
	Keys        string
	Description string
}

// HelpKeyMap holds the bindings that open and close the modal.
type HelpKeyMap struct {
	Help  key.Binding
	Close key.Binding
}

// DefaultHelpKeyMap returns the default key bindings.
func DefaultHelpKeyMap() HelpKeyMap {
	return HelpKeyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Close: key.NewBinding(
			key.WithKeys(KeyEsc, "q"),
			key.WithHelp("esc", "close help"),
		),
	}
}

// NewHelpModal creates a hidden help modal.
func NewHelpModal(styleConfig *styles.Styles) *HelpModal {
	return &HelpModal{
		styles: styleConfig,
		keys:   DefaultHelpKeyMap(),
	}
}

// SetScreen updates the help content based on current screen.
func (h *HelpModal) SetScreen(screen Screen) {
	h.screen = screen
	h.commands = commandsForScreen(screen)
}

// Toggle shows/hides the modal.
func (h *HelpModal) Toggle() {
	h.visible = !h.visible
}

// Show displays the modal.
func (h *HelpModal) Show() {
	h.visible = true
}

// Hide closes the modal.
func (h *HelpModal) Hide() {
	h.visible = false
}

// IsVisible returns whether the modal is shown.
func (h *HelpModal) IsVisible() bool {
	return h.visible
}

// Keys returns the modal bindings.
func (h *HelpModal) Keys() HelpKeyMap {
	return h.keys
}

// Update handles key events for the modal.
func (h *HelpModal) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, h.keys.Help) || key.Matches(msg, h.keys.Close) {
			h.Hide()
		}
	}

	return nil
}

// View renders the help modal.
func (h *HelpModal) View() string {
	if !h.visible {
		return ""
	}

	keyStyle := lipgloss.NewStyle().
		Foreground(h.styles.Warning).
		Width(14)

	sectionStyle := lipgloss.NewStyle().
		Foreground(h.styles.Secondary).
		Bold(true)

	var content strings.Builder

	content.WriteString(h.styles.Title.Render("Keyboard Shortcuts"))
	content.WriteString("\n")

	for _, section := range h.commands {
		content.WriteString("\n")
		content.WriteString(sectionStyle.Render(section.Title))
		content.WriteString("\n")

		for _, cmd := range section.Commands {
			content.WriteString(fmt.Sprintf("%s %s\n", keyStyle.Render(cmd.Keys), cmd.Description))
		}
	}

	content.WriteString("\n")
	content.WriteString(h.styles.MutedText.Render("Press ? or Esc to close"))

	return h.styles.Modal.MaxWidth(64).Render(content.String())
}

func commandsForScreen(screen Screen) []HelpModalSection {
	general := HelpModalSection{
		Title: "General",
		Commands: []HelpModalCommand{
			{"?", "Toggle this help"},
			{"q / Ctrl+C", "Quit"},
		},
	}

	switch screen {
	case DetailScreen:
		return []HelpModalSection{
			{
				Title: "Files",
				Commands: []HelpModalCommand{
					{"Tab / →", "Next file"},
					{"Shift+Tab / ←", "Previous file"},
					{"j/k or ↑↓", "Scroll"},
				},
			},
			{
				Title: "Actions",
				Commands: []HelpModalCommand{
					{"r", "Retry a failed fetch"},
					{"Esc", "Back to the catalog"},
				},
			},
			general,
		}
	case TagsScreen:
		return []HelpModalSection{
			{
				Title: "Tags",
				Commands: []HelpModalCommand{
					{"type", "Narrow the tag list"},
					{"↑↓", "Move"},
					{"Enter / Space", "Toggle tag"},
					{"Ctrl+X", "Clear all tags"},
					{"Esc", "Done"},
				},
			},
		}
	case LoadingScreen, ErrorScreen:
		return []HelpModalSection{
			{
				Title: "Catalog",
				Commands: []HelpModalCommand{
					{"r", "Retry loading the index"},
				},
			},
			general,
		}
	default:
		return []HelpModalSection{
			{
				Title: "Navigation",
				Commands: []HelpModalCommand{
					{"h/j/k/l", "Move between templates"},
					{"Enter", "Open template"},
				},
			},
			{
				Title: "Filtering",
				Commands: []HelpModalCommand{
					{"/", "Search by name"},
					{"Esc", "Clear search"},
					{"t", "Pick tags"},
					{"1-3", "Add a tag of the template"},
					{"x", "Clear tags"},
				},
			},
			{
				Title: "Display",
				Commands: []HelpModalCommand{
					{"v", "Switch grid / rows"},
				},
			},
			general,
		}
	}
}
