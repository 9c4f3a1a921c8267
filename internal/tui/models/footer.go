// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/janderssonse/blueprints/internal/tui/styles"
)

// FooterAction represents a key-action pair for footer display.
type FooterAction struct {
	Key    string
	Action string
}

// RenderFooter creates a standardized footer with the given actions.
func RenderFooter(styleConfig *styles.Styles, width int, actions []FooterAction, includeHelp bool) string {
	return RenderFooterWithStatus(styleConfig, width, actions, includeHelp, StatusMsg{})
}

// RenderFooterWithStatus renders the footer with an optional status line above the hints.
func RenderFooterWithStatus(styleConfig *styles.Styles, width int, actions []FooterAction, includeHelp bool, status StatusMsg) string {
	keyStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styleConfig.Primary)

	actionStyle := lipgloss.NewStyle().
		Foreground(styleConfig.Muted)

	formatAction := func(key, action string) string {
		return keyStyle.Render("["+key+"]") + " " + actionStyle.Render(action)
	}

	actionStrings := make([]string, 0, len(actions)+1)
	for _, action := range actions {
		actionStrings = append(actionStrings, formatAction(action.Key, action.Action))
	}

	if includeHelp {
		helpKey := keyStyle.Render("[") +
			lipgloss.NewStyle().Bold(true).Foreground(styleConfig.Warning).Render("?") +
			keyStyle.Render("]")
		actionStrings = append(actionStrings, helpKey+" "+actionStyle.Render("Help"))
	}

	footerText := strings.Join(actionStrings, "   ")

	if status.Text != "" {
		statusStyle := styleConfig.SuccessText
		if status.Error {
			statusStyle = styleConfig.ErrorText
		}

		footerText = statusStyle.Render(status.Text) + "\n" + footerText
	}

	return lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(lipgloss.Color("240")).
		Width(width).
		Render(footerText)
}
