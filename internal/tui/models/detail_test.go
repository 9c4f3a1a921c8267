// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/encoder"
	"github.com/janderssonse/blueprints/internal/tui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDetail(t *testing.T) *Detail {
	t.Helper()

	detail := NewDetail(styles.New(), TestTemplates()[0], "")
	detail.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	return detail
}

func TestDetail_StartsLoading(t *testing.T) {
	t.Parallel()

	detail := newTestDetail(t)

	assert.True(t, detail.Loading())
	assert.Equal(t, "ghost", detail.TemplateID())
	assert.NotNil(t, detail.Init())

	view := detail.View()
	assert.Contains(t, view, "Fetching configuration files")
	assert.Contains(t, view, "Ghost")
	assert.Contains(t, view, domain.DefaultEditBaseURL+"/ghost")
	assert.Contains(t, view, "https://ghost.org")
}

func TestDetail_SetResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		detail   domain.Detail
		wantTab  int
		wantBlob bool
		wantText string
	}{
		{
			name:     "both artifacts absent",
			detail:   domain.Detail{},
			wantTab:  TabCompose,
			wantBlob: false,
			wantText: NoConfigFiles,
		},
		{
			name:     "compose only",
			detail:   domain.Detail{Compose: domain.Text("services:\n  web:\n    image: ghost\n")},
			wantTab:  TabCompose,
			wantBlob: true,
			wantText: "Services: web",
		},
		{
			name:     "config only selects config tab",
			detail:   domain.Detail{Config: domain.Text("variables:\n  domain: example.com\n")},
			wantTab:  TabConfig,
			wantBlob: true,
			wantText: "Config: variables",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			detail := newTestDetail(t)
			detail.SetResult(tt.detail, nil)

			assert.False(t, detail.Loading())
			require.NoError(t, detail.Err())
			assert.Equal(t, tt.wantTab, detail.Tab())
			assert.Equal(t, encoder.Encode(tt.detail), detail.Blob())
			assert.Equal(t, tt.wantBlob, detail.Blob() != "")
			assert.Contains(t, detail.View(), tt.wantText)
		})
	}
}

func TestDetail_BlobTab(t *testing.T) {
	t.Parallel()

	detail := newTestDetail(t)
	detail.SetResult(domain.Detail{Compose: domain.Text("a"), Config: domain.Text("b")}, nil)

	detail.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabConfig, detail.Tab())

	detail.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, TabBlob, detail.Tab())
	assert.Contains(t, detail.View(), detail.Blob())

	detail.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, TabCompose, detail.Tab())

	detail.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, TabBlob, detail.Tab())
}

func TestDetail_ErrorAndRetry(t *testing.T) {
	t.Parallel()

	detail := newTestDetail(t)

	_, cmd := detail.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, cmd, "retry is only offered after a failure")

	detail.SetResult(domain.Detail{}, domain.NewFetchError("ghost", errors.New("dial tcp: connection refused")))

	require.Error(t, detail.Err())
	assert.Empty(t, detail.Blob())
	assert.Contains(t, detail.View(), "Catalog server unreachable")

	_, cmd = detail.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.Equal(t, OpenDetailMsg{TemplateID: "ghost"}, cmd())
}

func TestDetail_Close(t *testing.T) {
	t.Parallel()

	for _, msg := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyBackspace}} {
		detail := newTestDetail(t)

		_, cmd := detail.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, CloseDetailMsg{}, cmd())
	}
}

func TestDetail_CustomEditBase(t *testing.T) {
	t.Parallel()

	detail := NewDetail(styles.New(), TestTemplates()[1], "https://git.example.com/templates/")
	detail.SetSize(120, 40)

	assert.Contains(t, detail.View(), "https://git.example.com/templates/postgres")
}
