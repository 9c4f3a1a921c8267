// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/janderssonse/blueprints/internal/tui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPicker(t *testing.T) (*TagPicker, *catalog.Store) {
	t.Helper()

	store := NewTestStore()
	picker := NewTagPicker(styles.New(), store)
	picker.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	return picker, store
}

func TestTagPicker_ListsUniverse(t *testing.T) {
	t.Parallel()

	picker, _ := newTestPicker(t)

	assert.Equal(t, []string{"analytics", "blog", "cache", "cms", "database", "sql"}, picker.Visible())
	assert.True(t, picker.Typing())
	assert.NotNil(t, picker.Init())
	assert.Contains(t, picker.View(), "0 tags selected")
}

func TestTagPicker_FilterNarrows(t *testing.T) {
	t.Parallel()

	picker, _ := newTestPicker(t)

	picker.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("A")})
	assert.Equal(t, []string{"analytics", "cache", "database"}, picker.Visible())

	picker.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("zz")})
	assert.Empty(t, picker.Visible())
	assert.Contains(t, picker.View(), "No tags match.")
}

func TestTagPicker_ToggleWritesThrough(t *testing.T) {
	t.Parallel()

	picker, store := newTestPicker(t)

	picker.Update(tea.KeyMsg{Type: tea.KeyDown})
	picker.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, []string{"blog"}, store.SelectedTags())
	assert.Equal(t, 1, store.TemplatesCount())
	assert.Contains(t, picker.View(), "1 tag selected")

	picker.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.Empty(t, store.SelectedTags())

	picker.Update(tea.KeyMsg{Type: tea.KeyEnter})
	picker.Update(tea.KeyMsg{Type: tea.KeyUp})
	picker.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, []string{"blog", "analytics"}, store.SelectedTags())
	assert.Equal(t, 0, store.TemplatesCount())

	picker.Update(tea.KeyMsg{Type: tea.KeyCtrlX})
	assert.Empty(t, store.SelectedTags())
}

func TestTagPicker_QuitKeyIsFilterText(t *testing.T) {
	t.Parallel()

	picker, _ := newTestPicker(t)

	_, cmd := picker.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd != nil {
		_, isClose := cmd().(CloseTagsMsg)
		assert.False(t, isClose)
	}

	assert.Equal(t, []string{"sql"}, picker.Visible())
}

func TestTagPicker_Close(t *testing.T) {
	t.Parallel()

	picker, _ := newTestPicker(t)

	_, cmd := picker.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, CloseTagsMsg{}, cmd())
}
