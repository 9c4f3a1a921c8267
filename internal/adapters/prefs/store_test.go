// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package prefs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/janderssonse/blueprints/internal/adapters/prefs"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_MissingFile(t *testing.T) {
	t.Parallel()

	store := prefs.NewFileStore(filepath.Join(t.TempDir(), prefs.FileName))

	mode, found, err := store.LoadView()
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, domain.ViewGrid, mode)
}

func TestFileStore_RoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", prefs.FileName)
	store := prefs.NewFileStore(path)

	require.NoError(t, store.SaveView(domain.ViewRows))

	mode, found, err := prefs.NewFileStore(path).LoadView()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.ViewRows, mode)

	require.NoError(t, store.SaveView(domain.ViewGrid))

	mode, _, err = store.LoadView()
	require.NoError(t, err)
	assert.Equal(t, domain.ViewGrid, mode)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "view")
	assert.Contains(t, string(data), "grid")
}

func TestFileStore_BadContents(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		content   string
		wantFound bool
		wantErr   error
	}{
		{name: "empty record", content: ""},
		{name: "unknown mode", content: `view = "tiles"`, wantErr: domain.ErrInvalidDisplayMode},
		{name: "not toml", content: "view = "},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), prefs.FileName)
			require.NoError(t, os.WriteFile(path, []byte(testCase.content), 0o600))

			mode, found, err := prefs.NewFileStore(path).LoadView()

			assert.Equal(t, domain.ViewGrid, mode)
			assert.Equal(t, testCase.wantFound, found)

			switch {
			case testCase.wantErr != nil:
				require.ErrorIs(t, err, testCase.wantErr)
			case testCase.content == "":
				require.NoError(t, err)
			default:
				require.Error(t, err)
			}
		})
	}
}

func TestFileStore_SaveRejectsInvalidMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), prefs.FileName)

	err := prefs.NewFileStore(path).SaveView("tiles")
	require.ErrorIs(t, err, domain.ErrInvalidDisplayMode)
	assert.NoFileExists(t, path)
}

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	store := prefs.NewMemoryStore()

	_, found, err := store.LoadView()
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, store.SaveView(domain.ViewRows))

	mode, found, err := store.LoadView()
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, domain.ViewRows, mode)

	require.Error(t, store.SaveView(""))
}
