// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package prefs persists the display-mode preference.
package prefs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/platform"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the preference record inside the blueprints config directory.
const FileName = "preferences.toml"

// Compile-time interface checks.
var (
	_ domain.PreferenceStore = (*FileStore)(nil)
	_ domain.PreferenceStore = (*MemoryStore)(nil)
)

// Record is the on-disk layout. Only the display mode is persisted.
type Record struct {
	View string `toml:"view"`
}

// FileStore keeps the preference in a TOML file guarded by an advisory lock.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath returns $XDG_CONFIG_HOME/blueprints/preferences.toml.
func DefaultPath() string {
	return filepath.Join(platform.GetConfigPath(), FileName)
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// LoadView reads the stored mode. A missing file is not an error.
func (s *FileStore) LoadView() (domain.DisplayMode, bool, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.DefaultView, false, nil
	}

	if err != nil {
		return domain.DefaultView, false, fmt.Errorf("failed to read preferences: %w", err)
	}

	var record Record
	if err := toml.Unmarshal(data, &record); err != nil {
		return domain.DefaultView, false, fmt.Errorf("failed to parse preferences: %w", err)
	}

	if record.View == "" {
		return domain.DefaultView, false, nil
	}

	mode, err := domain.ParseDisplayMode(record.View)
	if err != nil {
		return domain.DefaultView, false, err
	}

	return mode, true, nil
}

// SaveView writes the mode atomically while holding the file lock.
func (s *FileStore) SaveView(mode domain.DisplayMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDisplayMode, mode)
	}

	dir := filepath.Dir(s.path)
	if err := platform.EnsureDir(dir); err != nil {
		return fmt.Errorf("failed to create preference directory: %w", err)
	}

	lock := flock.New(s.path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("failed to lock preferences: %w", err)
	}

	defer func() {
		_ = lock.Unlock()
	}()

	data, err := toml.Marshal(Record{View: mode.String()})
	if err != nil {
		return fmt.Errorf("failed to encode preferences: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".preferences-*.toml")
	if err != nil {
		return fmt.Errorf("failed to create temporary preference file: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("failed to write preferences: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("failed to write preferences: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)

		return fmt.Errorf("failed to replace preferences: %w", err)
	}

	return nil
}

// MemoryStore keeps the preference for the lifetime of the process.
type MemoryStore struct {
	mu    sync.Mutex
	mode  domain.DisplayMode
	saved bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{mode: domain.DefaultView}
}

// LoadView returns the last saved mode.
func (m *MemoryStore) LoadView() (domain.DisplayMode, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.mode, m.saved, nil
}

// SaveView records mode.
func (m *MemoryStore) SaveView(mode domain.DisplayMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDisplayMode, mode)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.mode = mode
	m.saved = true

	return nil
}
