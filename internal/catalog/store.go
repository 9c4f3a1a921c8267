// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"fmt"
	"slices"
	"sync"

	"github.com/janderssonse/blueprints/internal/domain"
	"go.uber.org/zap"
)

// Store holds the catalog snapshot, the filter state and the display mode.
// Every mutating call replaces the derived view before it returns, so readers
// never observe a view computed from older inputs.
type Store struct {
	mu sync.RWMutex

	templates []domain.Template
	filtered  []domain.Template
	tags      []string // derived tag universe

	search   string
	selected []string // unique, in insertion order

	view  domain.DisplayMode
	prefs domain.PreferenceStore

	logger *zap.Logger
}

// NewStore creates an empty store. The display mode is read once from prefs;
// a missing or unreadable preference falls back to grid.
func NewStore(prefs domain.PreferenceStore, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}

	store := &Store{
		templates: []domain.Template{},
		filtered:  []domain.Template{},
		tags:      []string{},
		selected:  []string{},
		view:      domain.DefaultView,
		prefs:     prefs,
		logger:    logger,
	}

	if prefs == nil {
		return store
	}

	mode, found, err := prefs.LoadView()

	switch {
	case err != nil:
		logger.Warn("display preference unreadable, using default",
			zap.Error(err), zap.Stringer("view", domain.DefaultView))
	case found && mode.IsValid():
		store.view = mode
	}

	return store
}

// SetTemplates replaces the catalog snapshot wholesale.
func (s *Store) SetTemplates(templates []domain.Template) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.templates = slices.Clone(templates)
	if s.templates == nil {
		s.templates = []domain.Template{}
	}

	s.tags = UniqueTags(s.templates)
	s.recompute()

	s.logger.Debug("catalog replaced",
		zap.Int("templates", len(s.templates)), zap.Int("tags", len(s.tags)))
}

// SetSearchQuery replaces the search string verbatim.
func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.search = query
	s.recompute()
}

// ClearSearch resets the search string.
func (s *Store) ClearSearch() {
	s.SetSearchQuery("")
}

// AddSelectedTag adds tag to the selected set. Adding a present tag is a no-op.
func (s *Store) AddSelectedTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.selected, tag) {
		return
	}

	s.selected = append(slices.Clone(s.selected), tag)
	s.recompute()
}

// RemoveSelectedTag removes tag from the selected set. Removing an absent tag is a no-op.
func (s *Store) RemoveSelectedTag(tag string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.selected, tag)
	if idx < 0 {
		return
	}

	s.selected = slices.Delete(slices.Clone(s.selected), idx, idx+1)
	s.recompute()
}

// ToggleSelectedTag adds tag when absent and removes it when present.
// It returns whether the tag is selected afterwards.
func (s *Store) ToggleSelectedTag(tag string) bool {
	if s.HasSelectedTag(tag) {
		s.RemoveSelectedTag(tag)

		return false
	}

	s.AddSelectedTag(tag)

	return true
}

// ClearSelectedTags empties the selected set.
func (s *Store) ClearSelectedTags() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.selected) == 0 {
		return
	}

	s.selected = []string{}
	s.recompute()
}

// SetView updates the display mode and writes it through the preference port.
// The in-memory mode changes even when persisting fails.
func (s *Store) SetView(mode domain.DisplayMode) error {
	if !mode.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrInvalidDisplayMode, mode)
	}

	s.mu.Lock()
	s.view = mode
	prefs := s.prefs
	s.mu.Unlock()

	if prefs == nil {
		return nil
	}

	if err := prefs.SaveView(mode); err != nil {
		s.logger.Warn("failed to persist display preference", zap.Error(err), zap.Stringer("view", mode))

		return fmt.Errorf("failed to persist display mode: %w", err)
	}

	return nil
}

// Templates returns the full catalog snapshot.
func (s *Store) Templates() []domain.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.templates)
}

// FilteredTemplates returns the derived view.
func (s *Store) FilteredTemplates() []domain.Template {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.filtered)
}

// TemplatesCount returns the size of the derived view.
func (s *Store) TemplatesCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.filtered)
}

// TotalCount returns the size of the catalog snapshot.
func (s *Store) TotalCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.templates)
}

// SearchQuery returns the current search string.
func (s *Store) SearchQuery() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.search
}

// SelectedTags returns the selected tags in insertion order.
func (s *Store) SelectedTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.selected)
}

// HasSelectedTag reports whether tag is selected.
func (s *Store) HasSelectedTag(tag string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Contains(s.selected, tag)
}

// View returns the display mode.
func (s *Store) View() domain.DisplayMode {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.view
}

// UniqueTags returns the sorted tag universe of the current snapshot.
func (s *Store) UniqueTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.tags)
}

// Lookup finds a template of the snapshot by identifier.
func (s *Store) Lookup(id string) (domain.Template, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tmpl := range s.templates {
		if tmpl.ID == id {
			return tmpl, true
		}
	}

	return domain.Template{}, false
}

// recompute must be called with mu held for writing.
func (s *Store) recompute() {
	s.filtered = ComputeView(s.templates, s.search, s.selected)
}
