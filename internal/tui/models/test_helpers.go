// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package models

import (
	"github.com/janderssonse/blueprints/internal/adapters/prefs"
	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/janderssonse/blueprints/internal/domain"
)

// NewTestStore creates an in-memory store filled with a small catalog.
func NewTestStore() *catalog.Store {
	store := catalog.NewStore(prefs.NewMemoryStore(), nil)
	store.SetTemplates(TestTemplates())

	return store
}

// TestTemplates returns a fixed catalog for screen tests.
func TestTemplates() []domain.Template {
	return []domain.Template{
		{
			ID: "ghost", Name: "Ghost", Version: "5.0", Description: "Publishing platform",
			Links: domain.Links{GitHub: "https://github.com/TryGhost/Ghost", Website: "https://ghost.org"},
			Tags:  []string{"cms", "blog"},
		},
		{ID: "postgres", Name: "Postgres", Version: "16", Description: "SQL database", Tags: []string{"database", "sql"}},
		{ID: "redis", Name: "Redis", Version: "7", Description: "In-memory store", Tags: []string{"database", "cache"}},
		{ID: "plausible", Name: "Plausible Analytics", Version: "2.1", Description: "Privacy-friendly analytics", Tags: []string{"analytics"}},
	}
}
