// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog_test

import (
	"testing"

	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleTemplates() []domain.Template {
	return []domain.Template{
		{ID: "postgres", Name: "Postgres", Version: "16", Tags: []string{"database", "sql"}},
		{ID: "redis", Name: "Redis", Version: "7", Tags: []string{"database", "cache"}},
		{ID: "plausible", Name: "Plausible Analytics", Version: "2.1", Tags: []string{"analytics"}},
		{ID: "bare", Name: "Bare"},
	}
}

func ids(templates []domain.Template) []string {
	out := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		out = append(out, tmpl.ID)
	}

	return out
}

func TestComputeView(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		search string
		tags   []string
		want   []string
	}{
		{name: "no filters keeps snapshot order", want: []string{"postgres", "redis", "plausible", "bare"}},
		{name: "case-insensitive name search", search: "pOsT", want: []string{"postgres"}},
		{name: "single tag", tags: []string{"database"}, want: []string{"postgres", "redis"}},
		{name: "tag intersection", tags: []string{"database", "sql"}, want: []string{"postgres"}},
		{name: "search and tag", search: "re", tags: []string{"database"}, want: []string{"postgres", "redis"}},
		{name: "search excludes by name only", search: "sql", want: []string{}},
		{name: "unknown tag", tags: []string{"nope"}, want: []string{}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			view := catalog.ComputeView(sampleTemplates(), testCase.search, testCase.tags)
			assert.NotNil(t, view)
			assert.Equal(t, testCase.want, ids(view))
		})
	}
}

func TestMatches_PostgresRedisExample(t *testing.T) {
	t.Parallel()

	templates := sampleTemplates()
	postgres, redis := templates[0], templates[1]

	assert.True(t, catalog.Matches(postgres, "post", []string{"database"}))
	assert.False(t, catalog.Matches(redis, "post", []string{"database"}))
	assert.True(t, catalog.Matches(redis, "", []string{"database", "cache"}))
	assert.False(t, catalog.Matches(redis, "", []string{"database", "sql"}))
}

func TestUniqueTags(t *testing.T) {
	t.Parallel()

	got := catalog.UniqueTags([]domain.Template{
		{Tags: []string{"a", "b"}},
		{Tags: []string{"b"}},
		{Tags: []string{}},
	})
	assert.Equal(t, []string{"a", "b"}, got)

	assert.Equal(t, []string{"analytics", "cache", "database", "sql"}, catalog.UniqueTags(sampleTemplates()))
	assert.Equal(t, []string{}, catalog.UniqueTags(nil))
}

func TestFilterTags(t *testing.T) {
	t.Parallel()

	tags := []string{"analytics", "cache", "Database", "sql"}

	assert.Equal(t, tags, catalog.FilterTags(tags, ""))
	assert.Equal(t, []string{"Database"}, catalog.FilterTags(tags, "data"))
	assert.Equal(t, []string{"analytics", "cache", "Database"}, catalog.FilterTags(tags, "A"))
	assert.Empty(t, catalog.FilterTags(tags, "zzz"))
}
