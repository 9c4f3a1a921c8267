// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package catalog holds the client-side template catalog: the store, the
// filter predicate and the values derived from them.
package catalog

import (
	"slices"

	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/stringutil"
)

// Matches reports whether tmpl passes the search and tag filters.
// The name must contain search (case-insensitive) and the template's tags must
// be a superset of tags. An empty tag set always passes.
func Matches(tmpl domain.Template, search string, tags []string) bool {
	if !stringutil.ContainsIgnoreCase(tmpl.Name, search) {
		return false
	}

	for _, tag := range tags {
		if !tmpl.HasTag(tag) {
			return false
		}
	}

	return true
}

// ComputeView returns the templates of snapshot that pass the filters, in
// snapshot order. It never returns nil.
func ComputeView(snapshot []domain.Template, search string, tags []string) []domain.Template {
	view := make([]domain.Template, 0, len(snapshot))

	for _, tmpl := range snapshot {
		if Matches(tmpl, search, tags) {
			view = append(view, tmpl)
		}
	}

	return view
}

// UniqueTags returns every distinct tag of snapshot, sorted lexicographically.
func UniqueTags(snapshot []domain.Template) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0)

	for _, tmpl := range snapshot {
		for _, tag := range tmpl.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}

			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	slices.Sort(tags)

	return tags
}

// FilterTags narrows a tag list to the entries containing query (case-insensitive).
func FilterTags(tags []string, query string) []string {
	if query == "" {
		return slices.Clone(tags)
	}

	filtered := make([]string, 0, len(tags))

	for _, tag := range tags {
		if stringutil.ContainsIgnoreCase(tag, query) {
			filtered = append(filtered, tag)
		}
	}

	return filtered
}
