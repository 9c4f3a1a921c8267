// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package domain holds the catalog entities, error taxonomy and ports shared by
// the store, the network adapters and the user interfaces.
package domain

import (
	"net/url"
	"strings"
)

// Artifact file names served next to each template.
const (
	ComposeFile = "docker-compose.yml"
	ConfigFile  = "template.yml"
	IndexPath   = "/meta.json"
	// BlueprintsDir is the URL prefix under which template assets live.
	BlueprintsDir = "/blueprints"
	// DefaultEditBaseURL points at the upstream repository tree of templates.
	DefaultEditBaseURL = "https://github.com/Dokploy/templates/tree/main/blueprints"
)

// Links groups the optional external references of a template.
type Links struct {
	GitHub  string `json:"github,omitempty"`
	Website string `json:"website,omitempty"`
	Docs    string `json:"docs,omitempty"`
}

// Template is one catalog entry as published in meta.json.
// Values are treated as immutable once loaded.
type Template struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Version     string   `json:"version"`
	Logo        string   `json:"logo,omitempty"`
	Links       Links    `json:"links"`
	Tags        []string `json:"tags"`
}

// HasTag reports whether the template carries tag (exact match).
func (t Template) HasTag(tag string) bool {
	for _, candidate := range t.Tags {
		if candidate == tag {
			return true
		}
	}

	return false
}

// LogoPath returns the asset path of the logo, or "" when the template has none.
func (t Template) LogoPath() string {
	if t.Logo == "" {
		return ""
	}

	return ArtifactPath(t.ID, t.Logo)
}

// EditURL returns the upstream source location of the template.
func (t Template) EditURL(base string) string {
	if base == "" {
		base = DefaultEditBaseURL
	}

	return strings.TrimSuffix(base, "/") + "/" + url.PathEscape(t.ID)
}

// ArtifactPath builds /blueprints/{id}/{file} with the identifier path-escaped.
func ArtifactPath(templateID, file string) string {
	return BlueprintsDir + "/" + url.PathEscape(templateID) + "/" + file
}

// Detail carries the two optional artifacts of a template.
// A nil field means the artifact does not exist; that is not an error.
type Detail struct {
	Compose *string
	Config  *string
}

// Empty reports whether both artifacts are absent.
func (d Detail) Empty() bool {
	return d.Compose == nil && d.Config == nil
}

// ComposeText returns the compose artifact or "" when absent.
func (d Detail) ComposeText() string {
	if d.Compose == nil {
		return ""
	}

	return *d.Compose
}

// ConfigText returns the config artifact or "" when absent.
func (d Detail) ConfigText() string {
	if d.Config == nil {
		return ""
	}

	return *d.Config
}

// Text returns a pointer to s, for building Detail values.
func Text(s string) *string {
	return &s
}
