// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package artifact extracts a short outline from template artifacts.
package artifact

import (
	"fmt"
	"slices"

	"github.com/janderssonse/blueprints/internal/domain"
	"gopkg.in/yaml.v3"
)

// Summary outlines a template detail.
type Summary struct {
	Services   []string `json:"services"`    // compose service names, sorted
	ConfigKeys []string `json:"config_keys"` // top-level keys of template.yml, in file order
	Errors     []string `json:"errors,omitempty"`
}

// Empty reports whether nothing could be extracted.
func (s Summary) Empty() bool {
	return len(s.Services) == 0 && len(s.ConfigKeys) == 0
}

// Summarize parses the artifacts of detail. Parse failures are recorded in
// Errors and never abort the summary.
func Summarize(detail domain.Detail) Summary {
	summary := Summary{Services: []string{}, ConfigKeys: []string{}}

	if detail.Compose != nil {
		services, err := composeServices(*detail.Compose)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", domain.ComposeFile, err))
		}

		summary.Services = services
	}

	if detail.Config != nil {
		keys, err := topLevelKeys(*detail.Config)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", domain.ConfigFile, err))
		}

		summary.ConfigKeys = keys
	}

	return summary
}

func composeServices(text string) ([]string, error) {
	var doc struct {
		Services map[string]yaml.Node `yaml:"services"`
	}

	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return []string{}, fmt.Errorf("failed to parse compose file: %w", err)
	}

	services := make([]string, 0, len(doc.Services))
	for name := range doc.Services {
		services = append(services, name)
	}

	slices.Sort(services)

	return services, nil
}

func topLevelKeys(text string) ([]string, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return []string{}, fmt.Errorf("failed to parse template config: %w", err)
	}

	keys := []string{}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return keys, nil
	}

	mapping := root.Content[0]
	if mapping.Kind != yaml.MappingNode {
		return keys, fmt.Errorf("template config is a %s, not a mapping", kindName(mapping.Kind))
	}

	for i := 0; i+1 < len(mapping.Content); i += 2 {
		keys = append(keys, mapping.Content[i].Value)
	}

	return keys, nil
}

func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "document"
	}
}
