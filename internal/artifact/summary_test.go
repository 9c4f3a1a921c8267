// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package artifact_test

import (
	"testing"

	"github.com/janderssonse/blueprints/internal/artifact"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const composeFixture = `version: "3.8"
services:
  web:
    image: ghost:5
  db:
    image: mysql:8
volumes:
  data: {}
`

const configFixture = `variables:
  main_domain: ${domain}
config:
  domains: []
  env: []
`

func TestSummarize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		detail     domain.Detail
		services   []string
		configKeys []string
		errCount   int
	}{
		{
			name:       "both artifacts",
			detail:     domain.Detail{Compose: domain.Text(composeFixture), Config: domain.Text(configFixture)},
			services:   []string{"db", "web"},
			configKeys: []string{"variables", "config"},
		},
		{
			name:       "absent detail",
			detail:     domain.Detail{},
			services:   []string{},
			configKeys: []string{},
		},
		{
			name:       "compose without services",
			detail:     domain.Detail{Compose: domain.Text("version: '3'\n")},
			services:   []string{},
			configKeys: []string{},
		},
		{
			name:       "broken yaml is reported",
			detail:     domain.Detail{Compose: domain.Text("services: [\n"), Config: domain.Text("- a\n- b\n")},
			services:   []string{},
			configKeys: []string{},
			errCount:   2,
		},
		{
			name:       "empty config",
			detail:     domain.Detail{Config: domain.Text("")},
			services:   []string{},
			configKeys: []string{},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			summary := artifact.Summarize(testCase.detail)

			assert.Equal(t, testCase.services, summary.Services)
			assert.Equal(t, testCase.configKeys, summary.ConfigKeys)
			require.Len(t, summary.Errors, testCase.errCount)
		})
	}
}

func TestSummary_Empty(t *testing.T) {
	t.Parallel()

	assert.True(t, artifact.Summary{}.Empty())
	assert.False(t, artifact.Summary{Services: []string{"web"}}.Empty())
}
