// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/janderssonse/blueprints/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, config.DefaultTimeout, cfg.Timeout)
	assert.EqualValues(t, config.DefaultMaxBodyBytes, cfg.MaxBodyBytes)
	require.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
base_url = "https://templates.example.com"
timeout = "3s"
max_body_bytes = 1024
log_level = "debug"
theme = "plain"
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://templates.example.com", cfg.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.EqualValues(t, 1024, cfg.MaxBodyBytes)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "plain", cfg.Theme)
	assert.NotEmpty(t, cfg.EditBaseURL)
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed toml", content: "base_url = "},
		{name: "bad duration", content: `timeout = "soon"`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			_, err := config.Load(writeConfig(t, testCase.content))
			require.Error(t, err)
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*config.Config) {}},
		{name: "uppercase level", mutate: func(c *config.Config) { c.LogLevel = "WARN" }},
		{name: "ftp base url", mutate: func(c *config.Config) { c.BaseURL = "ftp://host" }, wantErr: true},
		{name: "no host", mutate: func(c *config.Config) { c.BaseURL = "http://" }, wantErr: true},
		{name: "bad edit url", mutate: func(c *config.Config) { c.EditBaseURL = "github" }, wantErr: true},
		{name: "zero timeout", mutate: func(c *config.Config) { c.Timeout = 0 }, wantErr: true},
		{name: "negative body limit", mutate: func(c *config.Config) { c.MaxBodyBytes = -1 }, wantErr: true},
		{name: "unknown level", mutate: func(c *config.Config) { c.LogLevel = "trace" }, wantErr: true},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			testCase.mutate(&cfg)

			err := cfg.Validate()
			if testCase.wantErr {
				require.ErrorIs(t, err, config.ErrInvalidConfig)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
