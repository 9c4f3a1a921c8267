// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package config loads blueprints settings from config.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/platform"
	"github.com/pelletier/go-toml/v2"
)

// FileName is the configuration file inside the blueprints config directory.
const FileName = "config.toml"

// Defaults.
const (
	DefaultBaseURL      = "http://localhost:3000"
	DefaultTimeout      = 15 * time.Second
	DefaultMaxBodyBytes = 4 << 20
	DefaultLogLevel     = "info"
	DefaultTheme        = "tokyo-night"
)

var (
	// ErrInvalidConfig is returned by Validate.
	ErrInvalidConfig = errors.New("invalid configuration")

	validLogLevels = []string{"debug", "info", "warn", "error"}
)

// Config holds every tunable of the client.
type Config struct {
	BaseURL      string        `toml:"base_url"`
	Timeout      time.Duration `toml:"timeout"`
	MaxBodyBytes int64         `toml:"max_body_bytes"`
	LogLevel     string        `toml:"log_level"`
	LogFile      string        `toml:"log_file"`
	EditBaseURL  string        `toml:"edit_base_url"`
	Theme        string        `toml:"theme"`
}

// fileConfig mirrors Config with a string timeout so "10s" can be written.
type fileConfig struct {
	BaseURL      string `toml:"base_url"`
	Timeout      string `toml:"timeout"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
	LogLevel     string `toml:"log_level"`
	LogFile      string `toml:"log_file"`
	EditBaseURL  string `toml:"edit_base_url"`
	Theme        string `toml:"theme"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:      DefaultBaseURL,
		Timeout:      DefaultTimeout,
		MaxBodyBytes: DefaultMaxBodyBytes,
		LogLevel:     DefaultLogLevel,
		LogFile:      DefaultLogFile(),
		EditBaseURL:  domain.DefaultEditBaseURL,
		Theme:        DefaultTheme,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/blueprints/config.toml.
func DefaultPath() string {
	return filepath.Join(platform.GetConfigPath(), FileName)
}

// DefaultLogFile returns $XDG_STATE_HOME/blueprints/blueprints.log.
func DefaultLogFile() string {
	return filepath.Join(platform.GetStatePath(), platform.AppName+".log")
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // user-chosen config path
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}

	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	var raw fileConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.merge(raw); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c *Config) merge(raw fileConfig) error {
	if raw.BaseURL != "" {
		c.BaseURL = raw.BaseURL
	}

	if raw.Timeout != "" {
		timeout, err := time.ParseDuration(raw.Timeout)
		if err != nil {
			return fmt.Errorf("%w: timeout %q: %w", ErrInvalidConfig, raw.Timeout, err)
		}

		c.Timeout = timeout
	}

	if raw.MaxBodyBytes != 0 {
		c.MaxBodyBytes = raw.MaxBodyBytes
	}

	if raw.LogLevel != "" {
		c.LogLevel = raw.LogLevel
	}

	if raw.LogFile != "" {
		c.LogFile = platform.ExpandPath(raw.LogFile)
	}

	if raw.EditBaseURL != "" {
		c.EditBaseURL = raw.EditBaseURL
	}

	if raw.Theme != "" {
		c.Theme = raw.Theme
	}

	return nil
}

// Validate checks URLs and limits.
func (c Config) Validate() error {
	if err := validateURL("base_url", c.BaseURL); err != nil {
		return err
	}

	if err := validateURL("edit_base_url", c.EditBaseURL); err != nil {
		return err
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive, got %s", ErrInvalidConfig, c.Timeout)
	}

	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: max_body_bytes must be positive, got %d", ErrInvalidConfig, c.MaxBodyBytes)
	}

	level := strings.ToLower(c.LogLevel)
	for _, valid := range validLogLevels {
		if level == valid {
			return nil
		}
	}

	return fmt.Errorf("%w: log_level %q (use %s)", ErrInvalidConfig, c.LogLevel, strings.Join(validLogLevels, ", "))
}

func validateURL(field, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, field, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w: %s must be an http(s) URL, got %q", ErrInvalidConfig, field, raw)
	}

	if parsed.Host == "" {
		return fmt.Errorf("%w: %s has no host: %q", ErrInvalidConfig, field, raw)
	}

	return nil
}
