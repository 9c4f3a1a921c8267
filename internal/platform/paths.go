// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides XDG path, file and proxy helpers.
package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// GetXDGConfigHome returns XDG config directory.
func GetXDGConfigHome() string {
	return GetXDGConfigHomeWithEnv(os.Getenv("XDG_CONFIG_HOME"))
}

// GetXDGConfigHomeWithEnv returns XDG config directory with custom environment override for testing.
func GetXDGConfigHomeWithEnv(xdgConfigHome string) string {
	if xdgConfigHome != "" {
		return xdgConfigHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config")
	}

	return ""
}

// GetXDGStateHome returns XDG state directory, where logs live.
func GetXDGStateHome() string {
	return GetXDGStateHomeWithEnv(os.Getenv("XDG_STATE_HOME"))
}

// GetXDGStateHomeWithEnv returns XDG state directory with custom environment override for testing.
func GetXDGStateHomeWithEnv(xdgStateHome string) string {
	if xdgStateHome != "" {
		return xdgStateHome
	}

	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state")
	}

	return ""
}

// ExpandPath expands ~ and the XDG variables.
func ExpandPath(path string) string {
	return ExpandPathWithEnv(path, "", "")
}

// ExpandPathWithEnv expands paths with custom XDG environment variables for testing.
func ExpandPathWithEnv(path, xdgConfigHome, xdgStateHome string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}

	if after, found := strings.CutPrefix(path, "$XDG_CONFIG_HOME"); found {
		configHome := xdgConfigHome
		if configHome == "" {
			configHome = GetXDGConfigHome()
		}

		return configHome + after
	}

	if after, found := strings.CutPrefix(path, "$XDG_STATE_HOME"); found {
		stateHome := xdgStateHome
		if stateHome == "" {
			stateHome = GetXDGStateHome()
		}

		return stateHome + after
	}

	return path
}
