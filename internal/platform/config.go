// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"path/filepath"
)

// AppName names the per-user directories.
const AppName = "blueprints"

// GetConfigPath returns $XDG_CONFIG_HOME/blueprints.
func GetConfigPath() string {
	return filepath.Join(GetXDGConfigHome(), AppName)
}

// GetStatePath returns $XDG_STATE_HOME/blueprints.
func GetStatePath() string {
	return filepath.Join(GetXDGStateHome(), AppName)
}
