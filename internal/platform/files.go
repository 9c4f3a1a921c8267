// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"os"
)

// EnsureDir creates directory with parents if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o750)
}

// FileExists checks if file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)

	return err == nil
}
