// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import "fmt"

// Exit codes follow standard Unix conventions for better scripting support.
const (
	ExitSuccess       = 0  // Command completed successfully
	ExitGeneralError  = 1  // Generic failure
	ExitUsageError    = 2  // Invalid arguments/usage
	ExitConfigError   = 3  // Configuration issues
	ExitNotFoundError = 5  // Template not found
	ExitNetworkError  = 11 // Catalog server failures
	ExitSystemError   = 12 // Filesystem issues
)

// ExitError carries the process exit code for a failure.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
