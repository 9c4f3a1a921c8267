// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadErrorFormatting(t *testing.T) {
	tests := []struct {
		name            string
		err             *domain.LoadError
		expectedMessage string
	}{
		{
			name:            "load error with cause",
			err:             domain.NewLoadError("failed to fetch templates", errors.New("status 500")),
			expectedMessage: "failed to fetch templates: status 500",
		},
		{
			name:            "load error without cause",
			err:             domain.NewLoadError("failed to fetch templates", nil),
			expectedMessage: "failed to fetch templates",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expectedMessage, tc.err.Error())
			assert.ErrorIs(t, tc.err, domain.ErrIndexUnavailable)
		})
	}
}

func TestLoadErrorUnwrapsCause(t *testing.T) {
	err := error(domain.NewLoadError("failed to fetch templates", context.DeadlineExceeded))

	assert.ErrorIs(t, err, context.DeadlineExceeded)

	var loadErr *domain.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "failed to fetch templates", loadErr.Message)
}

func TestFetchErrorFormatting(t *testing.T) {
	err := domain.NewFetchError("postgres", context.Canceled)

	assert.Equal(t, `fetching "postgres": context canceled`, err.Error())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, `fetching "redis" failed`, domain.NewFetchError("redis", nil).Error())
}

func TestFormatErrorMessage(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		verbose       bool
		shouldContain []string
		shouldNotHave []string
	}{
		{
			name:          "unreachable server",
			err:           errors.New("dial tcp 127.0.0.1:1: connect: connection refused"),
			shouldContain: []string{"Catalog server unreachable", "--base-url"},
			shouldNotHave: []string{"Technical details"},
		},
		{
			name:          "malformed index in verbose mode",
			err:           errors.New("invalid character 'x' looking for beginning of value"),
			verbose:       true,
			shouldContain: []string{"Template index is malformed", "Technical details", "Suggestions:"},
		},
		{
			name:          "display mode",
			err:           domain.ErrInvalidDisplayMode,
			shouldContain: []string{"Unknown display mode", "grid"},
		},
		{
			name:          "generic failure",
			err:           errors.New("something odd"),
			shouldContain: []string{"Operation failed", "--verbose"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			message := domain.FormatErrorMessage(tc.err, tc.verbose)

			for _, want := range tc.shouldContain {
				assert.Contains(t, message, want)
			}

			for _, unwanted := range tc.shouldNotHave {
				assert.NotContains(t, message, unwanted)
			}
		})
	}
}

func TestGetErrorInfoNil(t *testing.T) {
	assert.Equal(t, domain.ErrorInfo{}, domain.GetErrorInfo(nil, true))
}
