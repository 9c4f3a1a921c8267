// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil provides test doubles for the catalog ports.
package testutil

import (
	"context"

	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockIndexLoader mocks the IndexLoader port for testing.
type MockIndexLoader struct {
	mock.Mock
}

// Load mocks index retrieval.
func (m *MockIndexLoader) Load(ctx context.Context) ([]domain.Template, error) {
	args := m.Called(ctx)
	if result := args.Get(0); result != nil {
		res, ok := result.([]domain.Template)
		if !ok {
			return nil, args.Error(1)
		}

		return res, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockDetailFetcher mocks the DetailFetcher port for testing.
type MockDetailFetcher struct {
	mock.Mock
}

// FetchDetail mocks detail retrieval.
func (m *MockDetailFetcher) FetchDetail(ctx context.Context, templateID string) (domain.Detail, error) {
	args := m.Called(ctx, templateID)

	detail, ok := args.Get(0).(domain.Detail)
	if !ok {
		return domain.Detail{}, args.Error(1)
	}

	return detail, args.Error(1)
}

// MockPreferenceStore mocks the PreferenceStore port for testing.
type MockPreferenceStore struct {
	mock.Mock
}

// LoadView mocks reading the display mode.
func (m *MockPreferenceStore) LoadView() (domain.DisplayMode, bool, error) {
	args := m.Called()

	mode, ok := args.Get(0).(domain.DisplayMode)
	if !ok {
		mode = domain.DefaultView
	}

	return mode, args.Bool(1), args.Error(2)
}

// SaveView mocks writing the display mode.
func (m *MockPreferenceStore) SaveView(mode domain.DisplayMode) error {
	args := m.Called(mode)

	return args.Error(0)
}

// Compile-time interface checks.
var (
	_ domain.IndexLoader     = (*MockIndexLoader)(nil)
	_ domain.DetailFetcher   = (*MockDetailFetcher)(nil)
	_ domain.PreferenceStore = (*MockPreferenceStore)(nil)
)
