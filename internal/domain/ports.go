// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"context"
)

// IndexLoader retrieves the full template list.
// Implemented by the HTTP adapter; one attempt per call, no retry.
type IndexLoader interface {
	// Load returns the catalog snapshot or a *LoadError.
	Load(ctx context.Context) ([]Template, error)
}

// DetailFetcher retrieves the optional artifacts of one template.
type DetailFetcher interface {
	// FetchDetail returns both artifacts once both retrievals settled.
	// Missing artifacts are nil fields; only orchestration faults return a *FetchError.
	FetchDetail(ctx context.Context, templateID string) (Detail, error)
}

// PreferenceStore persists the display mode between runs.
type PreferenceStore interface {
	// LoadView returns the stored mode and whether one was stored.
	LoadView() (DisplayMode, bool, error)

	// SaveView stores the mode.
	SaveView(mode DisplayMode) error
}
