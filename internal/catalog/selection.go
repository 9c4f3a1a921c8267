// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog

import (
	"context"
	"sync"
)

// Ticket identifies one detail-view activation.
//
//nolint:containedctx // the ticket carries the cancellation scope of its fetch
type Ticket struct {
	TemplateID string
	Generation uint64
	Ctx        context.Context
}

// Selection guards detail retrievals against stale results. Each Begin
// supersedes the previous ticket and cancels its context; results carrying a
// superseded ticket must be discarded.
type Selection struct {
	mu         sync.Mutex
	generation uint64
	current    string
	cancel     context.CancelFunc
}

// NewSelection creates a selection with no active ticket.
func NewSelection() *Selection {
	return &Selection{}
}

// Begin starts a new activation for templateID derived from parent.
func (s *Selection) Begin(parent context.Context, templateID string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}

	ctx, cancel := context.WithCancel(parent)

	s.generation++
	s.current = templateID
	s.cancel = cancel

	return Ticket{
		TemplateID: templateID,
		Generation: s.generation,
		Ctx:        ctx,
	}
}

// IsCurrent reports whether ticket belongs to the latest activation.
func (s *Selection) IsCurrent(ticket Ticket) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.cancel != nil && ticket.Generation == s.generation && ticket.TemplateID == s.current
}

// Reset dismisses the current activation, cancelling its fetch.
func (s *Selection) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	s.generation++
	s.current = ""
}
