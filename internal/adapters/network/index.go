// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package network

import (
	"context"
	"encoding/json"

	"github.com/janderssonse/blueprints/internal/domain"
	"go.uber.org/zap"
)

var _ domain.IndexLoader = (*IndexLoader)(nil)

// IndexLoader retrieves /meta.json.
type IndexLoader struct {
	client *HTTPClient
}

// NewIndexLoader creates a loader over client.
func NewIndexLoader(client *HTTPClient) *IndexLoader {
	return &IndexLoader{client: client}
}

// Load fetches and decodes the metadata index. Any failure, including a
// non-2xx status or malformed JSON, is reported as *domain.LoadError.
func (l *IndexLoader) Load(ctx context.Context) ([]domain.Template, error) {
	body, err := l.client.getBytes(ctx, domain.IndexPath)
	if err != nil {
		l.client.logger.Warn("index load failed", zap.Error(err))

		return nil, domain.NewLoadError("failed to load template index", err)
	}

	var templates []domain.Template
	if err := json.Unmarshal(body, &templates); err != nil {
		l.client.logger.Warn("index decode failed", zap.Error(err))

		return nil, domain.NewLoadError("failed to decode template index", err)
	}

	if templates == nil {
		templates = []domain.Template{}
	}

	for i := range templates {
		if templates[i].Tags == nil {
			templates[i].Tags = []string{}
		}
	}

	l.client.logger.Info("index loaded", zap.Int("templates", len(templates)))

	return templates, nil
}
