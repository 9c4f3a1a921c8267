// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package network

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/janderssonse/blueprints/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var _ domain.DetailFetcher = (*DetailFetcher)(nil)

// DetailFetcher retrieves the two artifacts of a template.
type DetailFetcher struct {
	client *HTTPClient
}

// NewDetailFetcher creates a fetcher over client.
func NewDetailFetcher(client *HTTPClient) *DetailFetcher {
	return &DetailFetcher{client: client}
}

// FetchDetail requests docker-compose.yml and template.yml concurrently.
// A non-2xx artifact becomes a nil slot. A transport failure or a cancelled
// ctx fails the whole call with *domain.FetchError.
func (f *DetailFetcher) FetchDetail(ctx context.Context, templateID string) (domain.Detail, error) {
	if strings.TrimSpace(templateID) == "" {
		return domain.Detail{}, domain.NewFetchError(templateID, domain.ErrInvalidTemplateID)
	}

	start := time.Now()

	var detail domain.Detail

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		text, err := f.artifact(groupCtx, templateID, domain.ComposeFile)
		detail.Compose = text

		return err
	})

	group.Go(func() error {
		text, err := f.artifact(groupCtx, templateID, domain.ConfigFile)
		detail.Config = text

		return err
	})

	if err := group.Wait(); err != nil {
		f.client.logger.Warn("detail fetch failed",
			zap.String("template_id", templateID), zap.Error(err))

		return domain.Detail{}, domain.NewFetchError(templateID, err)
	}

	f.client.logger.Debug("detail fetched",
		zap.String("template_id", templateID),
		zap.Bool("compose", detail.Compose != nil),
		zap.Bool("config", detail.Config != nil),
		zap.Duration("duration", time.Since(start)))

	return detail, nil
}

func (f *DetailFetcher) artifact(ctx context.Context, templateID, file string) (*string, error) {
	body, err := f.client.getBytes(ctx, domain.ArtifactPath(templateID, file))
	if err == nil {
		return domain.Text(string(body)), nil
	}

	if ctx.Err() != nil {
		return nil, fmt.Errorf("%s: %w", file, ctx.Err())
	}

	if isStatus(err) {
		f.client.logger.Debug("artifact absent",
			zap.String("template_id", templateID), zap.String("file", file), zap.Error(err))

		return nil, nil
	}

	return nil, fmt.Errorf("%s: %w", file, err)
}
