// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package catalog_test

import (
	"testing"

	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/stretchr/testify/assert"
)

func TestOptions_Templates(t *testing.T) {
	t.Parallel()

	options := catalog.Options(sampleTemplates()[:2], catalog.TemplateID, catalog.TemplateLabel)

	assert.Equal(t, []catalog.Option{
		{Key: "postgres", Label: "Postgres (16)"},
		{Key: "redis", Label: "Redis (7)"},
	}, options)
}

func TestOptions_Tags(t *testing.T) {
	t.Parallel()

	options := catalog.Options([]string{"cache"}, catalog.Identity, catalog.Identity)
	assert.Equal(t, []catalog.Option{{Key: "cache", Label: "cache"}}, options)

	assert.Empty(t, catalog.Options(nil, catalog.Identity, catalog.Identity))
}

func TestTemplateLabel_NoVersion(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Bare", catalog.TemplateLabel(sampleTemplates()[3]))
	assert.Equal(t, "Bare", catalog.TemplateName(sampleTemplates()[3]))
}
