// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/janderssonse/blueprints/internal/artifact"
	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/encoder"
	"go.uber.org/zap"
)

// ErrNoConfiguration is returned by Encode when a template has neither artifact.
var ErrNoConfiguration = errors.New("template has no configuration files")

// NotAvailable is printed in place of an absent artifact.
const NotAvailable = "no configuration available"

// CatalogHandler runs the catalog commands against the index and detail ports.
type CatalogHandler struct {
	*BaseHandler

	Loader   domain.IndexLoader
	Fetcher  domain.DetailFetcher
	Store    *catalog.Store
	EditBase string
	Logger   *zap.Logger
}

// NewCatalogHandler wires a handler. A nil logger discards log output.
func NewCatalogHandler(base *BaseHandler, loader domain.IndexLoader, fetcher domain.DetailFetcher,
	store *catalog.Store, logger *zap.Logger,
) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CatalogHandler{
		BaseHandler: base,
		Loader:      loader,
		Fetcher:     fetcher,
		Store:       store,
		Logger:      logger,
	}
}

// Load replaces the store snapshot with the current index.
func (h *CatalogHandler) Load(ctx context.Context) error {
	ctx, cancel := h.WithTimeout(ctx)
	defer cancel()

	templates, err := h.Loader.Load(ctx)
	if err != nil {
		return err
	}

	h.Store.SetTemplates(templates)

	return nil
}

// List prints the templates passing search and tags.
func (h *CatalogHandler) List(ctx context.Context, search string, tags []string) error {
	if err := h.Load(ctx); err != nil {
		return err
	}

	h.Store.SetSearchQuery(search)

	for _, tag := range tags {
		h.Store.AddSelectedTag(tag)
	}

	view := h.Store.FilteredTemplates()
	output := h.GetOutput()

	if output.IsJSON() {
		return output.Success("", domain.ListResult{
			Templates: view,
			Matched:   len(view),
			Total:     h.Store.TotalCount(),
			Search:    search,
			Tags:      h.Store.SelectedTags(),
		})
	}

	if len(view) == 0 {
		return output.Info("No templates match the current filters.")
	}

	rows := make([][]string, 0, len(view))
	for _, tmpl := range view {
		rows = append(rows, []string{tmpl.ID, tmpl.Name, tmpl.Version, strings.Join(tmpl.Tags, ",")})
	}

	if err := output.Table([]string{"ID", "NAME", "VERSION", "TAGS"}, rows); err != nil {
		return err
	}

	return output.Info(fmt.Sprintf("\n%d of %d templates", len(view), h.Store.TotalCount()))
}

// Tags prints the tag universe narrowed by search, with the number of templates per tag.
func (h *CatalogHandler) Tags(ctx context.Context, search string) error {
	if err := h.Load(ctx); err != nil {
		return err
	}

	tags := catalog.FilterTags(h.Store.UniqueTags(), search)
	output := h.GetOutput()

	if output.IsJSON() {
		return output.Success("", domain.TagsResult{Tags: tags})
	}

	counts := make(map[string]int, len(tags))
	for _, tmpl := range h.Store.Templates() {
		for _, tag := range tmpl.Tags {
			counts[tag]++
		}
	}

	rows := make([][]string, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, []string{tag, strconv.Itoa(counts[tag])})
	}

	return output.Table([]string{"TAG", "TEMPLATES"}, rows)
}

// Resolve loads the index and fetches both artifacts of templateID.
func (h *CatalogHandler) Resolve(ctx context.Context, templateID string) (domain.Template, domain.Detail, error) {
	if strings.TrimSpace(templateID) == "" {
		return domain.Template{}, domain.Detail{}, domain.ErrInvalidTemplateID
	}

	if err := h.Load(ctx); err != nil {
		return domain.Template{}, domain.Detail{}, err
	}

	tmpl, ok := h.Store.Lookup(templateID)
	if !ok {
		return domain.Template{}, domain.Detail{}, fmt.Errorf("%w: %q", domain.ErrTemplateNotFound, templateID)
	}

	ctx, cancel := h.WithTimeout(ctx)
	defer cancel()

	detail, err := h.Fetcher.FetchDetail(ctx, templateID)
	if err != nil {
		return tmpl, domain.Detail{}, err
	}

	h.Logger.Debug("template resolved",
		zap.String("template_id", templateID),
		zap.Bool("compose", detail.Compose != nil),
		zap.Bool("config", detail.Config != nil))

	return tmpl, detail, nil
}

// Show prints a template with both artifacts.
func (h *CatalogHandler) Show(ctx context.Context, templateID string) error {
	tmpl, detail, err := h.Resolve(ctx, templateID)
	if err != nil {
		return err
	}

	summary := artifact.Summarize(detail)
	for _, problem := range summary.Errors {
		h.Logger.Warn("artifact summary incomplete", zap.String("template_id", templateID), zap.String("error", problem))
	}

	result := domain.ShowResult{
		Template:   tmpl,
		EditURL:    tmpl.EditURL(h.EditBase),
		Compose:    detail.Compose,
		Config:     detail.Config,
		Blob:       encoder.Encode(detail),
		Services:   summary.Services,
		ConfigKeys: summary.ConfigKeys,
	}

	output := h.GetOutput()
	if output.IsJSON() {
		return output.Success("", result)
	}

	writeShow(output.Writer(), result)

	return nil
}

func writeShow(w io.Writer, result domain.ShowResult) {
	tmpl := result.Template

	_, _ = fmt.Fprintf(w, "%s %s\n", tmpl.Name, tmpl.Version)

	if tmpl.Description != "" {
		_, _ = fmt.Fprintln(w, tmpl.Description)
	}

	_, _ = fmt.Fprintln(w)

	fields := []struct{ label, value string }{
		{"ID", tmpl.ID},
		{"Tags", strings.Join(tmpl.Tags, ", ")},
		{"GitHub", tmpl.Links.GitHub},
		{"Website", tmpl.Links.Website},
		{"Docs", tmpl.Links.Docs},
		{"Edit", result.EditURL},
		{"Services", strings.Join(result.Services, ", ")},
		{"Config", strings.Join(result.ConfigKeys, ", ")},
	}

	for _, field := range fields {
		if field.value != "" {
			_, _ = fmt.Fprintf(w, "%-9s %s\n", field.label+":", field.value)
		}
	}

	if result.Compose == nil && result.Config == nil {
		_, _ = fmt.Fprintln(w, "\nNo configuration files available for this template.")

		return
	}

	for _, file := range []struct {
		name string
		text *string
	}{
		{domain.ComposeFile, result.Compose},
		{domain.ConfigFile, result.Config},
	} {
		_, _ = fmt.Fprintf(w, "\n--- %s ---\n", file.name)

		if file.text == nil {
			_, _ = fmt.Fprintln(w, NotAvailable)

			continue
		}

		_, _ = fmt.Fprintln(w, strings.TrimRight(*file.text, "\n"))
	}
}

// Encode prints the import blob of a template.
func (h *CatalogHandler) Encode(ctx context.Context, templateID string) error {
	_, detail, err := h.Resolve(ctx, templateID)
	if err != nil {
		return err
	}

	blob := encoder.Encode(detail)
	if blob == "" {
		return fmt.Errorf("%w: %q", ErrNoConfiguration, templateID)
	}

	return h.GetOutput().Value(blob)
}

// Decode prints the payload carried by blob.
func (h *CatalogHandler) Decode(blob string) error {
	payload, err := encoder.Decode(strings.TrimSpace(blob))
	if err != nil {
		return err
	}

	output := h.GetOutput()
	if output.IsJSON() {
		return output.Success("", payload)
	}

	text, err := encoder.JSON(payload)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(output.Writer(), text)

	return err
}

// View prints the display mode, or persists mode when it is not empty.
func (h *CatalogHandler) View(mode string) error {
	output := h.GetOutput()

	if mode == "" {
		current := h.Store.View()

		return output.Success(current.String(), domain.ViewResult{View: current})
	}

	parsed, err := domain.ParseDisplayMode(mode)
	if err != nil {
		return err
	}

	if err := h.Store.SetView(parsed); err != nil {
		return err
	}

	return output.Success("Display mode set to "+parsed.String(), domain.ViewResult{View: parsed})
}
