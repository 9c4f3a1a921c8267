// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/janderssonse/blueprints/internal/console"
	"github.com/janderssonse/blueprints/internal/tui"
	"github.com/urfave/cli/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Chooser asks the user for tags and then for one template.
type Chooser interface {
	ChooseTags(ctx context.Context, options []catalog.Option) ([]string, error)
	ChooseTemplate(ctx context.Context, options []catalog.Option) (string, error)
}

// huhChooser runs the questions as huh forms.
type huhChooser struct{}

func toHuhOptions(options []catalog.Option) []huh.Option[string] {
	converted := make([]huh.Option[string], 0, len(options))
	for _, option := range options {
		converted = append(converted, huh.NewOption(option.Label, option.Key))
	}

	return converted
}

func (huhChooser) ChooseTags(ctx context.Context, options []catalog.Option) ([]string, error) {
	var tags []string

	if len(options) == 0 {
		return tags, nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("◈ Filter by tags").
				Description("Templates must carry every selected tag. Select none to see all.").
				Options(toHuhOptions(options)...).
				Height(min(len(options)+2, 15)).
				Value(&tags),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}

	return tags, nil
}

func (huhChooser) ChooseTemplate(ctx context.Context, options []catalog.Option) (string, error) {
	var id string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("▸ Choose a template").
				Description("Its import blob is printed to stdout").
				Options(toHuhOptions(options)...).
				Height(min(len(options)+2, 15)).
				Value(&id),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return "", err
	}

	return id, nil
}

func (app *CLI) createPickCommand() *cli.Command {
	return &cli.Command{
		Name:  "pick",
		Usage: "Choose tags and a template interactively, then print its import blob",
		Action: func(ctx context.Context, _ *cli.Command) error {
			return app.run(app.runPick(ctx))
		},
	}
}

func (app *CLI) runPick(ctx context.Context) error {
	chooser := app.chooser
	if chooser == nil {
		if !console.DefaultOutput.IsInteractive() {
			return fmt.Errorf("pick: %w", tui.ErrNoTerminal)
		}

		chooser = huhChooser{}
	}

	handler := app.handler()
	if err := handler.Load(ctx); err != nil {
		return err
	}

	caser := cases.Title(language.English)
	tagOptions := catalog.Options(app.store.UniqueTags(), catalog.Identity, caser.String)

	tags, err := chooser.ChooseTags(ctx, tagOptions)
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}

	if err != nil {
		return err
	}

	for _, tag := range tags {
		app.store.AddSelectedTag(tag)
	}

	view := app.store.FilteredTemplates()
	if len(view) == 0 {
		return handler.GetOutput().Info("No templates carry all selected tags.")
	}

	id, err := chooser.ChooseTemplate(ctx, catalog.Options(view, catalog.TemplateID, catalog.TemplateLabel))
	if errors.Is(err, huh.ErrUserAborted) {
		return nil
	}

	if err != nil {
		return err
	}

	console.DefaultOutput.Progressf("Encoding %s", id)

	if err := handler.Encode(ctx, id); err != nil {
		return err
	}

	console.DefaultOutput.Successf("Encoded configuration of %s", id)

	return nil
}
