// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package cli provides the blueprints command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/janderssonse/blueprints/internal/adapters/network"
	"github.com/janderssonse/blueprints/internal/adapters/prefs"
	"github.com/janderssonse/blueprints/internal/catalog"
	"github.com/janderssonse/blueprints/internal/cli/handlers"
	"github.com/janderssonse/blueprints/internal/config"
	"github.com/janderssonse/blueprints/internal/console"
	"github.com/janderssonse/blueprints/internal/domain"
	"github.com/janderssonse/blueprints/internal/encoder"
	"github.com/janderssonse/blueprints/internal/logging"
	"github.com/janderssonse/blueprints/internal/platform"
	"github.com/janderssonse/blueprints/internal/tui"
	"github.com/janderssonse/blueprints/internal/tui/styles"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

// Version is overridden at build time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev" //nolint:gochecknoglobals

var (
	// ErrUnknownCommand is returned when positional arguments name no command.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMissingArgument is returned when a command lacks its required argument.
	ErrMissingArgument = errors.New("missing argument")
)

// CLI wires configuration, logging and the catalog services to urfave/cli commands.
type CLI struct {
	app    *cli.Command
	stdout io.Writer
	stderr io.Writer

	verbose   bool
	json      bool
	quiet     bool
	noPersist bool

	chooser Chooser

	cfg    config.Config
	logger *zap.Logger
	closer io.Closer
	client *network.HTTPClient
	store  *catalog.Store
}

// NewCLI creates the CLI writing to the process streams.
func NewCLI() *CLI {
	return NewCLIWithWriters(os.Stdout, os.Stderr)
}

// NewCLIWithWriters creates the CLI with custom output streams.
func NewCLIWithWriters(stdout, stderr io.Writer) *CLI {
	app := &CLI{
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
		logger: zap.NewNop(),
	}

	app.app = &cli.Command{
		Name:      "blueprints",
		Usage:     "Browse the deployment-template catalog from the terminal",
		Version:   Version,
		Suggest:   true,
		Writer:    stdout,
		ErrWriter: stderr,
		Description: `Lists, filters and inspects the templates published by a catalog server.
Run without a command to open the interactive browser.

EXAMPLES:
  blueprints                            Open the browser
  blueprints list --tag database        Templates tagged database
  blueprints show postgres              Print both configuration files
  blueprints encode postgres            Print the import blob
  blueprints view rows                  Switch the browser to rows`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "base-url",
				Usage:   "catalog server serving /meta.json and /blueprints/",
				Sources: cli.EnvVars("BLUEPRINTS_BASE_URL"),
			},
			&cli.DurationFlag{
				Name:    "timeout",
				Usage:   "timeout for each catalog request",
				Sources: cli.EnvVars("BLUEPRINTS_TIMEOUT"),
			},
			&cli.StringFlag{
				Name:    "config",
				Usage:   "configuration file (default $XDG_CONFIG_HOME/blueprints/config.toml)",
				Sources: cli.EnvVars("BLUEPRINTS_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level: debug, info, warn, error",
				Sources: cli.EnvVars("BLUEPRINTS_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "log file, or - for stderr",
				Sources: cli.EnvVars("BLUEPRINTS_LOG_FILE"),
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "show progress messages and error details",
				Destination: &app.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output structured JSON results",
				Aliases:     []string{"j"},
				Destination: &app.json,
			},
			&cli.BoolFlag{
				Name:        "quiet",
				Usage:       "suppress non-essential output",
				Aliases:     []string{"q"},
				Destination: &app.quiet,
			},
			&cli.BoolFlag{
				Name:        "no-persist",
				Usage:       "keep the display mode for this run only",
				Destination: &app.noPersist,
			},
		},
		Before:   app.initConfig,
		After:    app.shutdown,
		Action:   app.defaultAction,
		Commands: app.createAllCommands(),
	}

	return app
}

// Run executes the CLI application.
func (app *CLI) Run(ctx context.Context, args []string) error {
	return app.app.Run(ctx, args)
}

// App returns the root command.
func App() *cli.Command {
	return NewCLI().app
}

func (app *CLI) createAllCommands() []*cli.Command {
	return []*cli.Command{
		app.createTUICommand(),
		app.createListCommand(),
		app.createTagsCommand(),
		app.createShowCommand(),
		app.createEncodeCommand(),
		app.createDecodeCommand(),
		app.createViewCommand(),
		app.createPickCommand(),
	}
}

func (app *CLI) createTUICommand() *cli.Command {
	return &cli.Command{
		Name:  "tui",
		Usage: "Open the interactive browser",
		Description: `Navigation:
- / to search, t to pick tags, v to switch grid and rows
- Enter opens a template, Esc goes back
- ? shows every key, q or Ctrl+C quits`,
		Action: app.handleTUIAction,
	}
}

func (app *CLI) createListCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List templates matching a search and tags",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "case-insensitive name filter"},
			&cli.StringSliceFlag{Name: "tag", Aliases: []string{"t"}, Usage: "required tag (repeatable)"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.run(app.handler().List(ctx, cmd.String("search"), cmd.StringSlice("tag")))
		},
	}
}

func (app *CLI) createTagsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "List every tag with its number of templates",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "search", Aliases: []string{"s"}, Usage: "case-insensitive tag filter"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return app.run(app.handler().Tags(ctx, cmd.String("search")))
		},
	}
}

func (app *CLI) createShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print a template and its configuration files",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := requireArg(cmd, "template id")
			if err != nil {
				return app.run(err)
			}

			return app.run(app.handler().Show(ctx, id))
		},
	}
}

func (app *CLI) createEncodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "encode",
		Usage:     "Print the import blob of a template",
		ArgsUsage: "<id>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			id, err := requireArg(cmd, "template id")
			if err != nil {
				return app.run(err)
			}

			return app.run(app.handler().Encode(ctx, id))
		},
	}
}

func (app *CLI) createDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Print the configuration files carried by an import blob",
		ArgsUsage: "<blob>",
		Action: func(_ context.Context, cmd *cli.Command) error {
			blob, err := requireArg(cmd, "blob")
			if err != nil {
				return app.run(err)
			}

			return app.run(app.handler().Decode(blob))
		},
	}
}

func (app *CLI) createViewCommand() *cli.Command {
	return &cli.Command{
		Name:      "view",
		Usage:     "Show or set the browser display mode",
		ArgsUsage: "[grid|rows]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return app.run(app.handler().View(cmd.Args().First()))
		},
	}
}

func requireArg(cmd *cli.Command, name string) (string, error) {
	if !cmd.Args().Present() {
		return "", fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}

	return cmd.Args().First(), nil
}

// defaultAction opens the browser when no command is given.
func (app *CLI) defaultAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return app.run(fmt.Errorf("%w: '%s'. Run 'blueprints --help' to see available commands",
			ErrUnknownCommand, cmd.Args().First()))
	}

	return app.handleTUIAction(ctx, cmd)
}

func (app *CLI) handleTUIAction(ctx context.Context, _ *cli.Command) error {
	err := tui.Launch(ctx, tui.Options{
		Store:       app.store,
		Loader:      network.NewIndexLoader(app.client),
		Fetcher:     network.NewDetailFetcher(app.client),
		Styles:      styles.NewWithTheme(app.cfg.Theme),
		Logger:      app.logger,
		BaseURL:     app.cfg.BaseURL,
		EditBaseURL: app.cfg.EditBaseURL,
	})
	if err != nil {
		if app.verbose {
			return domain.NewExitError(domain.ExitGeneralError, fmt.Sprintf("Failed to launch TUI: %v", err), nil)
		}

		return domain.NewExitError(domain.ExitGeneralError, "Failed to launch interactive interface (terminal required)", err)
	}

	return nil
}

func (app *CLI) handler() *handlers.CatalogHandler {
	base := handlers.NewBaseHandler(app.stdout, app.verbose, app.json, app.quiet, 2*app.cfg.Timeout)
	handler := handlers.NewCatalogHandler(base,
		network.NewIndexLoader(app.client),
		network.NewDetailFetcher(app.client),
		app.store,
		app.logger)
	handler.EditBase = app.cfg.EditBaseURL

	return handler
}

// initConfig loads the configuration file, applies flag overrides and builds
// the services every command shares.
func (app *CLI) initConfig(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	if app.json && app.quiet {
		app.quiet = false
	}

	console.DefaultOutput.SetMode(app.verbose, app.json, app.quiet)
	console.DefaultOutput.Err = app.stderr

	path := cmd.String("config")
	if path == "" {
		path = config.DefaultPath()
	}

	if cmd.IsSet("config") && !platform.FileExists(path) {
		console.DefaultOutput.Warningf("config file %s not found, using defaults", path)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return ctx, domain.NewExitError(domain.ExitConfigError, "✗ "+err.Error(), err)
	}

	if cmd.IsSet("base-url") {
		cfg.BaseURL = cmd.String("base-url")
	}

	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
	}

	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}

	if cmd.IsSet("log-file") {
		cfg.LogFile = cmd.String("log-file")
	}

	if err := cfg.Validate(); err != nil {
		return ctx, domain.NewExitError(domain.ExitConfigError, "✗ "+err.Error(), err)
	}

	logCfg := logging.DefaultConfig(cfg.LogFile)
	logCfg.Level = cfg.LogLevel

	logger, closer, err := logging.New(logCfg)
	if err != nil {
		return ctx, domain.NewExitError(domain.ExitSystemError, "✗ failed to open log: "+err.Error(), err)
	}

	app.cfg = cfg
	app.logger = logger
	app.closer = closer
	app.client = network.NewHTTPClient(cfg.BaseURL, cfg.Timeout,
		network.WithLogger(logger),
		network.WithMaxBodyBytes(cfg.MaxBodyBytes),
		network.WithUserAgent("blueprints/"+Version))

	var preferences domain.PreferenceStore = prefs.NewFileStore(prefs.DefaultPath())
	if app.noPersist {
		preferences = prefs.NewMemoryStore()
	}

	app.store = catalog.NewStore(preferences, logger)

	console.DefaultOutput.Progressf("Catalog: %s (timeout %s)", cfg.BaseURL, cfg.Timeout.Round(time.Millisecond))

	if platform.HasProxy() {
		console.DefaultOutput.Progressf("Using proxy from environment")
	}
	logger.Debug("configuration loaded", zap.String("path", path), zap.String("url", cfg.BaseURL))

	return ctx, nil
}

func (app *CLI) shutdown(_ context.Context, _ *cli.Command) error {
	if app.client != nil {
		app.client.Close()
	}

	if app.closer != nil {
		_ = app.closer.Close()
	}

	return nil
}

// run maps a handler failure to an ExitError carrying the process exit code.
func (app *CLI) run(err error) error {
	if err == nil {
		return nil
	}

	var exitErr *domain.ExitError
	if errors.As(err, &exitErr) {
		return err
	}

	app.logger.Debug("command failed", zap.Error(err))

	code := exitCode(err)

	message := domain.FormatErrorMessage(err, app.verbose)
	if code == domain.ExitUsageError || code == domain.ExitNotFoundError {
		message = "✗ " + err.Error()
	}

	return domain.NewExitError(code, message, err)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrTemplateNotFound),
		errors.Is(err, handlers.ErrNoConfiguration):
		return domain.ExitNotFoundError
	case errors.Is(err, ErrUnknownCommand),
		errors.Is(err, ErrMissingArgument),
		errors.Is(err, domain.ErrInvalidTemplateID),
		errors.Is(err, domain.ErrInvalidDisplayMode),
		errors.Is(err, encoder.ErrInvalidBlob):
		return domain.ExitUsageError
	case errors.Is(err, domain.ErrIndexUnavailable),
		errors.Is(err, domain.ErrFetchFailed):
		return domain.ExitNetworkError
	case errors.Is(err, fs.ErrPermission):
		return domain.ExitSystemError
	case errors.Is(err, config.ErrInvalidConfig):
		return domain.ExitConfigError
	default:
		return domain.ExitGeneralError
	}
}
