// SPDX-FileCopyrightText: 2025 The Karei Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for blueprints.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/janderssonse/blueprints/internal/cli"
	"github.com/janderssonse/blueprints/internal/console"
	"github.com/janderssonse/blueprints/internal/domain"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewCLI().Run(ctx, os.Args); err != nil {
		exitErr := &domain.ExitError{}
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)

			return exitErr.Code
		}

		// urfave/cli flag parsing errors
		console.DefaultOutput.Errorf("%v", err)

		return domain.ExitUsageError
	}

	return domain.ExitSuccess
}
