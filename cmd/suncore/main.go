// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func newApp() *cli.Command {
	return &cli.Command{
		Name:    "suncore",
		Usage:   "Nightcore audio processor",
		Version: version,
		Commands: []*cli.Command{
			processCommand(),
			formatsCommand(),
		},
	}
}

func main() {
	ctx := context.Background()

	if err := newApp().Run(ctx, os.Args); err != nil {
		slog.Error("failed to run", "error", err)
		os.Exit(1)
	}
}
