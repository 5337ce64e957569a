/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/myapp/pkg/errors"
	"github.com/NVIDIA/myapp/pkg/logging"
)

const (
	name           = "myapp"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// urfave/cli reads the package-level VersionFlag both when it sets up a root
// command and when it checks for --version, so the override has to be global.
// It applies to every binary importing this package, myapp-mangen included,
// and the man page renderer documents the same flag.
func init() {
	// -v belongs to `server --verbose`; the version flag takes -V instead.
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
		Local:   true,
	}
}

// Version returns the build version of the CLI.
func Version() string {
	return version
}

// Execute runs the CLI against os.Args and exits non-zero on failure.
// This is called by main.main().
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := Run(ctx, os.Args, WithBefore(initLogger))
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		if hint := usageHint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		os.Exit(1)
	}
}

// usageHint returns the line printed after a usage error, or "" for any
// other failure.
func usageHint(err error) string {
	if errors.IsCode(err, errors.ErrCodeInvalidArgument) {
		return fmt.Sprintf("Run '%s --help' for usage.", name)
	}
	return ""
}

// Run builds the command tree, parses args (args[0] is the program name) and
// dispatches the result. Without WithHandler the invocation is printed to the
// configured writer.
func Run(ctx context.Context, args []string, opts ...Option) error {
	return NewCommand(opts...).Run(ctx, args)
}

// Parse decodes args against the command tree without dispatching and returns
// the resulting invocation. It returns nil, nil when help or version output
// short-circuits parsing.
func Parse(ctx context.Context, args []string) (Invocation, error) {
	var got Invocation
	capture := HandlerFunc(func(_ context.Context, inv Invocation) error {
		got = inv
		return nil
	})

	err := Run(ctx, args,
		WithHandler(capture),
		WithWriter(io.Discard),
		WithErrWriter(io.Discard),
	)
	if err != nil {
		return nil, err
	}
	return got, nil
}

// initLogger configures slog after flags are parsed so --log-level takes
// effect before any command executes.
func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := cmd.String(flagLogLevel)
	logging.SetDefaultStructuredLoggerWithLevel(name, version, logLevel)
	slog.Debug("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
		"logLevel", logLevel)
	return ctx, nil
}
