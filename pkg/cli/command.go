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
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/myapp/pkg/defaults"
	"github.com/NVIDIA/myapp/pkg/errors"
	"github.com/NVIDIA/myapp/pkg/positional"
)

const (
	flagLogLevel = "log-level"
	flagFormat   = "format"
	flagGlobal   = "global"
	flagPort     = "port"
	flagAddr     = "addr"
	flagVerbose  = "verbose"
	flagURL      = "url"
	flagRemove   = "remove"
)

const longDescription = `myapp is a tiny example CLI demonstrating auto-generated man pages.

It showcases:
  - Nested subcommands (e.g., "config get", "config set")
  - Rich help/usage text derived from a single source of truth
  - Build-time man page generation with "go generate"

Top-level commands:
  - config: manage configuration values (get/set)
  - server: run a demo server (addr/port/verbosity)
  - remote: add or remove a remote by name`

// Option configures NewCommand.
type Option func(*options)

type options struct {
	handler   Handler
	writer    io.Writer
	errWriter io.Writer
	before    cli.BeforeFunc
}

// WithHandler sets the Handler that receives decoded invocations.
func WithHandler(h Handler) Option {
	return func(o *options) {
		o.handler = h
	}
}

// WithWriter sets the writer for help, version and default Printer output.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// WithErrWriter sets the writer for usage errors.
func WithErrWriter(w io.Writer) Option {
	return func(o *options) {
		o.errWriter = w
	}
}

// WithBefore installs a hook on the root command that runs after flag
// parsing and before any action.
func WithBefore(fn cli.BeforeFunc) Option {
	return func(o *options) {
		o.before = fn
	}
}

// NewCommand returns the myapp command tree. The same tree backs the runtime
// binary and the manual page generator, so every name, usage string and flag
// declared here shows up in both.
func NewCommand(opts ...Option) *cli.Command {
	o := options{
		writer:    os.Stdout,
		errWriter: os.Stderr,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.handler == nil {
		o.handler = &Printer{Out: o.writer}
	}

	return &cli.Command{
		Name:                  name,
		Usage:                 "Example CLI with nested subcommands and man page generation",
		Description:           longDescription,
		Version:               version,
		EnableShellCompletion: true,
		Writer:                o.writer,
		ErrWriter:             o.errWriter,
		ExitErrHandler:        func(context.Context, *cli.Command, error) {},
		Before:                o.before,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(defaults.EnvLogLevel),
			},
		},
		Action: requireSubcommand,
		Commands: []*cli.Command{
			configCmd(o.handler),
			serverCmd(o.handler),
			remoteCmd(o.handler),
		},
	}
}

func configCmd(h Handler) *cli.Command {
	return &cli.Command{
		Name:                  "config",
		EnableShellCompletion: true,
		Usage:                 "Manage configuration values",
		Description:           "Read or write configuration values. Choose an action with one of the subcommands.",
		Action:                requireSubcommand,
		Commands: []*cli.Command{
			positional.Attach(&cli.Command{
				Name:                  "get",
				EnableShellCompletion: true,
				Usage:                 "Get a configuration value",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name: flagFormat,
						Usage: fmt.Sprintf("Output format for the value (supported values: %s)",
							strings.Join(SupportedOutputFormats(), ", ")),
						Value: string(FormatPlain),
					},
				},
				Action: dispatch(h, decodeConfigGet),
			},
				positional.Arg{Name: "key", Usage: `Configuration key to read, e.g. "core.editor"`, Required: true},
			),
			positional.Attach(&cli.Command{
				Name:                  "set",
				EnableShellCompletion: true,
				Usage:                 "Set a configuration value",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  flagGlobal,
						Usage: "Write to the global config scope",
					},
				},
				Action: dispatch(h, decodeConfigSet),
			},
				positional.Arg{Name: "key", Usage: `Configuration key to write, e.g. "core.editor"`, Required: true},
				positional.Arg{Name: "value", Usage: "Value to assign to the key", Required: true},
			),
		},
	}
}

func serverCmd(h Handler) *cli.Command {
	return &cli.Command{
		Name:                   "server",
		EnableShellCompletion:  true,
		UseShortOptionHandling: true,
		Usage:                  "Run the server",
		Description:            "Start the demo server on the given address and port.",
		Flags: []cli.Flag{
			&cli.Uint16Flag{
				Name:    flagPort,
				Aliases: []string{"p"},
				Usage:   "Port to listen on",
				Value:   defaults.ServerPort,
			},
			&cli.StringFlag{
				Name:  flagAddr,
				Usage: "Bind address",
				Value: defaults.ServerAddr,
			},
			&cli.BoolFlag{
				Name:    flagVerbose,
				Aliases: []string{"v"},
				Usage:   "Increase verbosity (-v, -vv)",
				Config:  cli.BoolConfig{Count: new(int)},
			},
		},
		Action: dispatch(h, decodeServer),
	}
}

func remoteCmd(h Handler) *cli.Command {
	return positional.Attach(&cli.Command{
		Name:                  "remote",
		EnableShellCompletion: true,
		Usage:                 "Interact with remotes",
		Description: `Add a remote with --url, remove it with --remove, or show it when
neither flag is given.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  flagURL,
				Usage: "Remote URL (e.g., https://example.com/repo.git)",
			},
			&cli.BoolFlag{
				Name:  flagRemove,
				Usage: "Remove the remote instead of adding",
			},
		},
		Action: dispatch(h, decodeRemote),
	},
		positional.Arg{Name: "name", Usage: "Remote name", Required: true},
	)
}

// dispatch decodes the parsed command and hands the result to h.
func dispatch(h Handler, decode func(*cli.Command) (Invocation, error)) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		inv, err := decode(cmd)
		if err != nil {
			return err
		}
		slog.Debug("dispatching command", "command", inv.Command())
		return h.Handle(ctx, inv)
	}
}

// requireSubcommand is the action of every non-leaf command.
func requireSubcommand(_ context.Context, cmd *cli.Command) error {
	if arg := cmd.Args().First(); arg != "" {
		return errors.NewWithContext(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unknown command %q for %q", arg, cmd.FullName()),
			map[string]any{"available": commandNames(cmd)})
	}
	return errors.NewWithContext(errors.ErrCodeInvalidArgument,
		fmt.Sprintf("%q requires a subcommand", cmd.FullName()),
		map[string]any{"available": commandNames(cmd)})
}

func commandNames(cmd *cli.Command) []string {
	names := make([]string, 0, len(cmd.Commands))
	for _, c := range cmd.Commands {
		if c.Hidden {
			continue
		}
		names = append(names, c.Name)
	}
	return names
}

func decodeConfigGet(cmd *cli.Command) (Invocation, error) {
	vals, err := positional.Bind(cmd)
	if err != nil {
		return nil, err
	}
	format, err := ParseOutputFormat(cmd.String(flagFormat))
	if err != nil {
		return nil, err
	}
	return ConfigGet{
		Key:    vals.Get("key"),
		Format: format,
	}, nil
}

func decodeConfigSet(cmd *cli.Command) (Invocation, error) {
	vals, err := positional.Bind(cmd)
	if err != nil {
		return nil, err
	}
	return ConfigSet{
		Key:    vals.Get("key"),
		Value:  vals.Get("value"),
		Global: cmd.Bool(flagGlobal),
	}, nil
}

func decodeServer(cmd *cli.Command) (Invocation, error) {
	if cmd.Args().Present() {
		return nil, errors.New(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unexpected argument %q", cmd.Args().First()))
	}
	return Server{
		Addr:    cmd.String(flagAddr),
		Port:    cmd.Uint16(flagPort),
		Verbose: cmd.Count(flagVerbose),
	}, nil
}

func decodeRemote(cmd *cli.Command) (Invocation, error) {
	vals, err := positional.Bind(cmd)
	if err != nil {
		return nil, err
	}
	r := Remote{
		Name:   vals.Get("name"),
		Remove: cmd.Bool(flagRemove),
	}
	if cmd.IsSet(flagURL) {
		url := cmd.String(flagURL)
		r.URL = &url
	}
	return r, nil
}
