package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/myapp/pkg/checksum"
	mycli "github.com/NVIDIA/myapp/pkg/cli"
	"github.com/NVIDIA/myapp/pkg/defaults"
	"github.com/NVIDIA/myapp/pkg/errors"
	"github.com/NVIDIA/myapp/pkg/logging"
	"github.com/NVIDIA/myapp/pkg/manpage"
	"github.com/NVIDIA/myapp/pkg/serializer"
)

const name = "myapp-mangen"

const (
	flagDir       = "dir"
	flagSection   = "section"
	flagFormat    = "format"
	flagManual    = "manual"
	flagSource    = "source"
	flagDate      = "date"
	flagManifest  = "manifest"
	flagChecksums = "checksums"
	flagReference = "reference"
	flagCheck     = "check"
	flagLogLevel  = "log-level"
)

// dateLayout is accepted by --date alongside Unix seconds.
const dateLayout = "2006-01-02"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newCommand().Run(ctx, os.Args)
	stop()

	if err != nil {
		slog.Error("manual page generation failed", "code", errors.CodeOf(err), "error", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:    name,
		Usage:   "Generate myapp manual pages from its command tree",
		Version: mycli.Version(),
		Description: `Walks the myapp command tree and writes one manual page per command
into --dir. Run through "go generate ./..." from cmd/myapp, or with --check
in CI to fail when committed pages no longer match the commands.`,
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Before:         initLogger,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagDir,
				Usage:   "output directory for generated pages",
				Value:   defaults.ManDir,
				Sources: cli.EnvVars(defaults.EnvManDir),
			},
			&cli.StringFlag{
				Name:  flagSection,
				Usage: "manual section",
				Value: defaults.ManSection,
			},
			&cli.StringFlag{
				Name: flagFormat,
				Usage: fmt.Sprintf("page format (supported values: %s)",
					strings.Join(manpage.SupportedFormats(), ", ")),
				Value: string(manpage.FormatMan),
			},
			&cli.StringFlag{
				Name:  flagManual,
				Usage: "manual name printed in the page header",
			},
			&cli.StringFlag{
				Name:  flagSource,
				Usage: "source printed in the page footer",
			},
			&cli.StringFlag{
				Name:    flagDate,
				Usage:   "page date as YYYY-MM-DD or Unix seconds; empty leaves it out",
				Sources: cli.EnvVars(defaults.EnvSourceDateEpoch),
			},
			&cli.StringFlag{
				Name:  flagManifest,
				Usage: "write a manifest of generated pages to this file (.json, .yaml or .yml)",
			},
			&cli.StringFlag{
				Name:  flagChecksums,
				Usage: "write sha256sum-compatible checksums of generated pages to this file",
			},
			&cli.StringFlag{
				Name:  flagReference,
				Usage: "also write a single-file Markdown CLI reference to this file",
			},
			&cli.BoolFlag{
				Name:  flagCheck,
				Usage: "do not write; fail if pages in --dir are missing or out of date",
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars(defaults.EnvLogLevel),
			},
		},
		Action: run,
	}
}

func initLogger(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logging.SetDefaultStructuredLoggerWithLevel(name, mycli.Version(), cmd.String(flagLogLevel))
	return ctx, nil
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() {
		return errors.New(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("unexpected argument %q", cmd.Args().First()))
	}

	h, err := headerFromFlags(cmd)
	if err != nil {
		return err
	}

	if path := cmd.String(flagManifest); path != "" {
		if _, err := serializer.FormatFromPath(path); err != nil {
			return errors.WrapWithContext(errors.ErrCodeInvalidArgument, "invalid --manifest", err,
				map[string]any{"path": path})
		}
	}

	root := mycli.NewCommand()
	dir := cmd.String(flagDir)

	if cmd.Bool(flagCheck) {
		return check(ctx, root, dir, h)
	}

	res, err := manpage.GenerateTree(ctx, root, dir, h)
	if err != nil {
		return err
	}

	if path := cmd.String(flagManifest); path != "" {
		if err := manpage.WriteManifest(ctx, path, res.Manifest()); err != nil {
			return err
		}
		slog.Debug("manifest written", "path", path)
	}

	if path := cmd.String(flagChecksums); path != "" {
		if err := checksum.Generate(ctx, dir, path, res.Files()); err != nil {
			return errors.WrapWithContext(errors.ErrCodeIO, "failed to write checksums", err,
				map[string]any{"path": path})
		}
	}

	if path := cmd.String(flagReference); path != "" {
		if err := manpage.WriteReference(root, path); err != nil {
			return err
		}
		slog.Debug("reference written", "path", path)
	}

	return nil
}

func check(ctx context.Context, root *cli.Command, dir string, h manpage.Header) error {
	stale, err := manpage.Check(ctx, root, dir, h)
	if err != nil {
		return err
	}
	if len(stale) > 0 {
		return errors.NewWithContext(errors.ErrCodeStale,
			fmt.Sprintf("manual pages in %s are out of date: %s (run go generate ./...)",
				dir, strings.Join(stale, ", ")),
			map[string]any{"dir": dir, "pages": stale})
	}
	slog.Info("manual pages up to date", "dir", dir)
	return nil
}

func headerFromFlags(cmd *cli.Command) (manpage.Header, error) {
	format, err := manpage.ParseFormat(cmd.String(flagFormat))
	if err != nil {
		return manpage.Header{}, err
	}

	date, err := parseDate(cmd.String(flagDate))
	if err != nil {
		return manpage.Header{}, err
	}

	return manpage.Header{
		Section: cmd.String(flagSection),
		Date:    date,
		Source:  cmd.String(flagSource),
		Manual:  cmd.String(flagManual),
		Format:  format,
	}, nil
}

// parseDate accepts Unix seconds (the SOURCE_DATE_EPOCH convention) or a
// YYYY-MM-DD date. The empty string yields nil.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		t := time.Unix(sec, 0).UTC()
		return &t, nil
	}

	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidArgument,
			fmt.Sprintf("invalid date %q, expected %s or Unix seconds", s, dateLayout), err)
	}
	return &t, nil
}
