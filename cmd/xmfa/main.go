// 17 Oct 2026
// Look inside xmfa alignment files.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/andrew-torda/xmfa/internal/config"
	"github.com/andrew-torda/xmfa/internal/logger"
	"github.com/andrew-torda/xmfa/pkg/common"
	"github.com/andrew-torda/xmfa/pkg/xmfa"
)

// globals holds the flags and settings every subcommand sees.
type globals struct {
	cfgPath   string
	logLevel  string
	logFormat string
	strict    bool
	cfg       config.Config
}

// open opens an xmfa file with the global settings and the logger
// from the context.
func (g *globals) open(ctx context.Context, fname string) (*xmfa.Reader, error) {
	log := logger.FromContext(ctx)
	log.Debug("opening", "file", fname, "strict", g.strict)
	return xmfa.Open(fname, &xmfa.Options{Strict: g.strict, Log: log.Slog()})
}

// before loads the config file and puts a logger in the context.
// Flags given on the command line win over the config file.
func (g *globals) before(stderr io.Writer) cli.BeforeFunc {
	return func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		var cfg config.Config
		var err error
		if g.cfgPath == "" {
			cfg, err = config.LoadDefault()
		} else {
			cfg, err = config.Load(g.cfgPath)
		}
		if err != nil {
			return ctx, err
		}
		g.cfg = cfg
		if cfg.LogLevel != "" && !cmd.IsSet("log-level") {
			g.logLevel = cfg.LogLevel
		}
		if cfg.LogFormat != "" && !cmd.IsSet("log-format") {
			g.logFormat = cfg.LogFormat
		}
		if !cmd.IsSet("strict") {
			g.strict = cfg.IsStrict()
		}
		log := logger.Make(stderr, g.logFormat, g.logLevel)
		return logger.WithContext(ctx, log), nil
	}
}

// fileArg insists on exactly one argument, the input file.
func fileArg(cmd *cli.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		msg := fmt.Sprintf("%s wants one file name, got %d args", cmd.Name, cmd.Args().Len())
		return "", cli.Exit(msg, common.ExitUsageError)
	}
	return cmd.Args().First(), nil
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	g := &globals{}
	return &cli.Command{
		Name:      "xmfa",
		Usage:     "read xmfa multiple genome alignments",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "config file (default " + config.DefaultPath() + ")", Destination: &g.cfgPath},
			&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error", Value: "warn", Destination: &g.logLevel},
			&cli.StringFlag{Name: "log-format", Usage: "text or json", Value: "text", Destination: &g.logFormat},
			&cli.BoolFlag{Name: "strict", Usage: "check sequence and block counts against the header", Destination: &g.strict},
		},
		Before: g.before(stderr),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return cli.ShowAppHelp(cmd)
		},
		// Exit codes are decided in main, so tests can run commands.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands: []*cli.Command{
			headerCmd(g),
			blocksCmd(g),
			countCmd(g),
			fastaCmd(g),
			randCmd(g),
		},
	}
}

func main() {
	app := newApp(os.Stdout, os.Stderr)
	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			os.Exit(ec.ExitCode())
		}
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
