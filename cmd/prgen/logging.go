package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

const (
	verbosityFlagName = "verbosity"
	logFormatFlagName = "log.format"
)

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  verbosityFlagName,
			Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug",
			Value: 3,
		},
		&cli.StringFlag{
			Name:  logFormatFlagName,
			Usage: "Log format to use (terminal|json)",
		},
	}
}

// levelSilent is above every level slog emits.
const levelSilent = slog.Level(16)

func levelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return levelSilent
	case v == 1:
		return slog.LevelError
	case v == 2:
		return slog.LevelWarn
	case v == 3:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// setupLogging installs the default slog logger. Logs go to stderr so that
// generator output on stdout stays clean.
func setupLogging(ctx *cli.Context) error {
	var (
		handler slog.Handler
		output  = ctx.App.ErrWriter
		opts    = &slog.HandlerOptions{Level: levelFromVerbosity(ctx.Int(verbosityFlagName))}
	)
	if output == nil {
		output = os.Stderr
	}

	switch format := ctx.String(logFormatFlagName); format {
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	case "", "terminal":
		if isTerminal(output) {
			handler = slog.NewTextHandler(output, opts)
		} else {
			handler = slog.NewJSONHandler(output, opts)
		}
	default:
		// Unknown log format specified
		return fmt.Errorf("unknown log format: %v", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}

// isTerminal reports whether w is a terminal that can take the text format.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"
}
