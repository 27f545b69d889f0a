// Package debug configures the root logger of command line tools.
package debug

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/tos-network/glsdk/internal/flags"
	"github.com/urfave/cli/v2"
)

var (
	VerbosityFlag = &cli.IntFlag{
		Name:     "verbosity",
		Usage:    "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value:    DefaultConfig.Verbosity,
		Category: flags.LoggingCategory,
	}
	LogFormatFlag = &cli.StringFlag{
		Name:     "log.format",
		Usage:    "Log format to use (json|logfmt|terminal)",
		Value:    DefaultConfig.Format,
		Category: flags.LoggingCategory,
	}
)

// Flags holds all command-line flags required for logging setup.
var Flags = []cli.Flag{
	VerbosityFlag,
	LogFormatFlag,
}

// Config is the [Log] section of a tool's configuration file.
type Config struct {
	Verbosity int
	Format    string
}

// DefaultConfig logs warnings and above in terminal format.
var DefaultConfig = Config{
	Verbosity: 2,
	Format:    "terminal",
}

// ApplyFlags overrides cfg with the logging flags set on the command line.
func ApplyFlags(ctx *cli.Context, cfg *Config) {
	if ctx.IsSet(VerbosityFlag.Name) {
		cfg.Verbosity = ctx.Int(VerbosityFlag.Name)
	}
	if ctx.IsSet(LogFormatFlag.Name) {
		cfg.Format = ctx.String(LogFormatFlag.Name)
	}
}

// Setup installs the root logger writing to w. Terminal output is coloured
// when w is a terminal.
func Setup(w io.Writer, cfg Config) error {
	var (
		handler  slog.Handler
		useColor bool
	)
	if f, ok := w.(*os.File); ok {
		fd := f.Fd()
		useColor = (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) && os.Getenv("TERM") != "dumb"
		if useColor && f == os.Stderr {
			w = colorable.NewColorableStderr()
		}
	}
	switch cfg.Format {
	case "json":
		handler = log.JSONHandler(w)
	case "logfmt":
		handler = log.LogfmtHandler(w)
	case "", "terminal":
		handler = log.NewTerminalHandler(w, useColor)
	default:
		return fmt.Errorf("unknown log format: %q", cfg.Format)
	}
	if cfg.Verbosity < 0 || cfg.Verbosity > 5 {
		return fmt.Errorf("invalid verbosity %d", cfg.Verbosity)
	}
	glogger := log.NewGlogHandler(handler)
	glogger.Verbosity(log.FromLegacyLevel(cfg.Verbosity))
	log.SetDefault(log.NewLogger(glogger))
	return nil
}
