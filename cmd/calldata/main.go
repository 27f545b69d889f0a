package main

import (
	"fmt"
	"os"

	"github.com/tos-network/glsdk/internal/debug"
	"github.com/tos-network/glsdk/internal/flags"
	"github.com/urfave/cli/v2"
)

// Git SHA1 commit hash of the release (set via linker flags)
var gitCommit = ""
var gitDate = ""

var app = newApp()

func newApp() *cli.App {
	app := flags.NewApp(gitCommit, gitDate, "a GenLayer calldata inspector")
	app.Metadata = make(map[string]interface{})
	app.Flags = flags.Merge([]cli.Flag{configFileFlag}, debug.Flags)
	app.Commands = []*cli.Command{
		commandDecode,
		commandEncode,
		commandAddress,
		commandTxData,
		commandResult,
		commandReceipt,
		commandNames,
		dumpConfigCommand,
		versionCommand,
	}
	app.Before = func(ctx *cli.Context) error {
		cfg, err := makeConfig(ctx)
		if err != nil {
			return err
		}
		ctx.App.Metadata[configKey] = cfg
		return debug.Setup(ctx.App.ErrWriter, cfg.Log)
	}
	return app
}

// Commonly used command line flags.
var (
	jsonFlag = &cli.BoolFlag{
		Name:     "json",
		Usage:    "output JSON instead of human-readable format",
		Category: flags.OutputCategory,
	}
	tableFlag = &cli.BoolFlag{
		Name:     "table",
		Usage:    "render human-readable output as a table",
		Category: flags.OutputCategory,
	}
)

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
