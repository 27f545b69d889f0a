package main

import (
	"fmt"

	"github.com/tos-network/glsdk/abi/calldata"
	"github.com/urfave/cli/v2"
)

var commandDecode = &cli.Command{
	Name:      "decode",
	Usage:     "decode a calldata blob",
	ArgsUsage: "<hex|base64>",
	Description: `
Decode a calldata blob and print its canonical text form.

With --json the raw bytes are printed next to the text form.`,
	Flags: []cli.Flag{
		jsonFlag,
	},
	Action: func(ctx *cli.Context) error {
		arg, err := requireArg(ctx)
		if err != nil {
			return err
		}
		data, err := parseBlob(arg)
		if err != nil {
			return err
		}
		if outputSettings(ctx).JSON {
			r, err := calldata.NewReadable(data)
			if err != nil {
				return err
			}
			return printJSON(ctx.App.Writer, r)
		}
		v, err := calldata.Decode(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(ctx.App.Writer, v)
		return nil
	},
}
