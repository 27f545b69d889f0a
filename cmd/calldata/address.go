package main

import (
	"encoding/hex"
	"fmt"

	"github.com/tos-network/glsdk/common"
	"github.com/urfave/cli/v2"
)

var sortFlag = &cli.BoolFlag{
	Name:  "sort",
	Usage: "print the addresses in ascending byte order",
}

type outputAddress struct {
	Address common.Address `json:"address"`
	Hex     string         `json:"hex"`
	Base64  string         `json:"base64"`
	Uint256 string         `json:"uint256"`
}

var commandAddress = &cli.Command{
	Name:      "address",
	Usage:     "show the encodings of one or more addresses",
	ArgsUsage: "<hex|base64>...",
	Description: `
Print the checksummed hex, plain hex, base64 and little-endian integer forms
of each address. Addresses may be given as 0x-prefixed hex or base64.`,
	Flags: []cli.Flag{
		jsonFlag,
		tableFlag,
		sortFlag,
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() == 0 {
			return fmt.Errorf("address expects at least one argument %s", ctx.Command.ArgsUsage)
		}
		addrs := make([]common.Address, 0, ctx.NArg())
		for _, arg := range ctx.Args().Slice() {
			a, err := common.ParseAddress(arg)
			if err != nil {
				return fmt.Errorf("invalid address %q: %w", arg, err)
			}
			addrs = append(addrs, a)
		}
		if ctx.Bool(sortFlag.Name) {
			common.SortAddresses(addrs)
		}

		outs := make([]outputAddress, len(addrs))
		var fields []field
		for i, a := range addrs {
			outs[i] = outputAddress{
				Address: a,
				Hex:     hex.EncodeToString(a.Bytes()),
				Base64:  a.Base64(),
				Uint256: a.Uint256().Dec(),
			}
			fields = append(fields,
				field{"Address", a.Hex()},
				field{"Hex", outs[i].Hex},
				field{"Base64", outs[i].Base64},
				field{"Uint256", outs[i].Uint256},
			)
		}
		if len(outs) == 1 {
			return emit(ctx, outs[0], fields)
		}
		return emit(ctx, outs, fields)
	},
}
