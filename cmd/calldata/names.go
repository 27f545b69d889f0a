package main

import (
	"fmt"
	"strconv"

	"github.com/tos-network/glsdk/abi/txdata"
	"github.com/urfave/cli/v2"
)

type outputName struct {
	Number uint64 `json:"number"`
	Name   string `json:"name"`
}

var commandNames = &cli.Command{
	Name:      "names",
	Usage:     "print consensus name tables",
	ArgsUsage: "<status|result|vote> [name|number]",
	Description: `
Print the numbered names used for transaction status, consensus results and
validator votes. With a second argument, resolve a single name or number.`,
	Flags: []cli.Flag{
		jsonFlag,
		tableFlag,
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() < 1 || ctx.NArg() > 2 {
			return fmt.Errorf("names expects %s", ctx.Command.ArgsUsage)
		}
		table := ctx.Args().Get(0)
		names, err := nameTable(table)
		if err != nil {
			return err
		}
		var entries []outputName
		if ctx.NArg() == 2 {
			n, err := parseTableEntry(table, ctx.Args().Get(1))
			if err != nil {
				return err
			}
			entries = []outputName{{n, names[n]}}
		} else {
			for i, name := range names {
				entries = append(entries, outputName{uint64(i), name})
			}
		}
		fields := make([]field, len(entries))
		for i, e := range entries {
			fields[i] = field{strconv.FormatUint(e.Number, 10), e.Name}
		}
		if len(entries) == 1 {
			return emit(ctx, entries[0], fields)
		}
		return emit(ctx, entries, fields)
	},
}

func nameTable(table string) ([]string, error) {
	switch table {
	case "status":
		return txdata.StatusNames(), nil
	case "result":
		return txdata.TransactionResultNames(), nil
	case "vote":
		return txdata.VoteNames(), nil
	}
	return nil, fmt.Errorf("unknown name table %q, want status, result or vote", table)
}

func parseTableEntry(table, s string) (uint64, error) {
	switch table {
	case "status":
		v, err := txdata.ParseTransactionStatus(s)
		return uint64(v), err
	case "result":
		v, err := txdata.ParseTransactionResult(s)
		return uint64(v), err
	default:
		v, err := txdata.ParseVoteType(s)
		return uint64(v), err
	}
}
