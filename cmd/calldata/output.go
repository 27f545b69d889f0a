package main

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"
)

// field is one labelled line of human-readable output.
type field struct {
	Name, Value string
}

func printJSON(w io.Writer, v interface{}) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON object: %v", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}

// printFields renders fields either as aligned lines or as a table.
func printFields(w io.Writer, table bool, fields []field) {
	if table {
		t := tablewriter.NewWriter(w)
		t.SetHeader([]string{"Field", "Value"})
		t.SetAutoWrapText(false)
		for _, f := range fields {
			t.Append([]string{f.Name, f.Value})
		}
		t.Render()
		return
	}
	width := 0
	for _, f := range fields {
		if len(f.Name) > width {
			width = len(f.Name)
		}
	}
	for _, f := range fields {
		fmt.Fprintf(w, "%-*s %s\n", width+1, f.Name+":", f.Value)
	}
}

// emit writes v as JSON or fields in the format selected for the command.
func emit(ctx *cli.Context, v interface{}, fields []field) error {
	out := outputSettings(ctx)
	if out.JSON {
		return printJSON(ctx.App.Writer, v)
	}
	printFields(ctx.App.Writer, out.Table, fields)
	return nil
}

func requireArg(ctx *cli.Context) (string, error) {
	if ctx.NArg() != 1 {
		return "", fmt.Errorf("%s expects exactly one argument %s", ctx.Command.Name, ctx.Command.ArgsUsage)
	}
	return ctx.Args().First(), nil
}

// parseBlob accepts 0x-prefixed hex or standard base64.
func parseBlob(s string) ([]byte, error) {
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return hexutil.Decode(s)
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.New("input is neither 0x-prefixed hex nor base64")
	}
	return b, nil
}
