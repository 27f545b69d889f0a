package main

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/tos-network/glsdk/abi/calldata"
	"github.com/tos-network/glsdk/abi/txdata"
	"github.com/tos-network/glsdk/internal/flags"
	"github.com/urfave/cli/v2"
)

var (
	methodFlag = &cli.StringFlag{
		Name:     "method",
		Usage:    "wrap the JSON array as the arguments of a call to this method",
		Category: flags.CodecCategory,
	}
	kwargsFlag = &cli.StringFlag{
		Name:     "kwargs",
		Usage:    "JSON object with keyword arguments for the call",
		Category: flags.CodecCategory,
	}
	envelopeFlag = &cli.BoolFlag{
		Name:     "envelope",
		Usage:    "wrap the call in a transaction data envelope",
		Category: flags.EnvelopeCategory,
	}
	deployFlag = &cli.StringFlag{
		Name:     "deploy",
		Usage:    "hex contract code; builds a deployment envelope with the JSON array as constructor arguments",
		Category: flags.EnvelopeCategory,
	}
	leaderOnlyFlag = &cli.BoolFlag{
		Name:     "leader-only",
		Usage:    "mark the envelope as executed by the leader only",
		Category: flags.EnvelopeCategory,
	}
)

var commandEncode = &cli.Command{
	Name:      "encode",
	Usage:     "encode a JSON document as calldata",
	ArgsUsage: "<json>",
	Description: `
Encode a JSON document and print the result as 0x-prefixed hex. Numbers must
be integers.

With --method the document must be an array; it becomes the argument list of
a call object. --envelope and --deploy additionally wrap the call object in a
transaction data envelope.`,
	Flags: []cli.Flag{
		methodFlag,
		kwargsFlag,
		envelopeFlag,
		deployFlag,
		leaderOnlyFlag,
	},
	Action: func(ctx *cli.Context) error {
		arg, err := requireArg(ctx)
		if err != nil {
			return err
		}
		v, err := calldata.ParseJSON([]byte(arg))
		if err != nil {
			return err
		}
		out, err := encodeValue(ctx, v)
		if err != nil {
			return err
		}
		log.Debug("Encoded calldata", "kind", v.Kind(), "size", len(out))
		fmt.Fprintln(ctx.App.Writer, hexutil.Encode(out))
		return nil
	},
}

func encodeValue(ctx *cli.Context, v calldata.Value) ([]byte, error) {
	var (
		method   = ctx.String(methodFlag.Name)
		code     = ctx.String(deployFlag.Name)
		envelope = ctx.Bool(envelopeFlag.Name)
	)
	if method == "" && code == "" && !envelope && !ctx.IsSet(kwargsFlag.Name) {
		return calldata.Encode(v)
	}
	if method != "" && code != "" {
		return nil, errors.New("--method and --deploy are mutually exclusive")
	}
	args, ok := v.(calldata.Array)
	if !ok {
		return nil, fmt.Errorf("call arguments must be a JSON array, got %s", v.Kind())
	}
	var kwargs map[string]calldata.Value
	if s := ctx.String(kwargsFlag.Name); s != "" {
		kv, err := calldata.ParseJSON([]byte(s))
		if err != nil {
			return nil, fmt.Errorf("invalid --kwargs: %w", err)
		}
		m, ok := kv.(calldata.Map)
		if !ok {
			return nil, fmt.Errorf("--kwargs must be a JSON object, got %s", kv.Kind())
		}
		kwargs = m
	}
	switch {
	case code != "":
		bytecode, err := hexutil.Decode(code)
		if err != nil {
			return nil, fmt.Errorf("invalid --deploy code: %v", err)
		}
		return txdata.EncodeDeploy(bytecode, args, kwargs, ctx.Bool(leaderOnlyFlag.Name))
	case envelope:
		return txdata.EncodeCall(method, args, kwargs, ctx.Bool(leaderOnlyFlag.Name))
	default:
		return calldata.Encode(calldata.NewCallObject(method, args, kwargs))
	}
}
