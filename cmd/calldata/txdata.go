package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fatih/color"
	"github.com/tos-network/glsdk/abi/txdata"
	"github.com/urfave/cli/v2"
)

type outputTxData struct {
	Type       txdata.Type   `json:"type"`
	Code       hexutil.Bytes `json:"code,omitempty"`
	Calldata   *string       `json:"calldata"`
	LeaderOnly bool          `json:"leader_only"`
}

var commandTxData = &cli.Command{
	Name:      "txdata",
	Usage:     "decode a transaction data envelope",
	ArgsUsage: "<hex>",
	Description: `
Decode the RLP envelope carried in the data field of a call or deployment
transaction and print the embedded calldata.`,
	Flags: []cli.Flag{
		jsonFlag,
		tableFlag,
	},
	Action: func(ctx *cli.Context) error {
		arg, err := requireArg(ctx)
		if err != nil {
			return err
		}
		d, err := txdata.DecodeHex(arg)
		if err != nil {
			return err
		}
		out := outputTxData{
			Type:       d.Type,
			Code:       d.Code,
			LeaderOnly: d.LeaderOnly,
		}
		text := "<empty>"
		if d.Calldata != nil {
			text = d.Calldata.String()
			out.Calldata = &text
		}
		fields := []field{{"Type", string(d.Type)}}
		if d.Type == txdata.TypeDeploy {
			fields = append(fields, field{"Code", hexutil.Encode(d.Code)})
		}
		fields = append(fields,
			field{"Calldata", text},
			field{"Leader only", strconv.FormatBool(d.LeaderOnly)},
		)
		return emit(ctx, out, fields)
	},
}

var commandResult = &cli.Command{
	Name:      "result",
	Usage:     "decode an execution result",
	ArgsUsage: "<base64>",
	Description: `
Decode the base64 execution result of a transaction. Returned values are
printed in canonical text form, rollback and contract error messages verbatim.`,
	Flags: []cli.Flag{
		jsonFlag,
		tableFlag,
	},
	Action: func(ctx *cli.Context) error {
		arg, err := requireArg(ctx)
		if err != nil {
			return err
		}
		res, err := txdata.DecodeResultBase64(arg)
		if err != nil {
			return err
		}
		fields := []field{{"Status", statusColor(res.Code).Sprint(res.Status)}}
		switch {
		case res.Value != nil:
			fields = append(fields, field{"Value", res.Value.Readable})
		case res.Message != "":
			fields = append(fields, field{"Message", res.Message})
		}
		return emit(ctx, res, fields)
	},
}

func statusColor(code txdata.ResultCode) *color.Color {
	switch code {
	case txdata.ResultReturn:
		return color.New(color.FgGreen)
	case txdata.ResultRollback, txdata.ResultNone:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

var commandReceipt = &cli.Command{
	Name:      "receipt",
	Usage:     "decode a leader receipt",
	ArgsUsage: "<hex>",
	Description: `
Decode the RLP leader receipt of a transaction, including the calldata of the
pending transactions it emitted.`,
	Flags: []cli.Flag{
		jsonFlag,
		tableFlag,
	},
	Action: func(ctx *cli.Context) error {
		arg, err := requireArg(ctx)
		if err != nil {
			return err
		}
		data, err := hexutil.Decode(arg)
		if err != nil {
			return err
		}
		r, err := txdata.DecodeLeaderReceipt(data)
		if err != nil {
			return err
		}
		fields := []field{
			{"Execution", r.ExecutionResult},
			{"Result", statusColor(r.Result).Sprint(r.Result)},
			{"Storage proof", r.StorageProof.String()},
			{"Pending eth txs", strconv.Itoa(r.PendingEthTxCount)},
		}
		for i, tx := range r.PendingTransactions {
			prefix := fmt.Sprintf("Pending #%d ", i)
			fields = append(fields,
				field{prefix + "account", tx.Account.Hex()},
				field{prefix + "calldata", tx.Text},
				field{prefix + "value", tx.Value.String()},
				field{prefix + "on", tx.On},
			)
		}
		keys := make([]uint64, 0, len(r.EqOutputs))
		for k := range r.EqOutputs {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
		for _, k := range keys {
			fields = append(fields, field{fmt.Sprintf("Eq output %d", k), r.EqOutputs[k]})
		}
		return emit(ctx, r, fields)
	},
}
