// Package txdata encodes and decodes the transaction data envelope that wraps
// calldata for contract calls and deployments, together with the execution
// results and leader receipts that embed calldata blobs.
package txdata

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/tos-network/glsdk/abi/calldata"
)

// Type distinguishes the two envelope shapes.
type Type string

const (
	TypeCall   Type = "call"
	TypeDeploy Type = "deploy"
)

const (
	callFields   = 2 // [calldata, leaderOnly]
	deployFields = 3 // [code, calldata, leaderOnly]
)

// ErrInvalidEnvelope is returned when the envelope is not a 2 or 3 element
// RLP list of byte strings.
var ErrInvalidEnvelope = errors.New("txdata: invalid transaction data envelope")

// Decoded is the decoded form of a transaction data envelope.
type Decoded struct {
	Type Type
	// Code is the contract code for deployments.
	Code []byte
	// Calldata holds the call object or the constructor arguments. It is nil
	// when the envelope carries an empty blob.
	Calldata   calldata.Value
	LeaderOnly bool
}

// EncodeCall builds the envelope for a method call.
func EncodeCall(method string, args []calldata.Value, kwargs map[string]calldata.Value, leaderOnly bool) ([]byte, error) {
	cd, err := calldata.Encode(calldata.NewCallObject(method, args, kwargs))
	if err != nil {
		return nil, err
	}
	return rlp.EncodeToBytes([]interface{}{cd, leaderOnly})
}

// EncodeDeploy builds the envelope for a contract deployment. The constructor
// arguments are encoded without a method name.
func EncodeDeploy(code []byte, args []calldata.Value, kwargs map[string]calldata.Value, leaderOnly bool) ([]byte, error) {
	cd, err := calldata.Encode(calldata.NewCallObject("", args, kwargs))
	if err != nil {
		return nil, err
	}
	return rlp.EncodeToBytes([]interface{}{code, cd, leaderOnly})
}

// Decode parses an envelope. A two element list is a call and a three
// element list is a deployment. The leader-only flag is set only by the
// single byte 0x01.
func Decode(data []byte) (*Decoded, error) {
	var items [][]byte
	if err := rlp.DecodeBytes(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	var (
		out = new(Decoded)
		raw []byte
	)
	switch len(items) {
	case callFields:
		out.Type = TypeCall
		raw, out.LeaderOnly = items[0], isLeaderOnly(items[1])
	case deployFields:
		out.Type = TypeDeploy
		out.Code = items[0]
		raw, out.LeaderOnly = items[1], isLeaderOnly(items[2])
	default:
		return nil, fmt.Errorf("%w: %d elements", ErrInvalidEnvelope, len(items))
	}
	if len(raw) > 0 {
		v, err := calldata.Decode(raw)
		if err != nil {
			return nil, fmt.Errorf("txdata: %s calldata: %w", out.Type, err)
		}
		out.Calldata = v
	}
	return out, nil
}

func isLeaderOnly(flag []byte) bool {
	return len(flag) == 1 && flag[0] == 0x01
}

// DecodeHex decodes a 0x-prefixed hex envelope.
func DecodeHex(s string) (*Decoded, error) {
	data, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	return Decode(data)
}

// TryDecodeHex is the lenient variant used when formatting transactions for
// display: malformed input is logged and yields nil.
func TryDecodeHex(s string) *Decoded {
	if len(s) <= 2 {
		return nil
	}
	d, err := DecodeHex(s)
	if err != nil {
		log.Warn("Failed to decode transaction data", "err", err, "data", s)
		return nil
	}
	return d
}
