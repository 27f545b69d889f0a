package txdata

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/tos-network/glsdk/abi/calldata"
	"github.com/tos-network/glsdk/common"
)

// ErrInvalidReceipt is returned when a leader receipt does not have the
// expected RLP shape.
var ErrInvalidReceipt = errors.New("txdata: invalid leader receipt")

// Pending transactions trigger once the parent transaction reaches one of
// these states.
const (
	OnAccepted  = "accepted"
	OnFinalized = "finalized"
)

// LeaderReceipt is the decoded execution summary produced by a leader.
type LeaderReceipt struct {
	Result              ResultCode           `json:"-"`
	Status              string               `json:"status"`
	ExecutionResult     string               `json:"execution_result"`
	PendingTransactions []PendingTransaction `json:"pending_transactions"`
	PendingEthTxCount   int                  `json:"pending_eth_transactions"`
	StorageProof        hexutil.Bytes        `json:"storage_proof"`
	// EqOutputs maps the equivalence principle index to the base64 of its
	// output payload.
	EqOutputs map[uint64]string `json:"eq_outputs"`
}

// PendingTransaction is a message emitted by a contract during execution.
type PendingTransaction struct {
	Account   common.Address `json:"account"`
	Calldata  calldata.Value `json:"-"`
	Text      string         `json:"calldata"`
	Value     *big.Int       `json:"value"`
	On        string         `json:"on"`
	Code      hexutil.Bytes  `json:"code"`
	SaltNonce *big.Int       `json:"salt_nonce"`
}

type (
	leaderReceiptRLP struct {
		Execution executionRLP
		EqOutputs []eqOutputRLP
	}
	executionRLP struct {
		Result       resultRLP
		Pending      []pendingTxRLP
		PendingEth   []rlp.RawValue
		StorageProof []byte
	}
	resultRLP struct {
		Kind    []byte
		Payload rlp.RawValue
	}
	pendingTxRLP struct {
		Account   []byte
		Calldata  []byte
		Value     []byte
		On        []byte
		Code      []byte
		SaltNonce []byte
	}
	eqOutputRLP struct {
		Key    []byte
		Output [][]byte
	}
)

// DecodeLeaderReceipt parses a leader receipt. Bytes following the receipt
// list are ignored.
func DecodeLeaderReceipt(data []byte) (*LeaderReceipt, error) {
	var enc leaderReceiptRLP
	if err := rlp.Decode(bytes.NewReader(data), &enc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidReceipt, err)
	}
	kind := resultKind(enc.Execution.Result.Kind)
	r := &LeaderReceipt{
		Result:              kind,
		Status:              kind.String(),
		ExecutionResult:     executionResultName(kind),
		PendingTransactions: make([]PendingTransaction, 0, len(enc.Execution.Pending)),
		PendingEthTxCount:   len(enc.Execution.PendingEth),
		StorageProof:        enc.Execution.StorageProof,
		EqOutputs:           make(map[uint64]string, len(enc.EqOutputs)),
	}
	for i, p := range enc.Execution.Pending {
		tx, err := decodePendingTx(p)
		if err != nil {
			return nil, fmt.Errorf("txdata: pending transaction %d: %w", i, err)
		}
		r.PendingTransactions = append(r.PendingTransactions, tx)
	}
	for _, eq := range enc.EqOutputs {
		key, err := smallInt(eq.Key)
		if err != nil {
			return nil, fmt.Errorf("%w: eq output key %x", ErrInvalidReceipt, eq.Key)
		}
		if len(eq.Output) < 2 {
			return nil, fmt.Errorf("%w: eq output %d has %d elements", ErrInvalidReceipt, key, len(eq.Output))
		}
		r.EqOutputs[key] = base64.StdEncoding.EncodeToString(eq.Output[1])
	}
	return r, nil
}

// TryDecodeLeaderReceiptHex decodes a 0x-hex receipt for display. Empty
// receipts and decoding failures yield nil; failures are logged.
func TryDecodeLeaderReceiptHex(s string) *LeaderReceipt {
	if len(s) <= 2 {
		return nil
	}
	data, err := hexutil.Decode(s)
	if err == nil {
		var r *LeaderReceipt
		if r, err = DecodeLeaderReceipt(data); err == nil {
			return r
		}
	}
	log.Warn("Failed to decode leader receipt", "err", err, "receipt", s)
	return nil
}

func executionResultName(c ResultCode) string {
	if c == ResultReturn {
		return "SUCCESS"
	}
	return "ERROR"
}

func decodePendingTx(p pendingTxRLP) (PendingTransaction, error) {
	account, err := common.BytesToAddress(p.Account)
	if err != nil {
		return PendingTransaction{}, err
	}
	v, err := calldata.Decode(p.Calldata)
	if err != nil {
		return PendingTransaction{}, err
	}
	on := OnFinalized
	if new(big.Int).SetBytes(p.On).Sign() == 0 {
		on = OnAccepted
	}
	return PendingTransaction{
		Account:   account,
		Calldata:  v,
		Text:      v.String(),
		Value:     new(big.Int).SetBytes(p.Value),
		On:        on,
		Code:      p.Code,
		SaltNonce: new(big.Int).SetBytes(p.SaltNonce),
	}, nil
}

// resultKind reads a big-endian result kind of any width. Kinds that do not
// fit in 64 bits map to ResultUnknown.
func resultKind(b []byte) ResultCode {
	x := new(big.Int).SetBytes(b)
	if !x.IsUint64() {
		return ResultUnknown
	}
	return ResultCode(x.Uint64())
}

// smallInt reads a big-endian unsigned integer of at most 8 bytes.
func smallInt(b []byte) (uint64, error) {
	if len(b) > 8 {
		return 0, fmt.Errorf("integer too large (%d bytes)", len(b))
	}
	var x uint64
	for _, c := range b {
		x = x<<8 | uint64(c)
	}
	return x, nil
}
