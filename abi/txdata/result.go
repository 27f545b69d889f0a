package txdata

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/tos-network/glsdk/abi/calldata"
)

// ResultCode is the leading byte of an execution result. Leader receipts
// carry it as an integer of arbitrary width.
type ResultCode uint64

const (
	ResultReturn ResultCode = iota
	ResultRollback
	ResultContractError
	ResultError
	ResultNone
	ResultNoLeaders

	// ResultUnknown stands in for kinds too wide to represent.
	ResultUnknown ResultCode = math.MaxUint64
)

var resultNames = [...]string{
	ResultReturn:        "return",
	ResultRollback:      "rollback",
	ResultContractError: "contract_error",
	ResultError:         "error",
	ResultNone:          "none",
	ResultNoLeaders:     "no_leaders",
}

func (c ResultCode) String() string {
	if c < ResultCode(len(resultNames)) {
		return resultNames[c]
	}
	return "<unknown>"
}

// ErrInvalidResult is returned for empty or malformed execution results.
var ErrInvalidResult = errors.New("txdata: invalid execution result")

// Result is the decoded form of an execution result.
type Result struct {
	Code ResultCode `json:"-"`
	// Raw is the base64 transport form of the result.
	Raw    string `json:"raw"`
	Status string `json:"status"`
	// Message is set for rollback and contract_error results.
	Message string `json:"message,omitempty"`
	// Value is set for return results.
	Value *calldata.Readable `json:"value,omitempty"`
}

// DecodeResult parses an execution result: a code byte followed by calldata
// for returns or a UTF-8 message for rollbacks and contract errors. Other
// codes carry no payload that is interpreted.
func DecodeResult(raw []byte) (*Result, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrInvalidResult)
	}
	code := ResultCode(raw[0])
	res := &Result{
		Code:   code,
		Raw:    base64.StdEncoding.EncodeToString(raw),
		Status: code.String(),
	}
	payload := raw[1:]

	switch code {
	case ResultReturn:
		r, err := calldata.NewReadable(payload)
		if err != nil {
			return nil, fmt.Errorf("txdata: return value: %w", err)
		}
		res.Value = r
	case ResultRollback, ResultContractError:
		if !utf8.Valid(payload) {
			return nil, fmt.Errorf("%w: %s message is not utf-8", ErrInvalidResult, code)
		}
		res.Message = string(payload)
	}
	return res, nil
}

// DecodeResultBase64 decodes the base64 transport form of a result.
func DecodeResultBase64(s string) (*Result, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}
	res, err := DecodeResult(raw)
	if err != nil {
		return nil, err
	}
	res.Raw = s
	return res, nil
}
