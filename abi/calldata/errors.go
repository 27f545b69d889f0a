package calldata

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedVarint indicates the input ended inside a ULEB128 sequence.
	ErrMalformedVarint = errors.New("calldata: malformed uleb128")

	// ErrUnknownTypeTag indicates an unrecognized type tag or special code.
	ErrUnknownTypeTag = errors.New("calldata: unknown type tag")

	// ErrTruncatedPayload indicates a length or count larger than the remaining input.
	ErrTruncatedPayload = errors.New("calldata: truncated payload")

	// ErrInvalidUTF8 indicates a string or map key that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("calldata: invalid utf-8")

	// ErrNonCanonicalMapKeys indicates map keys that are not strictly ascending.
	ErrNonCanonicalMapKeys = errors.New("calldata: map keys not strictly ascending")

	// ErrTrailingBytes indicates input left over after the top-level value.
	ErrTrailingBytes = errors.New("calldata: trailing bytes")

	// ErrUnsupportedValueType indicates a value outside the calldata variant set.
	ErrUnsupportedValueType = errors.New("calldata: unsupported value type")

	// ErrMaxDepthExceeded indicates arrays or maps nested deeper than MaxDepth.
	ErrMaxDepthExceeded = errors.New("calldata: max nesting depth exceeded")
)

// DecodeError reports where in the input decoding failed. Err is one of the
// package sentinel errors and can be matched with errors.Is.
type DecodeError struct {
	Err    error
	Offset int
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v (offset %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("%v (offset %d): %s", e.Err, e.Offset, e.Detail)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
