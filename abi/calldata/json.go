package calldata

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// ErrInvalidJSON is returned by ParseJSON for malformed documents.
var ErrInvalidJSON = errors.New("calldata: invalid json")

// ParseJSON converts a JSON document into a value tree. Numbers must be
// integers; objects become maps and arrays become arrays. Byte strings and
// addresses have no JSON form and are never produced.
func ParseJSON(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var doc interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: data after top-level value", ErrInvalidJSON)
	}
	return fromJSON(doc, 0)
}

func fromJSON(x interface{}, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, ErrMaxDepthExceeded
	}
	switch v := x.(type) {
	case json.Number:
		n, ok := new(big.Int).SetString(v.String(), 10)
		if !ok {
			return nil, fmt.Errorf("%w: non-integer number %s", ErrUnsupportedValueType, v)
		}
		return Int{x: n}, nil
	case []interface{}:
		arr := make(Array, len(v))
		for i, elem := range v {
			conv, err := fromJSON(elem, depth+1)
			if err != nil {
				return nil, wrapPath(err, fmt.Sprintf("[%d]", i))
			}
			arr[i] = conv
		}
		return arr, nil
	case map[string]interface{}:
		m := make(Map, len(v))
		for k, elem := range v {
			conv, err := fromJSON(elem, depth+1)
			if err != nil {
				return nil, wrapPath(err, fmt.Sprintf("[%q]", k))
			}
			m[k] = conv
		}
		return m, nil
	}
	// nil, bool and string map directly.
	return FromGo(x)
}
