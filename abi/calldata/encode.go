package calldata

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"unicode/utf8"
)

// Encode serializes v into its canonical calldata form.
func Encode(v Value) ([]byte, error) {
	enc := encoder{buf: make([]byte, 0, 64)}
	if err := enc.encode(v, 0); err != nil {
		return nil, err
	}
	return enc.buf, nil
}

// MustEncode is like Encode but panics on error. It is intended for values
// built from constants.
func MustEncode(v Value) []byte {
	b, err := Encode(v)
	if err != nil {
		panic(err)
	}
	return b
}

type encoder struct {
	buf []byte
}

func (e *encoder) encode(v Value, depth int) error {
	switch v := v.(type) {
	case Null:
		e.buf = append(e.buf, SpecialNull)
	case Bool:
		if v {
			e.buf = append(e.buf, SpecialTrue)
		} else {
			e.buf = append(e.buf, SpecialFalse)
		}
	case Int:
		e.writeInt(v)
	case Address:
		e.buf = append(e.buf, SpecialAddr)
		e.buf = append(e.buf, v.Address[:]...)
	case Bytes:
		e.writeHeader(TypeBytes, len(v))
		e.buf = append(e.buf, v...)
	case Str:
		if !utf8.ValidString(string(v)) {
			return ErrInvalidUTF8
		}
		e.writeHeader(TypeStr, len(v))
		e.buf = append(e.buf, v...)
	case Array:
		if depth >= MaxDepth {
			return ErrMaxDepthExceeded
		}
		e.writeHeader(TypeArray, len(v))
		for i, elem := range v {
			if err := e.encode(elem, depth+1); err != nil {
				return wrapPath(err, fmt.Sprintf("[%d]", i))
			}
		}
	case Map:
		if depth >= MaxDepth {
			return ErrMaxDepthExceeded
		}
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.writeHeader(TypeMap, len(v))
		for _, k := range keys {
			if !utf8.ValidString(k) {
				return wrapPath(ErrInvalidUTF8, fmt.Sprintf("[%q]", k))
			}
			e.buf = appendUleb128(e.buf, uint64(len(k)))
			e.buf = append(e.buf, k...)
			if err := e.encode(v[k], depth+1); err != nil {
				return wrapPath(err, fmt.Sprintf("[%q]", k))
			}
		}
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedValueType, v)
	}
	return nil
}

// wrapPath prefixes nested encoding errors with the location of the failing
// element while keeping the sentinel matchable.
func wrapPath(err error, step string) error {
	if pe, ok := err.(*pathError); ok {
		pe.path = step + pe.path
		return pe
	}
	return &pathError{path: step, err: err}
}

type pathError struct {
	path string
	err  error
}

func (e *pathError) Error() string { return fmt.Sprintf("value%s: %v", e.path, e.err) }
func (e *pathError) Unwrap() error { return e.err }

func (e *encoder) writeHeader(typ uint64, n int) {
	e.buf = appendUleb128(e.buf, uint64(n)<<BitsInType|typ)
}

// maxSmallPayload is the largest payload whose tagged code fits in a uint64.
const maxSmallPayload = math.MaxUint64 >> BitsInType

func (e *encoder) writeInt(v Int) {
	if i, ok := v.Int64(); ok {
		// -(i+1) cannot overflow for any negative int64.
		if i >= 0 && uint64(i) <= maxSmallPayload {
			e.buf = appendUleb128(e.buf, uint64(i)<<BitsInType|TypePInt)
			return
		}
		if i < 0 && uint64(-(i+1)) <= maxSmallPayload {
			e.buf = appendUleb128(e.buf, uint64(-(i+1))<<BitsInType|TypeNInt)
			return
		}
	}
	mag := v.Big()
	tag := int64(TypePInt)
	if mag.Sign() < 0 {
		mag.Neg(mag)
		mag.Sub(mag, big.NewInt(1))
		tag = TypeNInt
	}
	if mag.IsUint64() && mag.Uint64() <= maxSmallPayload {
		e.buf = appendUleb128(e.buf, mag.Uint64()<<BitsInType|uint64(tag))
		return
	}
	mag.Lsh(mag, BitsInType)
	mag.Or(mag, big.NewInt(tag))
	e.buf = appendUleb128Big(e.buf, mag)
}

// appendUleb128 appends x as an unsigned LEB128 integer.
func appendUleb128(buf []byte, x uint64) []byte {
	for x >= 0x80 {
		buf = append(buf, byte(x)|0x80)
		x >>= 7
	}
	return append(buf, byte(x))
}

// appendUleb128Big appends a non-negative big integer as unsigned LEB128.
func appendUleb128Big(buf []byte, x *big.Int) []byte {
	be := x.Bytes()
	groups := make([]byte, 0, (len(be)*8+6)/7+1)
	var (
		acc   uint32
		nbits uint
	)
	for i := len(be) - 1; i >= 0; i-- {
		acc |= uint32(be[i]) << nbits
		nbits += 8
		for nbits >= 7 {
			groups = append(groups, byte(acc&0x7f))
			acc >>= 7
			nbits -= 7
		}
	}
	if nbits > 0 {
		groups = append(groups, byte(acc))
	}
	for len(groups) > 1 && groups[len(groups)-1] == 0 {
		groups = groups[:len(groups)-1]
	}
	if len(groups) == 0 {
		return append(buf, 0)
	}
	for i := 0; i < len(groups)-1; i++ {
		groups[i] |= 0x80
	}
	return append(buf, groups...)
}
