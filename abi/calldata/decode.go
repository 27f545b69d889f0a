package calldata

import (
	"fmt"
	"math/big"
	"unicode/utf8"

	"github.com/tos-network/glsdk/common"
)

const (
	// trailingPreview is how many unconsumed bytes a trailing-bytes error shows.
	trailingPreview = 5
	// valuePreview bounds the text of the decoded value in that error.
	valuePreview = 64
	// preallocLimit caps container capacity taken from a declared count.
	preallocLimit = 64
)

// Decode parses exactly one calldata value that fills data. The returned tree
// does not alias data.
func Decode(data []byte) (Value, error) {
	d := decoder{buf: data}
	v, err := d.decodeValue(0)
	if err != nil {
		return nil, err
	}
	if rest := d.remaining(); rest > 0 {
		preview := data[d.pos:]
		if len(preview) > trailingPreview {
			preview = preview[:trailingPreview]
		}
		text := ToText(v)
		if len(text) > valuePreview {
			text = text[:valuePreview] + "..."
		}
		return nil, &DecodeError{
			Err:    ErrTrailingBytes,
			Offset: d.pos,
			Detail: fmt.Sprintf("%d unparsed bytes %x... after %s", rest, preview, text),
		}
	}
	return v, nil
}

// decoder is a read cursor over a calldata buffer.
type decoder struct {
	buf []byte
	pos int
}

func (d *decoder) remaining() int {
	return len(d.buf) - d.pos
}

func (d *decoder) fail(offset int, err error, format string, args ...interface{}) error {
	return &DecodeError{Err: err, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}

// readUleb128 reads one unsigned LEB128 integer. Values that do not fit in 64
// bits are returned as a big.Int with the uint64 result set to zero.
func (d *decoder) readUleb128() (uint64, *big.Int, error) {
	start := d.pos
	end := start
	for {
		if end >= len(d.buf) {
			return 0, nil, d.fail(start, ErrMalformedVarint, "input ends after %d continuation bytes", end-start)
		}
		if d.buf[end]&0x80 == 0 {
			break
		}
		end++
	}
	groups := d.buf[start : end+1]
	d.pos = end + 1

	// Nine groups carry at most 63 bits.
	if len(groups) <= 9 {
		var x uint64
		for i, g := range groups {
			x |= uint64(g&0x7f) << (7 * uint(i))
		}
		return x, nil, nil
	}
	x := ulebGroupsToBig(groups)
	if x.IsUint64() {
		return x.Uint64(), nil, nil
	}
	return 0, x, nil
}

// ulebGroupsToBig packs 7-bit groups into a big.Int in a single pass.
func ulebGroupsToBig(groups []byte) *big.Int {
	le := make([]byte, (len(groups)*7+7)/8)
	var (
		acc   uint32
		nbits uint
		j     int
	)
	for _, g := range groups {
		acc |= uint32(g&0x7f) << nbits
		nbits += 7
		for nbits >= 8 {
			le[j] = byte(acc)
			j++
			acc >>= 8
			nbits -= 8
		}
	}
	if nbits > 0 {
		le[j] = byte(acc)
	}
	for i, k := 0, len(le)-1; i < k; i, k = i+1, k-1 {
		le[i], le[k] = le[k], le[i]
	}
	return new(big.Int).SetBytes(le)
}

// readBytes consumes n bytes and returns them without copying.
func (d *decoder) readBytes(n uint64, offset int) ([]byte, error) {
	if n > uint64(d.remaining()) {
		return nil, d.fail(offset, ErrTruncatedPayload, "need %d bytes, have %d", n, d.remaining())
	}
	b := d.buf[d.pos : d.pos+int(n)]
	d.pos += int(n)
	return b, nil
}

// readLength turns a code payload into a length, rejecting values that cannot
// possibly be satisfied by the remaining input. minUnit is the smallest
// number of bytes one counted item can occupy.
func (d *decoder) readLength(payload uint64, wide *big.Int, minUnit int, offset int) (uint64, error) {
	if wide != nil || payload > uint64(d.remaining()/minUnit) {
		return 0, d.fail(offset, ErrTruncatedPayload, "declared size exceeds %d remaining bytes", d.remaining())
	}
	return payload, nil
}

func (d *decoder) decodeValue(depth int) (Value, error) {
	start := d.pos
	code, bigCode, err := d.readUleb128()
	if err != nil {
		return nil, err
	}
	var typ uint64
	if bigCode != nil {
		typ = uint64(bigCode.Bit(0) | bigCode.Bit(1)<<1 | bigCode.Bit(2)<<2)
	} else {
		typ = code & typeMask
	}

	var (
		payload    = code >> BitsInType
		bigPayload *big.Int
	)
	if bigCode != nil {
		bigPayload = new(big.Int).Rsh(bigCode, BitsInType)
	}

	switch typ {
	case TypeSpecial:
		if bigCode != nil {
			return nil, d.fail(start, ErrUnknownTypeTag, "special code too large")
		}
		switch code {
		case SpecialNull:
			return Null{}, nil
		case SpecialFalse:
			return Bool(false), nil
		case SpecialTrue:
			return Bool(true), nil
		case SpecialAddr:
			b, err := d.readBytes(common.AddressLength, d.pos)
			if err != nil {
				return nil, err
			}
			var addr common.Address
			copy(addr[:], b)
			return NewAddress(addr), nil
		}
		return nil, d.fail(start, ErrUnknownTypeTag, "unknown special code %#x", code)

	case TypePInt:
		if bigPayload != nil {
			return Int{x: bigPayload}, nil
		}
		return NewUint(payload), nil

	case TypeNInt:
		if bigPayload != nil {
			bigPayload.Add(bigPayload, big.NewInt(1))
			return Int{x: bigPayload.Neg(bigPayload)}, nil
		}
		// payload < 2^61, so the negation stays within int64.
		return NewInt(-int64(payload) - 1), nil

	case TypeBytes, TypeStr:
		n, err := d.readLength(payload, bigPayload, 1, start)
		if err != nil {
			return nil, err
		}
		b, err := d.readBytes(n, start)
		if err != nil {
			return nil, err
		}
		if typ == TypeBytes {
			return Bytes(append([]byte{}, b...)), nil
		}
		if !utf8.Valid(b) {
			return nil, d.fail(start, ErrInvalidUTF8, "string of %d bytes", len(b))
		}
		return Str(b), nil

	case TypeArray:
		if depth >= MaxDepth {
			return nil, d.fail(start, ErrMaxDepthExceeded, "depth %d", depth)
		}
		n, err := d.readLength(payload, bigPayload, 1, start)
		if err != nil {
			return nil, err
		}
		arr := make(Array, 0, min(n, preallocLimit))
		for i := uint64(0); i < n; i++ {
			elem, err := d.decodeValue(depth + 1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, elem)
		}
		return arr, nil

	case TypeMap:
		if depth >= MaxDepth {
			return nil, d.fail(start, ErrMaxDepthExceeded, "depth %d", depth)
		}
		// A pair needs at least a key length byte and a one byte value.
		n, err := d.readLength(payload, bigPayload, 2, start)
		if err != nil {
			return nil, err
		}
		m := make(Map, min(n, preallocLimit))
		var prev string
		for i := uint64(0); i < n; i++ {
			keyStart := d.pos
			klen, kbig, err := d.readUleb128()
			if err != nil {
				return nil, err
			}
			klen, err = d.readLength(klen, kbig, 1, keyStart)
			if err != nil {
				return nil, err
			}
			kb, err := d.readBytes(klen, keyStart)
			if err != nil {
				return nil, err
			}
			if !utf8.Valid(kb) {
				return nil, d.fail(keyStart, ErrInvalidUTF8, "map key of %d bytes", len(kb))
			}
			key := string(kb)
			if i > 0 && key <= prev {
				if key == prev {
					return nil, d.fail(keyStart, ErrNonCanonicalMapKeys, "duplicate key %q", key)
				}
				return nil, d.fail(keyStart, ErrNonCanonicalMapKeys, "key %q follows %q", key, prev)
			}
			prev = key
			val, err := d.decodeValue(depth + 1)
			if err != nil {
				return nil, err
			}
			m[key] = val
		}
		return m, nil
	}
	return nil, d.fail(start, ErrUnknownTypeTag, "type %d", typ)
}
