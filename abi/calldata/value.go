// Package calldata implements the self-describing binary value format used to
// pass method names and arguments to intelligent contracts.
//
// A value is one of Null, Bool, Int, Bytes, Str, Address, Array or Map. Maps
// are keyed by strings and always travel with their keys in ascending byte
// order, so every value has exactly one valid encoding.
package calldata

import (
	"bytes"
	"math/big"

	"github.com/tos-network/glsdk/common"
)

// Kind identifies a calldata variant.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindBytes
	KindStr
	KindAddress
	KindArray
	KindMap
)

var kindNames = [...]string{
	KindNull:    "null",
	KindBool:    "bool",
	KindInt:     "int",
	KindBytes:   "bytes",
	KindStr:     "str",
	KindAddress: "address",
	KindArray:   "array",
	KindMap:     "map",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a node of a calldata value tree. The set of implementations is
// closed; the unexported method keeps other packages from adding variants.
type Value interface {
	Kind() Kind
	String() string
	calldataValue()
}

type (
	// Null is the absent value.
	Null struct{}

	// Bool is a boolean value.
	Bool bool

	// Int is an arbitrary precision signed integer. The zero Int is 0.
	Int struct{ x *big.Int }

	// Bytes is an owned byte string.
	Bytes []byte

	// Str is a UTF-8 string.
	Str string

	// Address is a 20 byte account address.
	Address struct{ common.Address }

	// Array is an ordered sequence of values.
	Array []Value

	// Map associates string keys with values. Encoding sorts the keys.
	Map map[string]Value
)

func (Null) Kind() Kind    { return KindNull }
func (Bool) Kind() Kind    { return KindBool }
func (Int) Kind() Kind     { return KindInt }
func (Bytes) Kind() Kind   { return KindBytes }
func (Str) Kind() Kind     { return KindStr }
func (Address) Kind() Kind { return KindAddress }
func (Array) Kind() Kind   { return KindArray }
func (Map) Kind() Kind     { return KindMap }

func (v Null) String() string    { return ToText(v) }
func (v Bool) String() string    { return ToText(v) }
func (v Int) String() string     { return ToText(v) }
func (v Bytes) String() string   { return ToText(v) }
func (v Str) String() string     { return ToText(v) }
func (v Address) String() string { return ToText(v) }
func (v Array) String() string   { return ToText(v) }
func (v Map) String() string     { return ToText(v) }

func (Null) calldataValue()    {}
func (Bool) calldataValue()    {}
func (Int) calldataValue()     {}
func (Bytes) calldataValue()   {}
func (Str) calldataValue()     {}
func (Address) calldataValue() {}
func (Array) calldataValue()   {}
func (Map) calldataValue()     {}

// NewInt returns the Int holding x.
func NewInt(x int64) Int {
	return Int{x: big.NewInt(x)}
}

// NewUint returns the Int holding x.
func NewUint(x uint64) Int {
	return Int{x: new(big.Int).SetUint64(x)}
}

// NewBigInt returns an Int holding a copy of x. A nil x is treated as zero.
func NewBigInt(x *big.Int) Int {
	if x == nil {
		return Int{}
	}
	return Int{x: new(big.Int).Set(x)}
}

// Big returns a copy of the integer.
func (v Int) Big() *big.Int {
	if v.x == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(v.x)
}

// Sign returns -1, 0 or +1 depending on the sign of v.
func (v Int) Sign() int {
	if v.x == nil {
		return 0
	}
	return v.x.Sign()
}

// Int64 returns v as an int64 and whether it fits.
func (v Int) Int64() (int64, bool) {
	if v.x == nil {
		return 0, true
	}
	return v.x.Int64(), v.x.IsInt64()
}

// Cmp compares v and w, returning -1, 0 or +1.
func (v Int) Cmp(w Int) int {
	return v.bigOrZero().Cmp(w.bigOrZero())
}

var bigZero = new(big.Int)

func (v Int) bigOrZero() *big.Int {
	if v.x == nil {
		return bigZero
	}
	return v.x
}

// NewAddress wraps addr as a calldata value.
func NewAddress(addr common.Address) Address {
	return Address{Address: addr}
}

// Equal reports whether a and b are structurally equal. Integers compare by
// value, byte strings by content, and maps regardless of insertion order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch a := a.(type) {
	case Null:
		_, ok := b.(Null)
		return ok
	case Bool:
		bv, ok := b.(Bool)
		return ok && a == bv
	case Int:
		bv, ok := b.(Int)
		return ok && a.Cmp(bv) == 0
	case Bytes:
		bv, ok := b.(Bytes)
		return ok && bytes.Equal(a, bv)
	case Str:
		bv, ok := b.(Str)
		return ok && a == bv
	case Address:
		bv, ok := b.(Address)
		return ok && a.Address == bv.Address
	case Array:
		bv, ok := b.(Array)
		if !ok || len(a) != len(bv) {
			return false
		}
		for i := range a {
			if !Equal(a[i], bv[i]) {
				return false
			}
		}
		return true
	case Map:
		bv, ok := b.(Map)
		if !ok || len(a) != len(bv) {
			return false
		}
		for k, av := range a {
			w, ok := bv[k]
			if !ok || !Equal(av, w) {
				return false
			}
		}
		return true
	}
	return false
}
