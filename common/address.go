// Package common contains the address value type shared by the calldata codec
// and the transaction decoders.
package common

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"sort"

	"github.com/holiman/uint256"
	"github.com/tos-network/glsdk/crypto"
)

// AddressLength is the expected length of an address in bytes.
const AddressLength = 20

var (
	// ErrInvalidAddressLength is returned when the resolved address bytes are not
	// exactly AddressLength long.
	ErrInvalidAddressLength = errors.New("common: invalid address length")

	// ErrInvalidAddressEncoding is returned when hex or base64 text cannot be decoded.
	ErrInvalidAddressEncoding = errors.New("common: invalid address encoding")
)

// Address represents the 20 byte account identifier used in calldata.
type Address [AddressLength]byte

// BytesToAddress copies b into an Address. It fails unless len(b) is exactly
// AddressLength.
func BytesToAddress(b []byte) (Address, error) {
	var a Address
	if len(b) != AddressLength {
		return a, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidAddressLength, len(b), AddressLength)
	}
	copy(a[:], b)
	return a, nil
}

// HexToAddress parses a 0x-prefixed hex address. Letter case is not checked.
func HexToAddress(s string) (Address, error) {
	if !has0xPrefix(s) {
		return Address{}, fmt.Errorf("%w: missing 0x prefix", ErrInvalidAddressEncoding)
	}
	b, err := hex.DecodeString(s[2:])
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddressEncoding, err)
	}
	return BytesToAddress(b)
}

// Base64ToAddress parses the standard base64 rendering of an address.
func Base64ToAddress(s string) (Address, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Address{}, fmt.Errorf("%w: %v", ErrInvalidAddressEncoding, err)
	}
	return BytesToAddress(b)
}

// ParseAddress resolves textual input the same way the network tooling does:
// exactly 42 characters with a 0x prefix is hex, anything longer than 20
// characters is base64, and everything else is taken as the raw bytes of s.
func ParseAddress(s string) (Address, error) {
	switch {
	case len(s) == 2+2*AddressLength && has0xPrefix(s):
		return HexToAddress(s)
	case len(s) > AddressLength:
		return Base64ToAddress(s)
	default:
		return BytesToAddress([]byte(s))
	}
}

// MustParseAddress is like ParseAddress but panics on malformed input. It is
// intended for constants and tests.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// Bytes returns a copy of the raw address bytes.
func (a Address) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// IsZero reports whether every byte of a is zero.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Hex returns the checksummed hex rendering of the address. A digit is
// upper-cased when the matching nibble of keccak256(lowercase hex) is >= 8.
func (a Address) Hex() string {
	return string(a.checksumHex())
}

func (a Address) checksumHex() []byte {
	var buf [2 + 2*AddressLength]byte
	copy(buf[:2], "0x")
	hex.Encode(buf[2:], a[:])

	hash := crypto.Keccak256(buf[2:])
	for i := 2; i < len(buf); i++ {
		hashByte := hash[(i-2)/2]
		if i%2 == 0 {
			hashByte = hashByte >> 4
		} else {
			hashByte &= 0xf
		}
		if buf[i] > '9' && hashByte > 7 {
			buf[i] -= 32
		}
	}
	return buf[:]
}

// Base64 returns the standard base64 rendering of the address bytes.
func (a Address) Base64() string {
	return base64.StdEncoding.EncodeToString(a[:])
}

// Uint256 interprets the address bytes as a little-endian unsigned integer.
func (a Address) Uint256() *uint256.Int {
	var be [AddressLength]byte
	for i := range a {
		be[AddressLength-1-i] = a[i]
	}
	return new(uint256.Int).SetBytes(be[:])
}

// Big is the math/big form of Uint256.
func (a Address) Big() *big.Int {
	return a.Uint256().ToBig()
}

// Cmp compares two addresses byte-wise, returning -1, 0 or +1.
func (a Address) Cmp(other Address) int {
	return bytes.Compare(a[:], other[:])
}

// Less reports whether a sorts before other.
func (a Address) Less(other Address) bool {
	return a.Cmp(other) < 0
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Hex()
}

// MarshalText returns the checksummed hex rendering.
func (a Address) MarshalText() ([]byte, error) {
	return a.checksumHex(), nil
}

// UnmarshalText accepts any form understood by ParseAddress.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// SortAddresses orders addrs ascending by byte value, in place.
func SortAddresses(addrs []Address) {
	sort.Slice(addrs, func(i, j int) bool { return addrs[i].Less(addrs[j]) })
}
