package common

import (
	"encoding/json"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddressChecksumVectors(t *testing.T) {
	tests := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, want := range tests {
		addr, err := HexToAddress(strings.ToLower(want))
		require.NoError(t, err)
		assert.Equal(t, want, addr.Hex())
		assert.Equal(t, want, addr.String())
	}
}

func TestAddressConstructionForms(t *testing.T) {
	raw := make([]byte, AddressLength)
	for i := range raw {
		raw[i] = byte(i*13 + 7)
	}
	fromBytes, err := BytesToAddress(raw)
	require.NoError(t, err)

	fromHex, err := ParseAddress(fromBytes.Hex())
	require.NoError(t, err)
	fromB64, err := ParseAddress(fromBytes.Base64())
	require.NoError(t, err)

	assert.Equal(t, fromBytes, fromHex)
	assert.Equal(t, fromBytes, fromB64)
	assert.Equal(t, raw, fromB64.Bytes())

	again, err := BytesToAddress(append([]byte(nil), raw...))
	require.NoError(t, err)
	assert.Equal(t, fromBytes.Hex(), again.Hex())
}

func TestParseAddressRawText(t *testing.T) {
	addr, err := ParseAddress("abcdefghijklmnopqrst")
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdefghijklmnopqrst"), addr.Bytes())
}

func TestParseAddressInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"short raw", "abc", ErrInvalidAddressLength},
		{"short hex", "0x1234", ErrInvalidAddressLength},
		{"bad hex digits", "0x" + strings.Repeat("zz", AddressLength), ErrInvalidAddressEncoding},
		{"bad base64", strings.Repeat("!", 28), ErrInvalidAddressEncoding},
		{"base64 of 19 bytes", "AAAAAAAAAAAAAAAAAAAAAAAAAA==", ErrInvalidAddressLength},
		{"empty", "", ErrInvalidAddressLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddress(tt.input)
			require.ErrorIs(t, err, tt.err)
		})
	}
	_, err := BytesToAddress(make([]byte, 21))
	require.ErrorIs(t, err, ErrInvalidAddressLength)
}

func TestAddressBase64(t *testing.T) {
	var zero Address
	assert.Equal(t, "AAAAAAAAAAAAAAAAAAAAAAAAAAA=", zero.Base64())
	assert.True(t, zero.IsZero())
}

func TestAddressUint256LittleEndian(t *testing.T) {
	var a Address
	a[0] = 1
	assert.Equal(t, uint64(1), a.Uint256().Uint64())

	var b Address
	b[1] = 1
	assert.Equal(t, uint64(256), b.Uint256().Uint64())

	var c Address
	c[AddressLength-1] = 1
	want := new(big.Int).Lsh(big.NewInt(1), 8*(AddressLength-1))
	assert.Equal(t, 0, want.Cmp(c.Big()))
}

func TestAddressOrdering(t *testing.T) {
	var lo, hi Address
	lo[0], hi[0] = 0x01, 0x02
	hi[19] = 0x00
	lo[19] = 0xff

	assert.Equal(t, -1, lo.Cmp(hi))
	assert.Equal(t, 1, hi.Cmp(lo))
	assert.Equal(t, 0, lo.Cmp(lo))
	assert.True(t, lo.Less(hi))

	addrs := []Address{hi, {}, lo}
	SortAddresses(addrs)
	assert.Equal(t, []Address{{}, lo, hi}, addrs)

	set := map[Address]bool{lo: true}
	dup, err := BytesToAddress(lo.Bytes())
	require.NoError(t, err)
	assert.True(t, set[dup])
}

func TestAddressJSON(t *testing.T) {
	addr := MustParseAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	out, err := json.Marshal(struct{ A Address }{addr})
	require.NoError(t, err)
	assert.Equal(t, `{"A":"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"}`, string(out))

	var back struct{ A Address }
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, addr, back.A)
}
