package calldata

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tos-network/glsdk/common"
)

func TestToText(t *testing.T) {
	var addr common.Address
	addr[0], addr[19] = 0xab, 0x01
	huge, _ := new(big.Int).SetString("-123456789012345678901234567890", 10)

	tests := []struct {
		v    Value
		want string
	}{
		{Null{}, "null"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{NewInt(0), "0"},
		{Int{}, "0"},
		{NewInt(-17), "-17"},
		{NewBigInt(huge), "-123456789012345678901234567890"},
		{Bytes{}, "b#"},
		{Bytes{0xde, 0xad, 0xbe, 0xef}, "b#deadbeef"},
		{Str("plain"), `"plain"`},
		{NewAddress(addr), "addr#ab00000000000000000000000000000000000001"},
		{Array{}, "[]"},
		{Array{NewInt(1), Str("x"), Null{}}, `[1,"x",null]`},
		{Map{}, "{}"},
		{Map{"z": Bool(true), "a": Array{}}, `{"a":[],"z":true}`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToText(tt.v))
		assert.Equal(t, tt.want, tt.v.String())
	}
}

func TestToTextEscaping(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`quote"back\`, `"quote\"back\\"`},
		{"line\nfeed\rtab\tbs\bff\f", `"line\nfeed\rtab\tbs\bff\f"`},
		{"\x00\x1f\x7f", `"\u0000\u001f\u007f"`},
		{"<tag>&/", `"<tag>&/"`},
		{"é", `"\u00e9"`},
		{"✓", `"\u2713"`},
		{"😀", `"\ud83d\ude00"`},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ToText(Str(tt.in)), "input %q", tt.in)
	}
	assert.Equal(t, `{"k\u00e9y":1}`, ToText(Map{"kéy": NewInt(1)}))
}
