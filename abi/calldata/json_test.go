package calldata

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	v, err := ParseJSON([]byte(`{"method":"transfer","args":[100,-1,null,true,"x",123456789012345678901234567890],"kwargs":{}}`))
	require.NoError(t, err)

	huge, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	want := Map{
		"method": Str("transfer"),
		"args":   Array{NewInt(100), NewInt(-1), Null{}, Bool(true), Str("x"), NewBigInt(huge)},
		"kwargs": Map{},
	}
	require.True(t, Equal(want, v), "got %s", v)
}

func TestParseJSONRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{"float", `[1.5]`, ErrUnsupportedValueType},
		{"exponent", `1e3`, ErrUnsupportedValueType},
		{"malformed", `{"a":`, ErrInvalidJSON},
		{"two documents", `1 2`, ErrInvalidJSON},
		{"empty", ``, ErrInvalidJSON},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tt.input))
			require.ErrorIs(t, err, tt.err)
		})
	}
}
