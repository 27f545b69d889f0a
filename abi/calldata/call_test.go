package calldata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCallObject(t *testing.T) {
	tests := []struct {
		name   string
		method string
		args   []Value
		kwargs map[string]Value
		want   string
	}{
		{"method only", "get", nil, nil, `{"method":"get"}`},
		{"constructor", "", []Value{NewInt(1)}, nil, `{"args":[1]}`},
		{"empty args dropped", "f", []Value{}, map[string]Value{}, `{"method":"f"}`},
		{"all parts", "f", []Value{Str("a")}, map[string]Value{"k": Bool(true)}, `{"args":["a"],"kwargs":{"k":true},"method":"f"}`},
		{"nothing", "", nil, nil, `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ToText(NewCallObject(tt.method, tt.args, tt.kwargs)))
		})
	}
}

func TestNewReadable(t *testing.T) {
	enc := MustEncode(Array{NewInt(1), Str("a")})
	r, err := NewReadable(enc)
	require.NoError(t, err)
	require.Equal(t, `[1,"a"]`, r.Readable)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	require.JSONEq(t, `{"raw":[21,9,12,97],"readable":"[1,\"a\"]"}`, string(out))

	_, err = NewReadable([]byte{0x07})
	require.ErrorIs(t, err, ErrUnknownTypeTag)
}
