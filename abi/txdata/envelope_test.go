package txdata

import (
	"encoding/hex"
	"errors"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tos-network/glsdk/abi/calldata"
	"github.com/tos-network/glsdk/common"
)

const transferCalldata = "16" + "0461726773" + "15a10618" + "0000000000000000000000000000000000000000" +
	"066d6574686f64" + "447472616e73666572"

func transferArgs() []calldata.Value {
	return []calldata.Value{calldata.NewInt(100), calldata.NewAddress(common.Address{})}
}

func TestEncodeCall(t *testing.T) {
	enc, err := EncodeCall("transfer", transferArgs(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, "f0ae"+transferCalldata+"80", hex.EncodeToString(enc))

	enc, err = EncodeCall("transfer", transferArgs(), nil, true)
	require.NoError(t, err)
	assert.Equal(t, "f0ae"+transferCalldata+"01", hex.EncodeToString(enc))
}

func TestDecodeCall(t *testing.T) {
	enc, err := EncodeCall("transfer", transferArgs(), nil, true)
	require.NoError(t, err)

	d, err := Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, TypeCall, d.Type)
	assert.Nil(t, d.Code)
	assert.True(t, d.LeaderOnly)
	assert.Equal(t, `{"args":[100,addr#0000000000000000000000000000000000000000],"method":"transfer"}`, d.Calldata.String())
}

func TestDeployRoundTrip(t *testing.T) {
	code := []byte{0x60, 0x00, 0x60, 0x01}
	kwargs := map[string]calldata.Value{"owner": calldata.Str("me")}
	enc, err := EncodeDeploy(code, []calldata.Value{calldata.Str("x")}, kwargs, false)
	require.NoError(t, err)

	d, err := Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, TypeDeploy, d.Type)
	assert.Equal(t, code, d.Code)
	assert.False(t, d.LeaderOnly)

	want := calldata.Map{
		"args":   calldata.Array{calldata.Str("x")},
		"kwargs": calldata.Map{"owner": calldata.Str("me")},
	}
	assert.True(t, calldata.Equal(want, d.Calldata), "got %v", d.Calldata)
}

func TestDecodeEmptyCalldata(t *testing.T) {
	enc, err := rlp.EncodeToBytes([]interface{}{[]byte{}, []byte{}})
	require.NoError(t, err)

	d, err := Decode(enc)
	require.NoError(t, err)
	assert.Equal(t, TypeCall, d.Type)
	assert.Nil(t, d.Calldata)
	assert.False(t, d.LeaderOnly)
}

func TestLeaderOnlyFlag(t *testing.T) {
	tests := []struct {
		flag []byte
		want bool
	}{
		{nil, false},
		{[]byte{0x01}, true},
		{[]byte{0x02}, false},
		{[]byte{0x00, 0x01}, false},
	}
	cd := calldata.MustEncode(calldata.Null{})
	for _, tt := range tests {
		enc, err := rlp.EncodeToBytes([][]byte{cd, tt.flag})
		require.NoError(t, err)
		d, err := Decode(enc)
		require.NoError(t, err)
		assert.Equal(t, tt.want, d.LeaderOnly, "flag %x", tt.flag)
	}
}

func TestDecodeErrors(t *testing.T) {
	mustRLP := func(v interface{}) []byte {
		b, err := rlp.EncodeToBytes(v)
		require.NoError(t, err)
		return b
	}
	tests := []struct {
		name  string
		input []byte
		want  error
	}{
		{"empty", nil, ErrInvalidEnvelope},
		{"string", mustRLP([]byte("abc")), ErrInvalidEnvelope},
		{"one element", mustRLP([][]byte{{0x00}}), ErrInvalidEnvelope},
		{"four elements", mustRLP([][]byte{{}, {}, {}, {}}), ErrInvalidEnvelope},
		{"nested list", mustRLP([]interface{}{[]interface{}{}, []byte{}}), ErrInvalidEnvelope},
		{"bad calldata", mustRLP([][]byte{{0x07}, {}}), calldata.ErrUnknownTypeTag},
		{"trailing calldata", mustRLP([][]byte{{0x00, 0x00}, {}}), calldata.ErrTrailingBytes},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}

func TestDecodeHex(t *testing.T) {
	enc, err := EncodeCall("ping", nil, nil, false)
	require.NoError(t, err)

	d, err := DecodeHex(hexutil.Encode(enc))
	require.NoError(t, err)
	assert.Equal(t, `{"method":"ping"}`, d.Calldata.String())

	_, err = DecodeHex(hex.EncodeToString(enc))
	assert.ErrorIs(t, err, ErrInvalidEnvelope)
}

func TestTryDecodeHex(t *testing.T) {
	assert.Nil(t, TryDecodeHex(""))
	assert.Nil(t, TryDecodeHex("0x"))
	assert.Nil(t, TryDecodeHex("0xzz"))
	assert.Nil(t, TryDecodeHex("0xc0"))

	enc, err := EncodeCall("ping", nil, nil, true)
	require.NoError(t, err)
	d := TryDecodeHex(hexutil.Encode(enc))
	require.NotNil(t, d)
	assert.True(t, d.LeaderOnly)
}
