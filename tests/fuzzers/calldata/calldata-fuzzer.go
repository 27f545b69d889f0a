package calldata

import (
	"bytes"
	"fmt"

	fuzz "github.com/google/gofuzz"
	"github.com/tos-network/glsdk/abi/calldata"
	"github.com/tos-network/glsdk/abi/txdata"
)

// Fuzz implements a go-fuzz fuzzer method. The first byte selects between
// decoding raw calldata, decoding a transaction data envelope and building
// an envelope from fuzzed arguments.
func Fuzz(input []byte) int {
	if len(input) == 0 {
		return 0
	}
	switch input[0] % 3 {
	case 0:
		return fuzzDecode(input[1:])
	case 1:
		return fuzzEnvelope(input[1:])
	default:
		return fuzzCall(input[1:])
	}
}

// fuzzDecode checks that every accepted blob re-encodes to a canonical form
// that decodes to the same value.
func fuzzDecode(data []byte) int {
	v, err := calldata.Decode(data)
	if err != nil {
		return 0
	}
	enc, err := calldata.Encode(v)
	if err != nil {
		panic(fmt.Sprintf("decoded value does not encode: %v", err))
	}
	v2, err := calldata.Decode(enc)
	if err != nil {
		panic(fmt.Sprintf("canonical encoding does not decode: %v", err))
	}
	if !calldata.Equal(v, v2) {
		panic(fmt.Sprintf("value mismatch: %v != %v", v, v2))
	}
	enc2, _ := calldata.Encode(v2)
	if !bytes.Equal(enc, enc2) {
		panic("canonical encoding is not stable")
	}
	return 1
}

func fuzzEnvelope(data []byte) int {
	d, err := txdata.Decode(data)
	if err != nil {
		return 0
	}
	if d.Type != txdata.TypeCall && d.Type != txdata.TypeDeploy {
		panic(fmt.Sprintf("unexpected envelope type %q", d.Type))
	}
	if d.Type == txdata.TypeCall && d.Code != nil {
		panic("call envelope carries code")
	}
	return 1
}

func fuzzCall(data []byte) int {
	var (
		fuzzer     = fuzz.NewFromGoFuzz(data).NilChance(0)
		method     string
		ints       []int64
		strs       []string
		blob       []byte
		leaderOnly bool
	)
	fuzzer.Fuzz(&method)
	fuzzer.Fuzz(&ints)
	fuzzer.Fuzz(&strs)
	fuzzer.Fuzz(&blob)
	fuzzer.Fuzz(&leaderOnly)

	var args []calldata.Value
	for _, i := range ints {
		args = append(args, calldata.NewInt(i))
	}
	for _, s := range strs {
		args = append(args, calldata.Str(s))
	}
	args = append(args, calldata.Bytes(blob))

	enc, err := txdata.EncodeCall(method, args, nil, leaderOnly)
	if err != nil {
		// Fuzzed strings may not be valid UTF-8.
		return 0
	}
	d, err := txdata.Decode(enc)
	if err != nil {
		panic(fmt.Sprintf("encoded envelope does not decode: %v", err))
	}
	if d.LeaderOnly != leaderOnly {
		panic("leader-only flag mismatch")
	}
	want := calldata.NewCallObject(method, args, nil)
	if !calldata.Equal(want, d.Calldata) {
		panic(fmt.Sprintf("calldata mismatch: %v != %v", want, d.Calldata))
	}
	return 1
}
