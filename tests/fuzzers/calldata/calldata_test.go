package calldata

import (
	"testing"

	"github.com/tos-network/glsdk/abi/calldata"
	"github.com/tos-network/glsdk/abi/txdata"
)

func FuzzCalldata(f *testing.F) {
	call, err := txdata.EncodeCall("transfer", []calldata.Value{calldata.NewInt(100)}, nil, true)
	if err != nil {
		f.Fatal(err)
	}
	f.Add([]byte{0})
	f.Add(append([]byte{0}, calldata.MustEncode(calldata.Map{"a": calldata.Array{calldata.Null{}, calldata.Bool(true)}})...))
	f.Add([]byte{0, 0x81, 0x80, 0x00})
	f.Add(append([]byte{1}, call...))
	f.Add([]byte{2, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})
	f.Fuzz(func(t *testing.T, data []byte) {
		Fuzz(data)
	})
}

func TestFuzzCorpus(t *testing.T) {
	inputs := [][]byte{
		nil,
		{0, 0xa1, 0x06},
		{0, 0x07},
		{1, 0xc0},
		{2},
		{2, 'p', 'i', 'n', 'g', 0x00, 0xff, 0x10, 0x20, 0x30, 0x40, 0x50},
	}
	for _, in := range inputs {
		Fuzz(in)
	}
}
