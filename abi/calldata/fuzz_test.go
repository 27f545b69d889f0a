package calldata

import (
	"bytes"
	"testing"

	"github.com/tos-network/glsdk/common"
)

func FuzzDecodeNoPanic(f *testing.F) {
	f.Add(MustEncode(Map{
		"method": Str("transfer"),
		"args":   Array{NewInt(100), NewAddress(common.Address{})},
	}))
	f.Add(MustEncode(Array{Bytes{1, 2}, NewInt(-5), Null{}, Bool(true)}))
	f.Add([]byte{0x16, 0x01, 'b', 0x09, 0x01, 'a', 0x11})
	f.Add([]byte{0x80})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		v, err := Decode(data)
		if err != nil {
			return
		}
		// Anything accepted must re-encode to a decodable, equal tree. The
		// bytes only match when the input used minimal varints.
		enc, err := Encode(v)
		if err != nil {
			t.Fatalf("re-encode failed: %v", err)
		}
		again, err := Decode(enc)
		if err != nil {
			t.Fatalf("decode of re-encoded value failed: %v", err)
		}
		if !Equal(v, again) {
			t.Fatalf("value changed across re-encode: %s vs %s", v, again)
		}
		if enc2 := MustEncode(again); !bytes.Equal(enc, enc2) {
			t.Fatalf("encoding not stable: %x vs %x", enc, enc2)
		}
		_ = ToText(v)
	})
}
