package crypto

import (
	"encoding/hex"
	"testing"
)

func TestKeccak256Vectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
	}
	for _, tt := range tests {
		if got := hex.EncodeToString(Keccak256([]byte(tt.in))); got != tt.want {
			t.Fatalf("keccak256(%q) mismatch\nwant: %s\n got: %s", tt.in, tt.want, got)
		}
	}
}

func TestKeccak256MultiPart(t *testing.T) {
	whole := Keccak256([]byte("hello world"))
	parts := Keccak256([]byte("hello"), []byte(" "), []byte("world"))
	if hex.EncodeToString(whole) != hex.EncodeToString(parts) {
		t.Fatalf("multi-part digest differs: %x vs %x", whole, parts)
	}
}
