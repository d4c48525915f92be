// Package test holds deterministic randomness for tests.
package test

import (
	"bytes"
	"encoding/hex"
	"io"

	"github.com/zeebo/blake3"
)

// Reader returns an endless deterministic stream keyed by label.
//
// Tests that need reproducible but unstructured randomness use this instead of crypto/rand.
func Reader(label string) io.Reader {
	prg := blake3.New()
	_, _ = prg.Write([]byte("threshold-vrf test reader"))
	_, _ = prg.Write([]byte(label))
	return prg.Digest()
}

// FixedReader returns a reader producing exactly the concatenation of the hex encoded chunks.
//
// It panics on invalid hex, which is a bug in the test itself.
func FixedReader(chunks ...string) io.Reader {
	var buf bytes.Buffer
	for _, c := range chunks {
		buf.Write(MustHex(c))
	}
	return &buf
}

// MustHex decodes s or panics.
func MustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
