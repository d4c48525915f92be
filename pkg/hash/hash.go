// Package hash wraps keccak-256 for the VRF's domain separated hashing.
//
// The construction is the one an EVM verifier can reproduce with the keccak256
// opcode: values are absorbed as raw fixed width big-endian words, points as
// their affine x ‖ y, with no length framing.
package hash

import (
	"errors"
	"fmt"
	"hash"
	"io"

	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
	"golang.org/x/crypto/sha3"
)

// DigestSize is the output size of keccak-256.
const DigestSize = 32

// Hash is a wrapper for the legacy keccak-256 hash which extends its functionality
// to work with curve values.
type Hash struct {
	h hash.Hash
}

// New creates an empty keccak-256 Hash.
func New() *Hash {
	return &Hash{h: sha3.NewLegacyKeccak256()}
}

// Write writes data to the hash state.
// Implements io.Writer
func (hash *Hash) Write(data []byte) (int, error) {
	// the underlying hash function never returns an error
	return hash.h.Write(data)
}

// WriteAny takes many different data types and writes them to the hash state.
func (hash *Hash) WriteAny(data ...interface{}) error {
	for _, d := range data {
		switch t := d.(type) {
		case []byte:
			_, _ = hash.h.Write(t)
		case *curve.Point:
			if t == nil {
				return errors.New("hash.Hash: write *curve.Point: nil")
			}
			if _, err := t.WriteTo(hash.h); err != nil {
				return fmt.Errorf("hash.Hash: write *curve.Point: %w", err)
			}
		case []*curve.Point:
			for _, p := range t {
				if err := hash.WriteAny(p); err != nil {
					return err
				}
			}
		case *curve.Scalar:
			b := t.Bytes()
			_, _ = hash.h.Write(b[:])
		case *curve.Field:
			b := t.Bytes()
			_, _ = hash.h.Write(b[:])
		case Address:
			_, _ = hash.h.Write(t[:])
		case io.WriterTo:
			if _, err := t.WriteTo(hash.h); err != nil {
				return fmt.Errorf("hash.Hash: write io.WriterTo: %w", err)
			}
		default:
			return fmt.Errorf("hash.Hash: unsupported type %T", d)
		}
	}
	return nil
}

// Sum returns the keccak-256 digest of the data written so far.
func (hash *Hash) Sum() [DigestSize]byte {
	var out [DigestSize]byte
	hash.h.Sum(out[:0])
	return out
}

// Scalar returns the digest reduced mod n.
func (hash *Hash) Scalar() *curve.Scalar {
	digest := hash.Sum()
	return curve.NewScalar().SetDigest(&digest)
}

// Sum returns keccak256(data₀ ‖ … ‖ dataₖ).
func Sum(data ...[]byte) [DigestSize]byte {
	h := New()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	return h.Sum()
}
