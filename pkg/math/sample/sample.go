// Package sample draws scalars from a caller supplied source of randomness.
//
// Every loop is bounded: a source that keeps producing out of range values is
// reported with ErrMaxIterations instead of spinning forever.
package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/taurusgroup/threshold-vrf/internal/params"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

const maxIterations = params.MaxNonceIterations

var ErrMaxIterations = fmt.Errorf("sample: failed to generate after %d iterations", maxIterations)

func readBits(rand io.Reader, buf []byte) error {
	_, err := io.ReadFull(rand, buf)
	if err != nil {
		return fmt.Errorf("sample: read randomness: %w", err)
	}
	return nil
}

// ModN samples an element of ℤₙ by rejection.
func ModN(rand io.Reader, n *saferith.Modulus) (*saferith.Nat, error) {
	out := new(saferith.Nat)
	buf := make([]byte, (n.BitLen()+7)/8)
	for i := 0; i < maxIterations; i++ {
		if err := readBits(rand, buf); err != nil {
			return nil, err
		}
		out.SetBytes(buf)
		_, _, lt := out.CmpMod(n)
		if lt == 1 {
			return out, nil
		}
	}
	return nil, ErrMaxIterations
}

// Nonce samples k with 0 < k < n.
//
// 32 bytes are read at a time and rejected while they encode 0 or a value ≥ n.
// The range check runs in constant time.
func Nonce(rand io.Reader) (*curve.Scalar, error) {
	var buf [params.BytesScalar]byte
	n := curve.Order()
	k := new(saferith.Nat)
	for i := 0; i < maxIterations; i++ {
		if err := readBits(rand, buf[:]); err != nil {
			return nil, err
		}
		k.SetBytes(buf[:])
		_, _, lt := k.CmpMod(n)
		if lt&^k.EqZero() == 1 {
			return curve.NewScalar().SetDigest(&buf), nil
		}
	}
	return nil, ErrMaxIterations
}

// Scalar returns a new non-zero *curve.Scalar by reading bytes from rand.
func Scalar(rand io.Reader) (*curve.Scalar, error) {
	return Nonce(rand)
}

// ScalarPointPair returns a new non-zero *curve.Scalar/*curve.Point tuple (x,X) by reading bytes from rand.
// The tuple satisfies X = x⋅G where G is the base point of the curve.
func ScalarPointPair(rand io.Reader) (*curve.Scalar, *curve.Point, error) {
	s, err := Scalar(rand)
	if err != nil {
		return nil, nil, err
	}
	p := curve.NewIdentityPoint().ScalarBaseMult(s)
	return s, p, nil
}
