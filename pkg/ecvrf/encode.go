package ecvrf

import (
	"errors"
	"fmt"

	"github.com/taurusgroup/threshold-vrf/internal/params"
	"github.com/taurusgroup/threshold-vrf/pkg/hash"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

// EncodeToCurve returns H = α⋅G + pk, the point used by the ordinary proof.
//
// H is a public linear function of α and pk. It is kept for compatibility with
// existing ordinary proofs; the contract proof uses HashToCurvePrefix.
func EncodeToCurve(alpha *curve.Scalar, pk *curve.Point) (*curve.Point, error) {
	h := curve.NewIdentityPoint().ScalarBaseMult(alpha)
	h.Add(h, pk)
	if h.IsIdentity() {
		return nil, fmt.Errorf("ecvrf: encode to curve: %w: α⋅G = -pk", ErrInvalidPoint)
	}
	return h, nil
}

// HashToCurvePrefix derives H from α and pk by try-and-increment.
//
// The first candidate x is FieldHash(1 ‖ pk.x ‖ pk.y ‖ α); each following one is
// FieldHash of the previous x. y is the even square root of x³ + 7, and the
// first candidate on the curve is returned.
func HashToCurvePrefix(alpha *curve.Scalar, pk *curve.Point) (*curve.Point, error) {
	pkBytes, err := pk.Bytes()
	if err != nil {
		return nil, err
	}
	alphaBytes := alpha.Bytes()

	input := make([]byte, 0, params.BytesScalar+params.BytesPoint+params.BytesScalar)
	input = append(input, hash.Prefix(hash.PrefixHashToCurve)...)
	input = append(input, pkBytes[:]...)
	input = append(input, alphaBytes[:]...)

	x, err := hash.FieldHash(input)
	for i := 0; i < params.MaxHashToCurveIterations; i++ {
		if err != nil {
			return nil, hashToCurveError(err)
		}
		if p, ok := candidate(x); ok {
			return p, nil
		}
		xBytes := x.Bytes()
		x, err = hash.FieldHash(xBytes[:])
	}
	return nil, fmt.Errorf("%w: after %d iterations", ErrHashToCurveExhausted, params.MaxHashToCurveIterations)
}

// candidate returns (x, y) with y the even root of x³ + 7, if x³ + 7 is a square.
func candidate(x *curve.Field) (*curve.Point, bool) {
	var rhs, y curve.Field
	rhs.Square(x)
	rhs.Multiply(&rhs, x)
	rhs.Add(&rhs, new(curve.Field).SetUInt(7))

	// a non-residue yields √(-rhs), which the curve check below rejects
	y.Sqrt(&rhs)
	y.ConditionalNegate(y.IsOdd())

	p, err := curve.NewIdentityPoint().SetCoordinates(x, &y)
	if err != nil {
		return nil, false
	}
	return p, true
}

func hashToCurveError(err error) error {
	if errors.Is(err, hash.ErrFieldHashExhausted) {
		return fmt.Errorf("%w: %w", ErrHashToCurveExhausted, err)
	}
	return err
}
