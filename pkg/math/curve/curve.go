// Package curve binds the secp256k1 field, scalar and point arithmetic of
// github.com/decred/dcrd/dcrec/secp256k1/v4 to the value types used by the VRF.
//
// All types follow the destination receiver convention: v.Add(p, q) sets v = p + q
// and returns v. Field and Scalar values are always kept in canonical form, so
// Equal and Bytes can be used directly on any result.
package curve

import (
	"errors"

	"github.com/cronokirby/saferith"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	// ErrMalformedEncoding is returned when a fixed width value has the wrong
	// length or is out of range.
	ErrMalformedEncoding = errors.New("curve: malformed encoding")
	// ErrInvalidPoint is returned when a point does not satisfy y² = x³ + 7.
	ErrInvalidPoint = errors.New("curve: invalid point")
)

// Name of the curve.
const Name = "secp256k1"

var (
	groupOrder *saferith.Modulus
	fieldOrder *saferith.Modulus

	// curveB is the constant b in y² = x³ + b.
	curveB Field
)

func init() {
	params := secp256k1.Params()
	groupOrder = saferith.ModulusFromBytes(params.N.Bytes())
	fieldOrder = saferith.ModulusFromBytes(params.P.Bytes())
	curveB.SetUInt(7)
}

// Order returns n, the order of the group generated by G.
func Order() *saferith.Modulus {
	return groupOrder
}

// FieldOrder returns p, the prime of the base field.
func FieldOrder() *saferith.Modulus {
	return fieldOrder
}
