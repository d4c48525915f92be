package hash

import (
	"fmt"

	"github.com/taurusgroup/threshold-vrf/internal/params"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

// Domain separation prefixes, absorbed as a 32 byte big-endian word.
const (
	PrefixHashToCurve  = 1
	PrefixHashToScalar = 2
)

// ErrFieldHashExhausted is returned if no digest below p is found within the iteration bound.
var ErrFieldHashExhausted = fmt.Errorf("hash: no field element after %d iterations", params.MaxFieldHashIterations)

// Prefix returns the 32 byte big-endian encoding of a domain prefix.
func Prefix(prefix byte) []byte {
	out := make([]byte, params.BytesScalar)
	out[params.BytesScalar-1] = prefix
	return out
}

// HashPoints returns keccak256(P₀.x ‖ P₀.y ‖ … ‖ Pₖ.x ‖ Pₖ.y) mod n.
func HashPoints(points ...*curve.Point) (*curve.Scalar, error) {
	h := New()
	if err := h.WriteAny(points); err != nil {
		return nil, err
	}
	return h.Scalar(), nil
}

// HashPointsPrefix returns the contract challenge
//
//	keccak256(2 ‖ H ‖ pk ‖ γ ‖ V ‖ address) mod n
//
// The order and widths match the on-chain verifier.
func HashPointsPrefix(hashPoint, pk, gamma, v *curve.Point, address Address) (*curve.Scalar, error) {
	h := New()
	if err := h.WriteAny(Prefix(PrefixHashToScalar), hashPoint, pk, gamma, v, address); err != nil {
		return nil, err
	}
	return h.Scalar(), nil
}

// PointScalar returns keccak256(P.x ‖ P.y) mod n, the VRF output derived from γ.
func PointScalar(p *curve.Point) (*curve.Scalar, error) {
	return HashPoints(p)
}

// FieldHash maps data to 𝔽ₚ.
//
// The digest keccak256(data) is used if it is below p; otherwise the digest
// itself is hashed again until one is.
func FieldHash(data []byte) (*curve.Field, error) {
	return fieldFromDigest(Sum(data))
}

func fieldFromDigest(digest [DigestSize]byte) (*curve.Field, error) {
	f := curve.NewField()
	for i := 0; i < params.MaxFieldHashIterations; i++ {
		if f.SetDigest(&digest) {
			return f, nil
		}
		digest = Sum(digest[:])
	}
	return nil, ErrFieldHashExhausted
}

var errIdentityAddress = fmt.Errorf("hash: identity has no address: %w", curve.ErrInvalidPoint)
