// Package threshold combines VRF outputs of several key share holders into one value.
//
// Each participant proves α under its share skᵢ = f(i) of a secret sk = f(0),
// giving γᵢ = skᵢ⋅H. For a quorum S with Lagrange coefficients lᵢ at 0,
//
//	Σ lᵢ⋅γᵢ = (Σ lᵢ⋅skᵢ)⋅H = sk⋅H
//
// so the combined output is the one the full key would have produced.
// The coefficients are trusted: no check is made that they match a quorum.
package threshold

import (
	"errors"
	"fmt"

	"github.com/taurusgroup/threshold-vrf/pkg/ecvrf"
	"github.com/taurusgroup/threshold-vrf/pkg/hash"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
	"github.com/taurusgroup/threshold-vrf/pkg/party"
)

var (
	// ErrNoShares is returned when Combine is given nothing to combine.
	ErrNoShares = errors.New("threshold: no shares")
	// ErrIdentity is returned when the weighted sum is the point at infinity.
	ErrIdentity = errors.New("threshold: combined gamma is the identity")
	// ErrProofRejected is returned when a participant's proof does not verify.
	ErrProofRejected = errors.New("threshold: proof rejected")
)

// Share is one participant's γ together with its weight.
type Share struct {
	ID          party.ID
	Gamma       *curve.Point
	Coefficient *curve.Scalar
}

// Output is the combined VRF output.
type Output struct {
	Gamma *curve.Point
	// Value = keccak256(Gamma.x ‖ Gamma.y) mod n
	Value *curve.Scalar
}

// Combine returns Σ wᵢ⋅γᵢ and its hash.
//
// A zero weight removes its term.
func Combine(shares []Share) (*Output, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	sum := curve.NewIdentityPoint()
	term := curve.NewIdentityPoint()
	for _, share := range shares {
		if share.Gamma == nil || share.Coefficient == nil {
			return nil, fmt.Errorf("threshold: party %v: %w: incomplete share", share.ID, ecvrf.ErrMalformedEncoding)
		}
		if !share.Gamma.IsOnCurve() {
			return nil, fmt.Errorf("threshold: party %v: %w", share.ID, ecvrf.ErrInvalidPoint)
		}
		term.ScalarMult(share.Coefficient, share.Gamma)
		sum.Add(sum, term)
	}
	if sum.IsIdentity() {
		return nil, ErrIdentity
	}
	value, err := hash.PointScalar(sum)
	if err != nil {
		return nil, err
	}
	return &Output{Gamma: sum, Value: value}, nil
}

// CombineOrdered is Combine over parallel slices of γᵢ and coefficients.
func CombineOrdered(gammas []*curve.Point, coefficients []*curve.Scalar) (*Output, error) {
	if len(gammas) != len(coefficients) {
		return nil, fmt.Errorf("threshold: %d gammas for %d coefficients", len(gammas), len(coefficients))
	}
	shares := make([]Share, len(gammas))
	for i := range gammas {
		shares[i] = Share{ID: party.ID(i + 1), Gamma: gammas[i], Coefficient: coefficients[i]}
	}
	return Combine(shares)
}
