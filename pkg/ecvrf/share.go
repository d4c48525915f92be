package ecvrf

import (
	"fmt"
	"io"

	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

// ProveShare proves α under a share sk of the secret behind group.
//
// H is derived from the group key instead of the share's own key, so every share
// holder computes γᵢ = skᵢ⋅H over the same H, and a Lagrange combination of the γᵢ
// equals the γ of an ordinary proof under the group key.
// The challenge still binds the share's public key.
func ProveShare(rand io.Reader, sk *SecretKey, group *PublicKey, alpha *curve.Scalar) (*Proof, error) {
	if group == nil {
		return nil, fmt.Errorf("ecvrf: %w: missing group key", ErrMalformedEncoding)
	}
	return prove(rand, sk, group, alpha)
}

// VerifyShare checks that proof was produced for α by the share with public key pk.
func (pk *PublicKey) VerifyShare(group *PublicKey, alpha *curve.Scalar, proof *Proof) (bool, error) {
	if proof == nil || proof.PublicKey == nil {
		return false, fmt.Errorf("ecvrf: %w: missing public key", ErrMalformedEncoding)
	}
	if !pk.Equal(proof.PublicKey) {
		return false, nil
	}
	return proof.verify(group, alpha)
}
