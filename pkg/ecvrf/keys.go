package ecvrf

import (
	"fmt"
	"io"

	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
	"github.com/taurusgroup/threshold-vrf/pkg/math/sample"
)

// SecretKey is a VRF secret scalar together with its public key.
//
// The owner must call Zeroize once the key is no longer needed.
type SecretKey struct {
	s      curve.Scalar
	public PublicKey
}

// PublicKey is the point sk⋅G.
type PublicKey struct {
	p curve.Point
}

// GenerateKey samples a new non-zero secret key from rand.
func GenerateKey(rand io.Reader) (*SecretKey, error) {
	s, err := sample.Scalar(rand)
	if err != nil {
		return nil, err
	}
	defer s.Zeroize()
	return NewSecretKey(s)
}

// NewSecretKey copies s into a new SecretKey.
func NewSecretKey(s *curve.Scalar) (*SecretKey, error) {
	if s.IsZero() {
		return nil, ErrZeroSecret
	}
	var sk SecretKey
	sk.s.Set(s)
	sk.public.p.ScalarBaseMult(&sk.s)
	return &sk, nil
}

// Public returns the public key of sk.
func (sk *SecretKey) Public() *PublicKey {
	return &sk.public
}

// Zeroize overwrites the secret scalar.
func (sk *SecretKey) Zeroize() {
	sk.s.Zeroize()
}

// scalar returns a working copy of the secret, to be zeroized by the caller.
func (sk *SecretKey) scalar() (*curve.Scalar, error) {
	if sk == nil || sk.s.IsZero() {
		return nil, ErrZeroSecret
	}
	return curve.NewScalar().Set(&sk.s), nil
}

// MarshalBinary returns the 32 byte big-endian secret.
func (sk *SecretKey) MarshalBinary() ([]byte, error) {
	return sk.s.MarshalBinary()
}

// UnmarshalBinary reads a 32 byte big-endian secret and recomputes the public key.
func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	var s curve.Scalar
	defer s.Zeroize()
	if err := s.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("ecvrf.SecretKey: %w", err)
	}
	if s.IsZero() {
		return ErrZeroSecret
	}
	sk.s.Set(&s)
	sk.public.p.ScalarBaseMult(&sk.s)
	return nil
}

// NewPublicKey checks that p is on the curve and wraps it.
func NewPublicKey(p *curve.Point) (*PublicKey, error) {
	if !p.IsOnCurve() {
		return nil, ErrInvalidPoint
	}
	var pk PublicKey
	pk.p.Set(p)
	return &pk, nil
}

// Point returns a copy of the public key point.
func (pk *PublicKey) Point() *curve.Point {
	return curve.NewIdentityPoint().Set(&pk.p)
}

// Equal returns true if both keys are the same point.
func (pk *PublicKey) Equal(other *PublicKey) bool {
	return pk.p.Equal(&other.p)
}

// String returns the affine coordinates in hexadecimal.
func (pk *PublicKey) String() string {
	return pk.p.String()
}

// MarshalBinary returns the 65 byte uncompressed encoding 0x04 ‖ x ‖ y.
func (pk *PublicKey) MarshalBinary() ([]byte, error) {
	return pk.p.MarshalBinary()
}

// UnmarshalBinary reads an uncompressed or compressed SEC1 point.
func (pk *PublicKey) UnmarshalBinary(data []byte) error {
	if err := pk.p.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("ecvrf.PublicKey: %w", err)
	}
	return nil
}
