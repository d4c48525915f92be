// Package ecvrf implements a verifiable random function over secp256k1.
//
// Two proof variants share the same Schnorr style relation
//
//	γ = sk⋅H,  c = hash(…, k⋅G, k⋅H),  s = k - c⋅sk
//
// Proof is checked off-chain. ContractProof hashes to the curve by
// try-and-increment and carries the witnesses an EVM verifier needs to avoid
// point serialization and field inversion.
package ecvrf

import (
	"errors"
	"fmt"
	"io"

	"github.com/taurusgroup/threshold-vrf/pkg/hash"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
	"github.com/taurusgroup/threshold-vrf/pkg/math/sample"
)

// Proof is an ordinary VRF proof. Y is the VRF output.
type Proof struct {
	PublicKey *PublicKey
	Gamma     *curve.Point
	C, S, Y   *curve.Scalar
}

// Display is the serialized form of a Proof: 64 character lower case hex, no prefix.
type Display struct {
	Gamma [2]string `json:"gamma"`
	C     string    `json:"c"`
	S     string    `json:"s"`
}

// AlphaFromMessage returns keccak256(msg) mod n, the α for an arbitrary message.
func AlphaFromMessage(msg []byte) *curve.Scalar {
	digest := hash.Sum(msg)
	return curve.NewScalar().SetDigest(&digest)
}

// Prove computes the ordinary proof of α under sk, drawing the nonce from rand.
func Prove(rand io.Reader, sk *SecretKey, alpha *curve.Scalar) (*Proof, error) {
	return prove(rand, sk, sk.Public(), alpha)
}

// prove hashes α to the curve with encodeKey, which is sk's own public key
// except for key shares.
func prove(rand io.Reader, sk *SecretKey, encodeKey *PublicKey, alpha *curve.Scalar) (*Proof, error) {
	x, err := sk.scalar()
	if err != nil {
		return nil, err
	}
	defer x.Zeroize()
	pk := sk.Public().Point()

	// 1. H = α⋅G + encodeKey
	h, err := EncodeToCurve(alpha, encodeKey.Point())
	if err != nil {
		return nil, err
	}

	// 2. γ = sk⋅H
	gamma := curve.NewIdentityPoint().ScalarMult(x, h)

	// 3. k ∈ [1, n)
	k, err := nonce(rand)
	if err != nil {
		return nil, err
	}
	defer k.Zeroize()

	// 4. U = k⋅G, V = k⋅H
	u := curve.NewIdentityPoint().ScalarBaseMult(k)
	v := curve.NewIdentityPoint().ScalarMult(k, h)

	// 5. c = hash(G, H, pk, γ, U, V)
	c, err := hash.HashPoints(curve.NewBasePoint(), h, pk, gamma, u, v)
	if err != nil {
		return nil, err
	}

	// 6. s = k - c⋅sk
	s := curve.NewScalar().Multiply(c, x)
	s.Subtract(k, s)

	// 7. y = hash(γ)
	y, err := hash.PointScalar(gamma)
	if err != nil {
		return nil, err
	}

	return &Proof{
		PublicKey: sk.Public(),
		Gamma:     gamma,
		C:         c,
		S:         s,
		Y:         y,
	}, nil
}

// Verify checks the proof against α.
//
// A false result with a nil error is an ordinary rejection. The error is only
// set for structurally invalid input, such as a public key or γ off the curve.
func (p *Proof) Verify(alpha *curve.Scalar) (bool, error) {
	return p.verify(p.PublicKey, alpha)
}

func (p *Proof) verify(encodeKey *PublicKey, alpha *curve.Scalar) (bool, error) {
	if err := p.validate(); err != nil {
		return false, err
	}
	if encodeKey == nil || !encodeKey.p.IsOnCurve() {
		return false, fmt.Errorf("ecvrf: encoding key: %w", ErrInvalidPoint)
	}
	pk := p.PublicKey.Point()

	h, err := EncodeToCurve(alpha, encodeKey.Point())
	if err != nil {
		return false, nil
	}

	// U = c⋅pk + s⋅G
	u := curve.NewIdentityPoint().DoubleScalarMult(p.C, pk, p.S)
	// V = c⋅γ + s⋅H
	v := curve.NewIdentityPoint().ScalarMult(p.C, p.Gamma)
	v.Add(v, curve.NewIdentityPoint().ScalarMult(p.S, h))
	if u.IsIdentity() || v.IsIdentity() {
		return false, nil
	}

	c, err := hash.HashPoints(curve.NewBasePoint(), h, pk, p.Gamma, u, v)
	if err != nil {
		return false, err
	}
	y, err := hash.PointScalar(p.Gamma)
	if err != nil {
		return false, err
	}
	return c.Equal(p.C) && y.Equal(p.Y), nil
}

// Verify checks that proof was produced by pk for α.
func (pk *PublicKey) Verify(alpha *curve.Scalar, proof *Proof) (bool, error) {
	if proof == nil || proof.PublicKey == nil {
		return false, fmt.Errorf("ecvrf: %w: missing public key", ErrMalformedEncoding)
	}
	if !pk.Equal(proof.PublicKey) {
		return false, nil
	}
	return proof.Verify(alpha)
}

// Display returns the serialized form of p.
func (p *Proof) Display() Display {
	x, y := p.Gamma.XY()
	return Display{
		Gamma: [2]string{x.Hex(), y.Hex()},
		C:     p.C.Hex(),
		S:     p.S.Hex(),
	}
}

func (p *Proof) validate() error {
	if p == nil || p.PublicKey == nil || p.Gamma == nil || p.C == nil || p.S == nil || p.Y == nil {
		return fmt.Errorf("ecvrf: %w: incomplete proof", ErrMalformedEncoding)
	}
	if !p.PublicKey.p.IsOnCurve() {
		return fmt.Errorf("ecvrf: public key: %w", ErrInvalidPoint)
	}
	if !p.Gamma.IsOnCurve() {
		return fmt.Errorf("ecvrf: gamma: %w", ErrInvalidPoint)
	}
	return nil
}

func nonce(rand io.Reader) (*curve.Scalar, error) {
	k, err := sample.Nonce(rand)
	if errors.Is(err, sample.ErrMaxIterations) {
		return nil, fmt.Errorf("%w: %w", ErrNonceRangeExhausted, err)
	}
	return k, err
}
