package ecvrf

import (
	"fmt"
	"io"

	"github.com/taurusgroup/threshold-vrf/internal/params"
	"github.com/taurusgroup/threshold-vrf/pkg/hash"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

// ContractProof is a proof laid out for an on-chain verifier.
//
// U = k⋅G travels as its 20 byte address, which the verifier checks with an
// ecrecover style reconstruction. V = c⋅γ + s⋅H is given as the two summands
// together with the inverse of the projective Z of their sum.
type ContractProof struct {
	Proof
	Alpha          *curve.Scalar
	WitnessAddress hash.Address
	WitnessGamma   *curve.Point
	WitnessHash    *curve.Point
	InverseZ       *curve.Field
}

// ContractWords is the number of 32 byte words in the on-chain argument layout.
const ContractWords = 14

// ProveContract computes the contract proof of α under sk, drawing the nonce from rand.
func ProveContract(rand io.Reader, sk *SecretKey, alpha *curve.Scalar) (*ContractProof, error) {
	x, err := sk.scalar()
	if err != nil {
		return nil, err
	}
	defer x.Zeroize()
	pk := sk.Public().Point()

	// 1. H by try-and-increment
	h, err := HashToCurvePrefix(alpha, pk)
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

	// 4. U = k⋅G is only sent as its address
	u := curve.NewIdentityPoint().ScalarBaseMult(k)
	address, err := hash.PointAddress(u)
	if err != nil {
		return nil, err
	}

	// 5. V = k⋅H
	v := curve.NewIdentityPoint().ScalarMult(k, h)

	// 6. c = hash(2, H, pk, γ, V, address)
	c, err := hash.HashPointsPrefix(h, pk, gamma, v, address)
	if err != nil {
		return nil, err
	}

	// 7. s = k - c⋅sk
	s := curve.NewScalar().Multiply(c, x)
	s.Subtract(k, s)

	// 8. V = c⋅γ + s⋅H with the inversion left to the prover
	witnessGamma := curve.NewIdentityPoint().ScalarMult(c, gamma)
	witnessHash := curve.NewIdentityPoint().ScalarMult(s, h)
	sum := curve.ProjectiveAdd(witnessGamma, witnessHash)
	if sum.Z.IsZero() {
		return nil, fmt.Errorf("ecvrf: %w: c⋅γ and s⋅H coincide", ErrInvalidPoint)
	}

	y, err := hash.PointScalar(gamma)
	if err != nil {
		return nil, err
	}

	return &ContractProof{
		Proof: Proof{
			PublicKey: sk.Public(),
			Gamma:     gamma,
			C:         c,
			S:         s,
			Y:         y,
		},
		Alpha:          curve.NewScalar().Set(alpha),
		WitnessAddress: address,
		WitnessGamma:   witnessGamma,
		WitnessHash:    witnessHash,
		InverseZ:       sum.InverseZ(),
	}, nil
}

// Verify checks the contract proof against its own α, the way the on-chain verifier does.
//
// As for Proof.Verify, a rejection is (false, nil).
func (p *ContractProof) Verify() (bool, error) {
	if err := p.validate(); err != nil {
		return false, err
	}
	pk := p.PublicKey.Point()

	h, err := HashToCurvePrefix(p.Alpha, pk)
	if err != nil {
		return false, err
	}

	// address(c⋅pk + s⋅G) = address(k⋅G)
	u := curve.NewIdentityPoint().DoubleScalarMult(p.C, pk, p.S)
	if u.IsIdentity() {
		return false, nil
	}
	address, err := hash.PointAddress(u)
	if err != nil {
		return false, err
	}
	if address != p.WitnessAddress {
		return false, nil
	}

	// the witnesses must be the claimed multiples
	if !curve.NewIdentityPoint().ScalarMult(p.C, p.Gamma).Equal(p.WitnessGamma) {
		return false, nil
	}
	if !curve.NewIdentityPoint().ScalarMult(p.S, h).Equal(p.WitnessHash) {
		return false, nil
	}

	// V from the projective sum and the supplied Z⁻¹
	sum := curve.ProjectiveAdd(p.WitnessGamma, p.WitnessHash)
	v, err := sum.Affine(p.InverseZ)
	if err != nil {
		return false, nil
	}

	c, err := hash.HashPointsPrefix(h, pk, p.Gamma, v, address)
	if err != nil {
		return false, err
	}
	y, err := hash.PointScalar(p.Gamma)
	if err != nil {
		return false, err
	}
	return c.Equal(p.C) && y.Equal(p.Y), nil
}

// VerifyContract checks that proof was produced by pk for α.
func (pk *PublicKey) VerifyContract(alpha *curve.Scalar, proof *ContractProof) (bool, error) {
	if proof == nil || proof.PublicKey == nil || proof.Alpha == nil {
		return false, fmt.Errorf("ecvrf: %w: incomplete contract proof", ErrMalformedEncoding)
	}
	if !pk.Equal(proof.PublicKey) || !alpha.Equal(proof.Alpha) {
		return false, nil
	}
	return proof.Verify()
}

// Words returns the proof in the argument order of the on-chain verifier:
//
//	pk.x, pk.y, γ.x, γ.y, c, s, y, α, address, cγ.x, cγ.y, sH.x, sH.y, Z⁻¹
//
// The address is left padded with zeros.
func (p *ContractProof) Words() ([ContractWords][params.BytesScalar]byte, error) {
	var out [ContractWords][params.BytesScalar]byte
	if err := p.validate(); err != nil {
		return out, err
	}
	points := []*curve.Point{p.PublicKey.Point(), p.Gamma}
	i := 0
	for _, pt := range points {
		x, y := pt.XY()
		out[i], out[i+1] = x.Bytes(), y.Bytes()
		i += 2
	}
	out[i], out[i+1], out[i+2], out[i+3] = p.C.Bytes(), p.S.Bytes(), p.Y.Bytes(), p.Alpha.Bytes()
	i += 4
	out[i] = p.WitnessAddress.Word()
	i++
	for _, pt := range []*curve.Point{p.WitnessGamma, p.WitnessHash} {
		x, y := pt.XY()
		out[i], out[i+1] = x.Bytes(), y.Bytes()
		i += 2
	}
	out[i] = p.InverseZ.Bytes()
	return out, nil
}

// ContractDisplay is the hexadecimal form of a ContractProof, field by field.
type ContractDisplay struct {
	PublicKey      [2]string `json:"pk"`
	Gamma          [2]string `json:"gamma"`
	C              string    `json:"c"`
	S              string    `json:"s"`
	Y              string    `json:"y"`
	Alpha          string    `json:"alpha"`
	WitnessAddress string    `json:"witness_address"`
	WitnessGamma   [2]string `json:"witness_gamma"`
	WitnessHash    [2]string `json:"witness_hash"`
	InverseZ       string    `json:"inverse_z"`
}

// Display returns the hexadecimal form of p.
func (p *ContractProof) Display() ContractDisplay {
	pair := func(pt *curve.Point) [2]string {
		x, y := pt.XY()
		return [2]string{x.Hex(), y.Hex()}
	}
	return ContractDisplay{
		PublicKey:      pair(p.PublicKey.Point()),
		Gamma:          pair(p.Gamma),
		C:              p.C.Hex(),
		S:              p.S.Hex(),
		Y:              p.Y.Hex(),
		Alpha:          p.Alpha.Hex(),
		WitnessAddress: p.WitnessAddress.Hex(),
		WitnessGamma:   pair(p.WitnessGamma),
		WitnessHash:    pair(p.WitnessHash),
		InverseZ:       p.InverseZ.Hex(),
	}
}

func (p *ContractProof) validate() error {
	if p == nil {
		return fmt.Errorf("ecvrf: %w: incomplete contract proof", ErrMalformedEncoding)
	}
	if err := p.Proof.validate(); err != nil {
		return err
	}
	if p.Alpha == nil || p.WitnessGamma == nil || p.WitnessHash == nil || p.InverseZ == nil {
		return fmt.Errorf("ecvrf: %w: incomplete contract proof", ErrMalformedEncoding)
	}
	if !p.WitnessGamma.IsOnCurve() || !p.WitnessHash.IsOnCurve() {
		return fmt.Errorf("ecvrf: witness: %w", ErrInvalidPoint)
	}
	return nil
}
