package ecvrf

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/taurusgroup/threshold-vrf/pkg/hash"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

type proofMarshal struct {
	PublicKey *curve.Point
	Gamma     *curve.Point
	C, S, Y   *curve.Scalar
}

type contractProofMarshal struct {
	Proof          proofMarshal
	Alpha          *curve.Scalar
	WitnessAddress []byte
	WitnessGamma   *curve.Point
	WitnessHash    *curve.Point
	InverseZ       *curve.Field
}

func (p *Proof) marshal() (*proofMarshal, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &proofMarshal{
		PublicKey: p.PublicKey.Point(),
		Gamma:     p.Gamma,
		C:         p.C,
		S:         p.S,
		Y:         p.Y,
	}, nil
}

func (pm *proofMarshal) unmarshal(p *Proof) error {
	if pm.PublicKey == nil {
		return fmt.Errorf("ecvrf: %w: missing public key", ErrMalformedEncoding)
	}
	pk, err := NewPublicKey(pm.PublicKey)
	if err != nil {
		return err
	}
	*p = Proof{PublicKey: pk, Gamma: pm.Gamma, C: pm.C, S: pm.S, Y: pm.Y}
	return p.validate()
}

// MarshalBinary implements encoding.BinaryMarshaler using CBOR.
func (p *Proof) MarshalBinary() ([]byte, error) {
	pm, err := p.marshal()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(pm)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *Proof) UnmarshalBinary(data []byte) error {
	var pm proofMarshal
	if err := cbor.Unmarshal(data, &pm); err != nil {
		return fmt.Errorf("ecvrf.Proof: %w", err)
	}
	return pm.unmarshal(p)
}

// MarshalBinary implements encoding.BinaryMarshaler using CBOR.
func (p *ContractProof) MarshalBinary() ([]byte, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	pm, err := p.Proof.marshal()
	if err != nil {
		return nil, err
	}
	return cbor.Marshal(&contractProofMarshal{
		Proof:          *pm,
		Alpha:          p.Alpha,
		WitnessAddress: p.WitnessAddress[:],
		WitnessGamma:   p.WitnessGamma,
		WitnessHash:    p.WitnessHash,
		InverseZ:       p.InverseZ,
	})
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (p *ContractProof) UnmarshalBinary(data []byte) error {
	var cm contractProofMarshal
	if err := cbor.Unmarshal(data, &cm); err != nil {
		return fmt.Errorf("ecvrf.ContractProof: %w", err)
	}
	var out ContractProof
	if err := cm.Proof.unmarshal(&out.Proof); err != nil {
		return err
	}
	address, err := hash.AddressFromBytes(cm.WitnessAddress)
	if err != nil {
		return err
	}
	out.Alpha = cm.Alpha
	out.WitnessAddress = address
	out.WitnessGamma = cm.WitnessGamma
	out.WitnessHash = cm.WitnessHash
	out.InverseZ = cm.InverseZ
	if err := out.validate(); err != nil {
		return err
	}
	*p = out
	return nil
}
