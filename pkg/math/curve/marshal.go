package curve

import (
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/taurusgroup/threshold-vrf/internal/params"
)

// MarshalBinary implements encoding.BinaryMarshaler.
func (s *Scalar) MarshalBinary() ([]byte, error) {
	data := s.s.Bytes()
	return data[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// data must be exactly 32 bytes encoding an integer below n.
func (s *Scalar) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesScalar {
		return fmt.Errorf("curve.Scalar.Unmarshal: %w: length %d", ErrMalformedEncoding, len(data))
	}
	var scalar secp256k1.ModNScalar
	if scalar.SetByteSlice(data) {
		return fmt.Errorf("curve.Scalar.Unmarshal: %w: scalar was >= n", ErrMalformedEncoding)
	}
	s.s.Set(&scalar)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (s Scalar) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Hex())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Scalar) UnmarshalJSON(bytes []byte) error {
	data, err := unmarshalHex(bytes)
	if err != nil {
		return fmt.Errorf("curve.Scalar: %w", err)
	}
	return s.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (f *Field) MarshalBinary() ([]byte, error) {
	data := f.Bytes()
	return data[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// data must be exactly 32 bytes encoding an integer below p.
func (f *Field) UnmarshalBinary(data []byte) error {
	if len(data) != params.BytesField {
		return fmt.Errorf("curve.Field.Unmarshal: %w: length %d", ErrMalformedEncoding, len(data))
	}
	var buf [params.BytesField]byte
	copy(buf[:], data)
	var v Field
	if !v.SetDigest(&buf) {
		return fmt.Errorf("curve.Field.Unmarshal: %w: element was >= p", ErrMalformedEncoding)
	}
	f.Set(&v)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.Hex())
}

// UnmarshalJSON implements json.Unmarshaler.
func (f *Field) UnmarshalJSON(bytes []byte) error {
	data, err := unmarshalHex(bytes)
	if err != nil {
		return fmt.Errorf("curve.Field: %w", err)
	}
	return f.UnmarshalBinary(data)
}

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The encoding is the 65 byte uncompressed SEC1 form 0x04 ‖ x ‖ y.
func (v *Point) MarshalBinary() ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("curve.Point.MarshalBinary: %w: point is nil", ErrInvalidPoint)
	}
	xy, err := v.Bytes()
	if err != nil {
		return nil, err
	}
	data := make([]byte, params.BytesSEC1)
	data[0] = secp256k1.PubKeyFormatUncompressed
	copy(data[1:], xy[:])
	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Both the 65 byte uncompressed and the 33 byte compressed SEC1 forms are accepted.
func (v *Point) UnmarshalBinary(data []byte) error {
	var x, y Field
	switch {
	case len(data) == params.BytesSEC1 && data[0] == secp256k1.PubKeyFormatUncompressed:
		if err := x.UnmarshalBinary(data[1 : 1+params.BytesField]); err != nil {
			return fmt.Errorf("curve.Point.Unmarshal: %w", err)
		}
		if err := y.UnmarshalBinary(data[1+params.BytesField:]); err != nil {
			return fmt.Errorf("curve.Point.Unmarshal: %w", err)
		}
	case len(data) == 1+params.BytesField &&
		(data[0] == secp256k1.PubKeyFormatCompressedEven || data[0] == secp256k1.PubKeyFormatCompressedOdd):
		if err := x.UnmarshalBinary(data[1:]); err != nil {
			return fmt.Errorf("curve.Point.Unmarshal: %w", err)
		}
		if !secp256k1.DecompressY(&x.f, data[0] == secp256k1.PubKeyFormatCompressedOdd, &y.f) {
			return fmt.Errorf("curve.Point.Unmarshal: %w: x coordinate not on curve", ErrInvalidPoint)
		}
		y.f.Normalize()
	default:
		return fmt.Errorf("curve.Point.Unmarshal: %w: length %d", ErrMalformedEncoding, len(data))
	}
	if _, err := v.SetCoordinates(&x, &y); err != nil {
		return fmt.Errorf("curve.Point.Unmarshal: %w", err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (v Point) MarshalJSON() ([]byte, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return json.Marshal(hex.EncodeToString(data))
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *Point) UnmarshalJSON(bytes []byte) error {
	data, err := unmarshalHex(bytes)
	if err != nil {
		return fmt.Errorf("curve.Point: %w", err)
	}
	return v.UnmarshalBinary(data)
}

func unmarshalHex(bytes []byte) ([]byte, error) {
	var s string
	if err := json.Unmarshal(bytes, &s); err != nil {
		return nil, err
	}
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEncoding, err)
	}
	return data, nil
}
