package hash

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/taurusgroup/threshold-vrf/internal/params"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

// Address is the 20 byte EVM style address of a point:
// the last 20 bytes of keccak256(x ‖ y).
type Address [params.BytesAddress]byte

// PointAddress returns the Address of p.
func PointAddress(p *curve.Point) (Address, error) {
	var a Address
	if p.IsIdentity() {
		return a, errIdentityAddress
	}
	h := New()
	if err := h.WriteAny(p); err != nil {
		return a, err
	}
	digest := h.Sum()
	copy(a[:], digest[DigestSize-params.BytesAddress:])
	return a, nil
}

// Word returns the address left padded with zeros to 32 bytes.
func (a Address) Word() [params.BytesScalar]byte {
	var out [params.BytesScalar]byte
	copy(out[params.BytesScalar-params.BytesAddress:], a[:])
	return out
}

// Scalar returns the address as a Scalar, as passed to the on-chain verifier.
func (a Address) Scalar() *curve.Scalar {
	w := a.Word()
	return curve.NewScalar().SetDigest(&w)
}

// Hex returns the lower case hexadecimal encoding of a, without prefix.
func (a Address) Hex() string {
	return hex.EncodeToString(a[:])
}

// WriteTo implements io.WriterTo.
func (a Address) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(a[:])
	return int64(n), err
}

// AddressFromBytes reads an Address from exactly 20 bytes, or from a 32 byte
// word whose first 12 bytes are zero.
func AddressFromBytes(data []byte) (Address, error) {
	var a Address
	switch len(data) {
	case params.BytesAddress:
		copy(a[:], data)
	case params.BytesScalar:
		for _, b := range data[:params.BytesScalar-params.BytesAddress] {
			if b != 0 {
				return a, fmt.Errorf("hash.Address: %w: padding is not zero", curve.ErrMalformedEncoding)
			}
		}
		copy(a[:], data[params.BytesScalar-params.BytesAddress:])
	default:
		return a, fmt.Errorf("hash.Address: %w: length %d", curve.ErrMalformedEncoding, len(data))
	}
	return a, nil
}
