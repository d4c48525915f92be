package ecvrf

import (
	"errors"

	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

var (
	// ErrMalformedEncoding is returned when a fixed width value has the wrong length or is out of range.
	ErrMalformedEncoding = curve.ErrMalformedEncoding
	// ErrInvalidPoint is returned when an input point is not on the curve.
	ErrInvalidPoint = curve.ErrInvalidPoint
	// ErrNonceRangeExhausted means the randomness source kept producing nonces outside [1, n).
	ErrNonceRangeExhausted = errors.New("ecvrf: nonce sampling exhausted")
	// ErrHashToCurveExhausted means try-and-increment found no point within its iteration bound.
	ErrHashToCurveExhausted = errors.New("ecvrf: hash to curve exhausted")
	// ErrZeroSecret is returned for a secret key equal to 0.
	ErrZeroSecret = errors.New("ecvrf: secret key is zero")
)
