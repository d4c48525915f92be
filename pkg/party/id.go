package party

import (
	"encoding/binary"
	"errors"
	"strconv"

	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

// ByteSize is the number of bytes required to store an ID.
const ByteSize = 2

// MAX is the maximum integer that can represent a party.
const MAX = (1 << (ByteSize * 8)) - 1

// ID is the evaluation point of a participant's key share.
//
// 0 is reserved for the shared secret itself and is never a valid ID.
type ID uint16

// ErrZeroID is returned when 0 is used as a participant ID.
var ErrZeroID = errors.New("party: ID 0 is reserved")

// Scalar returns the corresponding curve.Scalar.
func (id ID) Scalar() *curve.Scalar {
	return curve.NewScalarUInt32(uint32(id))
}

// Bytes returns a []byte slice of length party.ByteSize.
func (id ID) Bytes() []byte {
	bytes := make([]byte, ByteSize)
	binary.BigEndian.PutUint16(bytes, uint16(id))
	return bytes
}

// String returns a base 10 representation of ID.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Validate returns ErrZeroID for the reserved ID 0.
func (id ID) Validate() error {
	if id == 0 {
		return ErrZeroID
	}
	return nil
}

// IDFromString reads a base 10 string and attempts to generate an ID from it.
func IDFromString(str string) (ID, error) {
	p, err := strconv.ParseUint(str, 10, 16)
	if err != nil {
		return 0, err
	}
	id := ID(p)
	return id, id.Validate()
}
