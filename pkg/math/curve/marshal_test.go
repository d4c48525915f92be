package curve

import (
	"encoding/json"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marshalTester struct {
	S *Scalar
	F *Field
	P *Point
}

func TestMarshal(t *testing.T) {
	s := marshalTester{
		S: NewScalarUInt32(0xED),
		F: new(Field).SetUInt(0xBEEF),
		P: NewBasePoint(),
	}
	data, err := cbor.Marshal(s)
	require.NoError(t, err)
	var s2 marshalTester
	require.NoError(t, cbor.Unmarshal(data, &s2))
	assert.True(t, s.S.Equal(s2.S))
	assert.True(t, s.F.Equal(s2.F))
	assert.True(t, s.P.Equal(s2.P))

	data, err = json.Marshal(s)
	require.NoError(t, err)
	var s3 marshalTester
	require.NoError(t, json.Unmarshal(data, &s3))
	assert.True(t, s.P.Equal(s3.P))
	assert.True(t, s.S.Equal(s3.S))
}

func TestScalar_UnmarshalBinary(t *testing.T) {
	var s Scalar
	assert.ErrorIs(t, s.UnmarshalBinary(make([]byte, 31)), ErrMalformedEncoding)
	assert.ErrorIs(t, s.UnmarshalBinary(make([]byte, 33)), ErrMalformedEncoding)

	n := NewScalar().Negate(NewScalarUInt32(1)).Bytes()
	n[31]++ // n itself
	assert.ErrorIs(t, s.UnmarshalBinary(n[:]), ErrMalformedEncoding)
	n[31]--
	require.NoError(t, s.UnmarshalBinary(n[:]))
	assert.Equal(t, nMinusOne, s.Hex())
}

func TestPoint_UnmarshalBinary(t *testing.T) {
	g := NewBasePoint()
	data, err := g.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, 65)
	assert.EqualValues(t, 4, data[0])

	var p Point
	require.NoError(t, p.UnmarshalBinary(data))
	assert.True(t, p.Equal(g))

	compressed := append([]byte{2 + byte(g.Y().Bytes()[31]&1)}, data[1:33]...)
	var c Point
	require.NoError(t, c.UnmarshalBinary(compressed))
	assert.True(t, c.Equal(g))

	assert.ErrorIs(t, p.UnmarshalBinary(data[:64]), ErrMalformedEncoding)

	bad := append([]byte(nil), data...)
	bad[64] ^= 1
	assert.ErrorIs(t, p.UnmarshalBinary(bad), ErrInvalidPoint)

	_, err = NewIdentityPoint().MarshalBinary()
	assert.ErrorIs(t, err, ErrInvalidPoint)
}
