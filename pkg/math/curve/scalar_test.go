package curve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// nMinusOne is n - 1 in hexadecimal.
const nMinusOne = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364140"

func TestScalar_Arithmetic(t *testing.T) {
	a := NewScalarUInt32(7)
	b := NewScalarUInt32(5)

	assert.True(t, NewScalar().Add(a, b).Equal(NewScalarUInt32(12)))
	assert.True(t, NewScalar().Subtract(a, b).Equal(NewScalarUInt32(2)))
	assert.True(t, NewScalar().Multiply(a, b).Equal(NewScalarUInt32(35)))
	assert.True(t, NewScalar().MultiplyAdd(a, b, a).Equal(NewScalarUInt32(42)))

	minusTwo := NewScalar().Subtract(b, a)
	assert.Equal(t, "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd036413f", minusTwo.Hex())
	assert.Equal(t, nMinusOne, NewScalar().Negate(NewScalarUInt32(1)).Hex())

	inv := NewScalar().Invert(a)
	assert.True(t, NewScalar().Multiply(inv, a).Equal(NewScalarUInt32(1)))
	assert.True(t, NewScalar().Invert(NewScalar()).IsZero())
}

func TestScalar_SetDigest(t *testing.T) {
	var digest [32]byte
	for i := range digest {
		digest[i] = 0xff
	}
	// 2²⁵⁶ - 1 mod n
	s := NewScalar().SetDigest(&digest)
	assert.Equal(t, "000000000000000000000000000000014551231950b75fc4402da1732fc9bebe", s.Hex())
}

func TestScalar_Zeroize(t *testing.T) {
	s := NewScalarUInt32(42)
	s.Zeroize()
	assert.True(t, s.IsZero())
}
