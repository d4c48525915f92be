package threshold

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/threshold-vrf/pkg/ecvrf"
	"github.com/taurusgroup/threshold-vrf/pkg/hash"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

func multiple(k uint32) *curve.Point {
	return curve.NewIdentityPoint().ScalarBaseMult(curve.NewScalarUInt32(k))
}

func TestCombine(t *testing.T) {
	t.Run("zero weight", func(t *testing.T) {
		out, err := CombineOrdered(
			[]*curve.Point{multiple(1), multiple(2)},
			[]*curve.Scalar{curve.NewScalarUInt32(3), curve.NewScalar()},
		)
		require.NoError(t, err)
		assert.True(t, out.Gamma.Equal(multiple(3)))
		assert.Equal(t, "75bf18e34f9add02a2fe5a146813eb9362372eef6200f3b1dbc3f819671cba69", out.Value.Hex())
	})

	t.Run("negative weight", func(t *testing.T) {
		// 4⋅G - 6⋅2G = -8⋅G
		minusSix := curve.NewScalar().Negate(curve.NewScalarUInt32(6))
		out, err := CombineOrdered(
			[]*curve.Point{multiple(1), multiple(2)},
			[]*curve.Scalar{curve.NewScalarUInt32(4), minusSix},
		)
		require.NoError(t, err)
		assert.True(t, out.Gamma.Equal(curve.NewIdentityPoint().Negate(multiple(8))))
		assert.Equal(t, "417e15f2a5a822454ba4780a6023eb78b679daf4f8e14e096e97774f75c5140e", out.Value.Hex())
	})

	t.Run("unit weight", func(t *testing.T) {
		// [(γ₁, 1), (γ₂, w)] hashes γ₁ + w⋅γ₂
		gamma1, gamma2 := multiple(3), multiple(7)
		w := curve.NewScalarUInt32(5)
		out, err := CombineOrdered(
			[]*curve.Point{gamma1, gamma2},
			[]*curve.Scalar{curve.NewScalarUInt32(1), w},
		)
		require.NoError(t, err)

		expected := curve.NewIdentityPoint().ScalarMult(w, gamma2)
		expected.Add(expected, gamma1)
		assert.True(t, out.Gamma.Equal(expected))
		assert.True(t, out.Gamma.Equal(multiple(38)))
		value, err := hash.PointScalar(expected)
		require.NoError(t, err)
		assert.True(t, value.Equal(out.Value))
	})

	t.Run("order independent", func(t *testing.T) {
		a := []Share{
			{ID: 1, Gamma: multiple(5), Coefficient: curve.NewScalarUInt32(7)},
			{ID: 2, Gamma: multiple(11), Coefficient: curve.NewScalarUInt32(13)},
		}
		b := []Share{a[1], a[0]}
		outA, err := Combine(a)
		require.NoError(t, err)
		outB, err := Combine(b)
		require.NoError(t, err)
		assert.True(t, outA.Value.Equal(outB.Value))
		assert.True(t, outA.Gamma.Equal(multiple(5*7+11*13)))
	})
}

func TestCombine_Errors(t *testing.T) {
	_, err := Combine(nil)
	assert.ErrorIs(t, err, ErrNoShares)

	_, err = CombineOrdered([]*curve.Point{multiple(1)}, nil)
	assert.Error(t, err)

	_, err = Combine([]Share{{ID: 1, Gamma: curve.NewIdentityPoint(), Coefficient: curve.NewScalarUInt32(1)}})
	assert.ErrorIs(t, err, ecvrf.ErrInvalidPoint)

	_, err = Combine([]Share{{ID: 1, Gamma: multiple(1)}})
	assert.ErrorIs(t, err, ecvrf.ErrMalformedEncoding)

	// G + (-1)⋅G
	minusOne := curve.NewScalar().Negate(curve.NewScalarUInt32(1))
	_, err = Combine([]Share{
		{ID: 1, Gamma: multiple(1), Coefficient: curve.NewScalarUInt32(1)},
		{ID: 2, Gamma: multiple(1), Coefficient: minusOne},
	})
	assert.ErrorIs(t, err, ErrIdentity)
}
