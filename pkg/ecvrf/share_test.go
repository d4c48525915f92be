package ecvrf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/threshold-vrf/internal/test"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

func TestProveShare(t *testing.T) {
	alpha := vectorAlphaScalar()
	group, err := NewSecretKey(curve.NewScalarUInt32(5))
	require.NoError(t, err)
	share, err := NewSecretKey(curve.NewScalarUInt32(3))
	require.NoError(t, err)

	proof, err := ProveShare(test.Reader("share"), share, group.Public(), alpha)
	require.NoError(t, err)

	ok, err := share.Public().VerifyShare(group.Public(), alpha, proof)
	require.NoError(t, err)
	assert.True(t, ok)

	// γ = 3⋅H(α, group)
	h, err := EncodeToCurve(alpha, group.Public().Point())
	require.NoError(t, err)
	assert.True(t, curve.NewIdentityPoint().ScalarMult(curve.NewScalarUInt32(3), h).Equal(proof.Gamma))

	// the share proof is not an ordinary proof under the share key
	ok, err = share.Public().Verify(alpha, proof)
	require.NoError(t, err)
	assert.False(t, ok)

	// nor a share proof for another group
	ok, err = share.Public().VerifyShare(share.Public(), alpha, proof)
	require.NoError(t, err)
	assert.False(t, ok)

	// with the share as its own group, it is an ordinary proof
	own, err := ProveShare(test.Reader("own"), share, share.Public(), alpha)
	require.NoError(t, err)
	ok, err = own.Verify(alpha)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = ProveShare(test.Reader("nil"), share, nil, alpha)
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}
