package ecvrf

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taurusgroup/threshold-vrf/internal/test"
	"github.com/taurusgroup/threshold-vrf/pkg/hash"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

const (
	contractGammaX  = "f812846d51959c6e1ed0f4468f278c241171e2288dc0fe96ea5ade013bad2c3d"
	contractGammaY  = "1e0c85bb7cbb70989edad6b95b1101b348610f765df8671ef8cf0a3c98fa828e"
	contractC       = "70fd585c5174499a29c5093c0dc2070a9c07a1367fa3249d14223f1ac187b9d1"
	contractS       = "30b56b789481bd7dff7542205fbc8885751a920dd5c352eb85887cb21c67452f"
	contractY       = "a4d0f834568518371ae9ea479b0f5b5cc05f6db6b59a3ec65d7fb66635a6922a"
	contractAddress = "3b6eb2ee90b7f235a72455a16090a1d7b37a5869"
	contractInvZ    = "1ac7da46ce93611b9ae7efb5005ae4c28e6e3de8a1d688882a8b9f73d68df1df"
	contractCGammaX = "23143f53ea1f8554df1f9b4b0b72bedae46ace2742ed053c7c052e76822aa664"
	contractCGammaY = "7519379182c3a4cf5df80b732618679c6f18e3de449846925164980e9291fa82"
	contractSHashX  = "3729cd065af217038ef0d18246ea9a376dd1c127dac01d7291b5f0589c70c827"
	contractSHashY  = "a43a2a37c9072b7ec48c686ed0c2545c46cf84c4444a29e7af4db4bde9391710"
)

func vectorContractProof(t *testing.T) *ContractProof {
	t.Helper()
	proof, err := ProveContract(test.FixedReader(vectorNonce), unitKey(t), vectorAlphaScalar())
	require.NoError(t, err)
	return proof
}

func TestHashToCurvePrefix(t *testing.T) {
	g := curve.NewBasePoint()

	// found by the first candidate
	h, err := HashToCurvePrefix(vectorAlphaScalar(), g)
	require.NoError(t, err)
	assert.Equal(t, contractGammaX, h.X().Hex())
	assert.Equal(t, contractGammaY, h.Y().Hex())
	assert.False(t, h.Y().IsOdd())

	// α = 4 needs three candidates
	h, err = HashToCurvePrefix(curve.NewScalarUInt32(4), g)
	require.NoError(t, err)
	assert.Equal(t, "41ecc5b28543c363491cbf005c3c0fc002bc8027210fd9046035b89aa0366b43", h.X().Hex())
	assert.Equal(t, "3faa5eae137485581d94ba435951e7e7e5b1bf5b4c8fd678b48bc70cc2a50670", h.Y().Hex())

	_, err = HashToCurvePrefix(curve.NewScalarUInt32(4), curve.NewIdentityPoint())
	assert.ErrorIs(t, err, ErrInvalidPoint)
}

func TestHashToCurvePrefix_OnCurve(t *testing.T) {
	rand := test.Reader("hash to curve")
	for i := 0; i < 64; i++ {
		sk, err := GenerateKey(rand)
		require.NoError(t, err)
		h, err := HashToCurvePrefix(curve.NewScalarUInt32(uint32(i)), sk.Public().Point())
		require.NoError(t, err)

		// y² = x³ + 7
		x, y := h.XY()
		var lhs, rhs curve.Field
		lhs.Square(y)
		rhs.Square(x)
		rhs.Multiply(&rhs, x)
		rhs.Add(&rhs, new(curve.Field).SetUInt(7))
		assert.True(t, lhs.Equal(&rhs))
		assert.False(t, y.IsOdd())
	}
}

func TestProveContract_KnownAnswer(t *testing.T) {
	proof := vectorContractProof(t)

	x, y := proof.Gamma.XY()
	assert.Equal(t, contractGammaX, x.Hex())
	assert.Equal(t, contractGammaY, y.Hex())
	assert.Equal(t, contractC, proof.C.Hex())
	assert.Equal(t, contractS, proof.S.Hex())
	assert.Equal(t, contractY, proof.Y.Hex())
	assert.Equal(t, vectorAlpha, proof.Alpha.Hex())
	assert.Equal(t, contractAddress, proof.WitnessAddress.Hex())
	assert.Equal(t, contractInvZ, proof.InverseZ.Hex())
	assert.Equal(t, contractCGammaX, proof.WitnessGamma.X().Hex())
	assert.Equal(t, contractCGammaY, proof.WitnessGamma.Y().Hex())
	assert.Equal(t, contractSHashX, proof.WitnessHash.X().Hex())
	assert.Equal(t, contractSHashY, proof.WitnessHash.Y().Hex())

	// the witness address is the address of k⋅G
	k, err := hex.DecodeString(vectorNonce)
	require.NoError(t, err)
	var kb [32]byte
	copy(kb[:], k)
	u := curve.NewIdentityPoint().ScalarBaseMult(curve.NewScalar().SetDigest(&kb))
	addr, err := hash.PointAddress(u)
	require.NoError(t, err)
	assert.Equal(t, addr, proof.WitnessAddress)

	ok, err := proof.Verify()
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProveContract_Completeness(t *testing.T) {
	rand := test.Reader("contract completeness")
	for i := 0; i < 8; i++ {
		sk, err := GenerateKey(rand)
		require.NoError(t, err)
		alpha := AlphaFromMessage([]byte{byte(i)})

		proof, err := ProveContract(rand, sk, alpha)
		require.NoError(t, err)
		ok, err := sk.Public().VerifyContract(alpha, proof)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = sk.Public().VerifyContract(AlphaFromMessage([]byte{byte(i), 1}), proof)
		require.NoError(t, err)
		assert.False(t, ok)
	}
}

func TestContractProof_Tampering(t *testing.T) {
	proof := vectorContractProof(t)
	one := new(curve.Field).SetUInt(1)

	for name, tamper := range map[string]func(p *ContractProof){
		"c":     func(p *ContractProof) { p.C = flipBit(p.C, 3) },
		"s":     func(p *ContractProof) { p.S = flipBit(p.S, 200) },
		"y":     func(p *ContractProof) { p.Y = flipBit(p.Y, 0) },
		"alpha": func(p *ContractProof) { p.Alpha = flipBit(p.Alpha, 9) },
		"address": func(p *ContractProof) {
			p.WitnessAddress[19] ^= 1
		},
		"witness gamma": func(p *ContractProof) {
			p.WitnessGamma = curve.NewIdentityPoint().Add(p.WitnessGamma, curve.NewBasePoint())
		},
		"witness hash": func(p *ContractProof) {
			p.WitnessHash = curve.NewIdentityPoint().Negate(p.WitnessHash)
		},
		"inverse z": func(p *ContractProof) {
			p.InverseZ = new(curve.Field).Add(p.InverseZ, one)
		},
		"gamma": func(p *ContractProof) {
			p.Gamma = curve.NewIdentityPoint().Add(p.Gamma, curve.NewBasePoint())
		},
	} {
		t.Run(name, func(t *testing.T) {
			tampered := *proof
			tamper(&tampered)
			ok, err := tampered.Verify()
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestContractProof_InvalidPoints(t *testing.T) {
	proof := vectorContractProof(t)

	tampered := *proof
	tampered.WitnessHash = curve.NewIdentityPoint()
	ok, err := tampered.Verify()
	assert.ErrorIs(t, err, ErrInvalidPoint)
	assert.False(t, ok)

	tampered = *proof
	tampered.InverseZ = nil
	_, err = tampered.Verify()
	assert.ErrorIs(t, err, ErrMalformedEncoding)
}

func TestCrossVariant(t *testing.T) {
	sk := unitKey(t)
	alpha := vectorAlphaScalar()

	// a contract proof read as an ordinary proof
	contract := vectorContractProof(t)
	ok, err := contract.Proof.Verify(alpha)
	require.NoError(t, err)
	assert.False(t, ok)

	// an ordinary proof completed with consistent witnesses for the contract layout
	ordinary, err := Prove(test.FixedReader(vectorNonce), sk, alpha)
	require.NoError(t, err)
	pk := sk.Public().Point()
	h, err := HashToCurvePrefix(alpha, pk)
	require.NoError(t, err)
	u := curve.NewIdentityPoint().DoubleScalarMult(ordinary.C, pk, ordinary.S)
	addr, err := hash.PointAddress(u)
	require.NoError(t, err)
	witnessGamma := curve.NewIdentityPoint().ScalarMult(ordinary.C, ordinary.Gamma)
	witnessHash := curve.NewIdentityPoint().ScalarMult(ordinary.S, h)
	sum := curve.ProjectiveAdd(witnessGamma, witnessHash)

	forged := &ContractProof{
		Proof:          *ordinary,
		Alpha:          alpha,
		WitnessAddress: addr,
		WitnessGamma:   witnessGamma,
		WitnessHash:    witnessHash,
		InverseZ:       sum.InverseZ(),
	}
	ok, err = forged.Verify()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestContractProof_Words(t *testing.T) {
	proof := vectorContractProof(t)
	words, err := proof.Words()
	require.NoError(t, err)

	want := []string{
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
		"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		contractGammaX, contractGammaY,
		contractC, contractS, contractY, vectorAlpha,
		"000000000000000000000000" + contractAddress,
		contractCGammaX, contractCGammaY,
		contractSHashX, contractSHashY,
		contractInvZ,
	}
	require.Len(t, want, ContractWords)
	for i, w := range words {
		assert.Equal(t, want[i], hex.EncodeToString(w[:]), "word %d", i)
	}

	d := proof.Display()
	assert.Equal(t, contractAddress, d.WitnessAddress)
	assert.Equal(t, contractInvZ, d.InverseZ)
}

func TestContractProof_MarshalBinary(t *testing.T) {
	proof := vectorContractProof(t)
	data, err := proof.MarshalBinary()
	require.NoError(t, err)

	var decoded ContractProof
	require.NoError(t, decoded.UnmarshalBinary(data))
	assert.Equal(t, proof.WitnessAddress, decoded.WitnessAddress)
	assert.True(t, proof.InverseZ.Equal(decoded.InverseZ))
	assert.True(t, proof.WitnessHash.Equal(decoded.WitnessHash))

	ok, err := decoded.Verify()
	require.NoError(t, err)
	assert.True(t, ok)

	// an ordinary proof encoding lacks the contract fields
	ordinary, err := proof.Proof.MarshalBinary()
	require.NoError(t, err)
	assert.Error(t, decoded.UnmarshalBinary(ordinary))
}
