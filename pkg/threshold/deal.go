package threshold

import (
	"fmt"
	"io"

	"github.com/taurusgroup/threshold-vrf/pkg/ecvrf"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
	"github.com/taurusgroup/threshold-vrf/pkg/math/polynomial"
	"github.com/taurusgroup/threshold-vrf/pkg/math/sample"
	"github.com/taurusgroup/threshold-vrf/pkg/party"
)

// Dealing is the output of a trusted dealer: a key share per participant.
//
// It stands in for a distributed key generation, which is outside this package.
type Dealing struct {
	Threshold int
	GroupKey  *ecvrf.PublicKey
	Shares    map[party.ID]*ecvrf.SecretKey
	Public    map[party.ID]*ecvrf.PublicKey
}

// Deal splits secret into shares f(id) of a random polynomial of degree threshold,
// so that any threshold+1 participants can combine their outputs.
// A nil secret is sampled from rand.
func Deal(rand io.Reader, threshold int, ids party.IDSlice, secret *curve.Scalar) (*Dealing, error) {
	if err := ids.Valid(); err != nil {
		return nil, err
	}
	if threshold < 0 || threshold >= len(ids) {
		return nil, fmt.Errorf("threshold: threshold %d out of range for %d parties", threshold, len(ids))
	}
	if secret != nil && secret.IsZero() {
		return nil, ecvrf.ErrZeroSecret
	}

	if secret == nil {
		sampled, err := sample.Scalar(rand)
		if err != nil {
			return nil, err
		}
		defer sampled.Zeroize()
		secret = sampled
	}
	f, err := polynomial.NewPolynomial(rand, threshold, secret)
	if err != nil {
		return nil, err
	}
	defer f.Zeroize()
	commitments := polynomial.NewPolynomialExponent(f)

	groupKey, err := ecvrf.NewPublicKey(commitments.Constant())
	if err != nil {
		return nil, err
	}
	d := &Dealing{
		Threshold: threshold,
		GroupKey:  groupKey,
		Shares:    make(map[party.ID]*ecvrf.SecretKey, len(ids)),
		Public:    make(map[party.ID]*ecvrf.PublicKey, len(ids)),
	}
	for _, id := range ids {
		share, err := f.Evaluate(id.Scalar())
		if err != nil {
			return nil, err
		}
		sk, err := ecvrf.NewSecretKey(share)
		share.Zeroize()
		if err != nil {
			return nil, fmt.Errorf("threshold: party %v: %w", id, err)
		}
		pk, err := ecvrf.NewPublicKey(commitments.Evaluate(id.Scalar()))
		if err != nil {
			return nil, err
		}
		d.Shares[id] = sk
		d.Public[id] = pk
	}
	return d, nil
}

// Zeroize wipes every share held by the dealing.
func (d *Dealing) Zeroize() {
	for _, sk := range d.Shares {
		sk.Zeroize()
	}
}
