package threshold

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/taurusgroup/threshold-vrf/internal/params"
	"github.com/taurusgroup/threshold-vrf/pkg/ecvrf"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
	"github.com/taurusgroup/threshold-vrf/pkg/math/polynomial"
	"github.com/taurusgroup/threshold-vrf/pkg/party"
	"github.com/taurusgroup/threshold-vrf/pkg/pool"
	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"
)

// Evaluator runs the per-participant VRF operations of a quorum in parallel.
//
// All participants live in the same process, which is how a coordinator or a test
// harness would drive them.
type Evaluator struct {
	pl  *pool.Pool
	log zerolog.Logger
}

// NewEvaluator returns an Evaluator using pl for proving. A nil pool proves sequentially.
func NewEvaluator(pl *pool.Pool, log zerolog.Logger) *Evaluator {
	return &Evaluator{pl: pl, log: log.With().Str("component", "threshold").Logger()}
}

// Prove generates a share proof of alpha for every key, hashing to the curve with group.
//
// A seed is read from rand for each participant, in increasing ID order, and expanded
// into that participant's nonce stream. The result only depends on rand and the keys,
// not on how the work is scheduled.
func (e *Evaluator) Prove(rand io.Reader, group *ecvrf.PublicKey, keys map[party.ID]*ecvrf.SecretKey, alpha *curve.Scalar) (map[party.ID]*ecvrf.Proof, error) {
	ids := sortedIDs(keys)
	if len(ids) == 0 {
		return nil, ErrNoShares
	}

	readers := make([]io.Reader, len(ids))
	for i, id := range ids {
		seed := make([]byte, params.SecBytes)
		if _, err := io.ReadFull(rand, seed); err != nil {
			return nil, fmt.Errorf("threshold: failed to read seed: %w", err)
		}
		readers[i] = participantReader(seed, id)
	}

	type result struct {
		proof *ecvrf.Proof
		err   error
	}
	results := pool.Map(e.pl, len(ids), func(i int) result {
		proof, err := ecvrf.ProveShare(readers[i], keys[ids[i]], group, alpha)
		return result{proof, err}
	})

	proofs := make(map[party.ID]*ecvrf.Proof, len(ids))
	for i, id := range ids {
		if results[i].err != nil {
			return nil, fmt.Errorf("threshold: party %v: %w", id, results[i].err)
		}
		proofs[id] = results[i].proof
		e.log.Debug().Stringer("party", id).Str("alpha", alpha.Hex()).Str("gamma", results[i].proof.Gamma.String()).Msg("proof generated")
	}
	return proofs, nil
}

// VerifyAll checks every share proof against its participant's public key.
//
// The first rejection cancels the remaining checks and is returned wrapped in ErrProofRejected.
func (e *Evaluator) VerifyAll(ctx context.Context, group *ecvrf.PublicKey, publics map[party.ID]*ecvrf.PublicKey, proofs map[party.ID]*ecvrf.Proof, alpha *curve.Scalar) error {
	if len(proofs) == 0 {
		return ErrNoShares
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.pl.Workers())
	for _, id := range sortedIDs(proofs) {
		id := id
		proof := proofs[id]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			pk := publics[id]
			if pk == nil {
				return fmt.Errorf("threshold: no public key for party %v", id)
			}
			ok, err := pk.VerifyShare(group, alpha, proof)
			if err != nil {
				return fmt.Errorf("%w: party %v: %w", ErrProofRejected, id, err)
			}
			if !ok {
				e.log.Warn().Stringer("party", id).Str("alpha", alpha.Hex()).Msg("proof rejected")
				return fmt.Errorf("%w: party %v", ErrProofRejected, id)
			}
			return nil
		})
	}
	return g.Wait()
}

// CombineProofs weights each proof's γ by its Lagrange coefficient over the quorum
// formed by the proofs themselves, and combines them.
func (e *Evaluator) CombineProofs(proofs map[party.ID]*ecvrf.Proof) (*Output, error) {
	ids := sortedIDs(proofs)
	if len(ids) == 0 {
		return nil, ErrNoShares
	}
	coefficients, err := polynomial.Lagrange(ids)
	if err != nil {
		return nil, err
	}
	shares := make([]Share, 0, len(ids))
	for _, id := range ids {
		shares = append(shares, Share{ID: id, Gamma: proofs[id].Gamma, Coefficient: coefficients[id]})
	}
	out, err := Combine(shares)
	if err != nil {
		return nil, err
	}
	e.log.Info().Int("participants", len(ids)).Str("value", out.Value.Hex()).Msg("combined output")
	return out, nil
}

// Evaluate proves, verifies and combines for the quorum given by keys.
//
// For a quorum of more than threshold share holders the output equals the output
// of an ordinary proof of alpha under the group secret.
func (e *Evaluator) Evaluate(ctx context.Context, rand io.Reader, group *ecvrf.PublicKey, keys map[party.ID]*ecvrf.SecretKey, alpha *curve.Scalar) (*Output, error) {
	proofs, err := e.Prove(rand, group, keys, alpha)
	if err != nil {
		return nil, err
	}
	publics := make(map[party.ID]*ecvrf.PublicKey, len(keys))
	for id, sk := range keys {
		publics[id] = sk.Public()
	}
	if err = e.VerifyAll(ctx, group, publics, proofs, alpha); err != nil {
		return nil, err
	}
	return e.CombineProofs(proofs)
}

// participantReader expands seed into an independent stream bound to id.
func participantReader(seed []byte, id party.ID) io.Reader {
	prg := blake3.New()
	_, _ = prg.Write(seed)
	_, _ = prg.Write(id.Bytes())
	return prg.Digest()
}

func sortedIDs[V any](m map[party.ID]V) party.IDSlice {
	ids := make(party.IDSlice, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	ids.Sort()
	return ids
}
