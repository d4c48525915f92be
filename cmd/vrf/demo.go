package main

import (
	"crypto/rand"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taurusgroup/threshold-vrf/pkg/ecvrf"
	"github.com/taurusgroup/threshold-vrf/pkg/party"
	"github.com/taurusgroup/threshold-vrf/pkg/pool"
	"github.com/taurusgroup/threshold-vrf/pkg/threshold"
)

func newDemoCmd(c *cli) *cobra.Command {
	var (
		participants int
		degree       int
		alphaArg     string
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Combine the outputs of a quorum of key share holders",
		Long: `Deal shares of a fresh secret to --participants holders, let the first
threshold+1 of them prove alpha, verify every proof and combine the outputs with
Lagrange coefficients. The combined output is the one an ordinary proof under the
dealt secret would give.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alpha, err := parseAlpha(alphaArg)
			if err != nil {
				return err
			}
			ids := party.NewIDSlice(participants)
			dealing, err := threshold.Deal(rand.Reader, degree, ids, nil)
			if err != nil {
				return err
			}
			defer dealing.Zeroize()

			quorum := ids[:degree+1]
			keys := make(map[party.ID]*ecvrf.SecretKey, len(quorum))
			for _, id := range quorum {
				keys[id] = dealing.Shares[id]
			}

			pl := pool.NewPool(c.v.GetInt("workers"))
			defer pl.TearDown()
			e := threshold.NewEvaluator(pl, c.log)

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "alpha: %s\ngroup public key: %s\n\n", alpha.Hex(), dealing.GroupKey)

			proofs, err := e.Prove(rand.Reader, dealing.GroupKey, keys, alpha)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			for _, id := range quorum {
				fmt.Fprintf(w, "Proof of participant %v:\n", id)
				if err = enc.Encode(proofs[id].Display()); err != nil {
					return err
				}
			}

			if err = e.VerifyAll(cmd.Context(), dealing.GroupKey, dealing.Public, proofs, alpha); err != nil {
				return err
			}
			fmt.Fprintf(w, "\nParticipants %v produced valid outputs\n", quorum)

			out, err := e.CombineProofs(proofs)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "Final output: %s\n", out.Value.Hex())
			return nil
		},
	}
	cmd.Flags().IntVarP(&participants, "participants", "n", 4, "number of share holders")
	cmd.Flags().IntVarP(&degree, "threshold", "t", 2, "polynomial degree, threshold+1 holders are needed")
	cmd.Flags().StringVarP(&alphaArg, "alpha", "a", "hello world", "input, hex or text")
	return cmd
}
