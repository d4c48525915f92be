package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/taurusgroup/threshold-vrf/pkg/ecvrf"
)

var errInvalidProof = errors.New("proof is INVALID")

func newVerifyCmd(c *cli) *cobra.Command {
	var (
		proofFile string
		alphaArg  string
		contract  bool
	)
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a proof",
		Long: `Verify a hex encoded cbor proof, as written by 'vrf prove --format cbor'.

The public key is carried by the proof. A contract proof also carries alpha,
which must match --alpha.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readHexFile(proofFile)
			if err != nil {
				return err
			}
			alpha, err := parseAlpha(alphaArg)
			if err != nil {
				return err
			}

			var (
				ok bool
				pk *ecvrf.PublicKey
				y  string
			)
			if contract {
				var proof ecvrf.ContractProof
				if err = proof.UnmarshalBinary(data); err != nil {
					return err
				}
				pk, y = proof.PublicKey, proof.Y.Hex()
				ok, err = pk.VerifyContract(alpha, &proof)
			} else {
				var proof ecvrf.Proof
				if err = proof.UnmarshalBinary(data); err != nil {
					return err
				}
				pk, y = proof.PublicKey, proof.Y.Hex()
				ok, err = pk.Verify(alpha, &proof)
			}
			if err != nil {
				return err
			}
			c.log.Debug().Bool("contract", contract).Str("alpha", alpha.Hex()).Bool("valid", ok).Msg("proof checked")
			if !ok {
				return errInvalidProof
			}
			fmt.Fprintf(cmd.OutOrStdout(), "public key: %s\noutput: %s\nproof is VALID\n", pk, y)
			return nil
		},
	}
	cmd.Flags().StringVarP(&proofFile, "proof", "p", "", "proof file")
	cmd.Flags().StringVarP(&alphaArg, "alpha", "a", "", "proved input, hex or text")
	cmd.Flags().BoolVar(&contract, "contract", false, "the proof is a contract proof")
	if err := cmd.MarkFlagRequired("proof"); err != nil {
		panic(fmt.Sprintf("failed to mark proof flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("alpha"); err != nil {
		panic(fmt.Sprintf("failed to mark alpha flag as required: %v", err))
	}
	return cmd
}
