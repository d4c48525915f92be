package main

import (
	"crypto/rand"
	"encoding"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/taurusgroup/threshold-vrf/pkg/ecvrf"
)

const (
	formatJSON = "json"
	formatCBOR = "cbor"
)

func newProveCmd(c *cli) *cobra.Command {
	var (
		keyFile  string
		alphaArg string
		contract bool
		format   string
		out      string
	)
	cmd := &cobra.Command{
		Use:   "prove",
		Short: "Prove an input under a secret key",
		Long: `Prove alpha under the secret key in --key.

Alpha is read as 64 hex characters when possible, otherwise the text is hashed
with keccak256. The json format prints the display form of the proof, the cbor
format prints the hex encoded binary proof that 'vrf verify' reads.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatJSON && format != formatCBOR {
				return fmt.Errorf("unknown format %q", format)
			}
			sk, err := readSecretKey(keyFile)
			if err != nil {
				return err
			}
			defer sk.Zeroize()
			alpha, err := parseAlpha(alphaArg)
			if err != nil {
				return err
			}

			var (
				display any
				binary  encoding.BinaryMarshaler
				y       string
			)
			if contract {
				proof, err := ecvrf.ProveContract(rand.Reader, sk, alpha)
				if err != nil {
					return err
				}
				display, binary, y = proof.Display(), proof, proof.Y.Hex()
			} else {
				proof, err := ecvrf.Prove(rand.Reader, sk, alpha)
				if err != nil {
					return err
				}
				display, binary, y = proof.Display(), proof, proof.Y.Hex()
			}
			c.log.Info().Bool("contract", contract).Str("alpha", alpha.Hex()).Str("y", y).Msg("proof generated")

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(filepath.Clean(out))
				if err != nil {
					return fmt.Errorf("failed to create proof file: %w", err)
				}
				defer f.Close()
				w = f
			}
			return writeProof(w, format, display, binary)
		},
	}
	cmd.Flags().StringVarP(&keyFile, "key", "k", "", "secret key file")
	cmd.Flags().StringVarP(&alphaArg, "alpha", "a", "", "input to prove, hex or text")
	cmd.Flags().BoolVar(&contract, "contract", false, "produce a contract proof")
	cmd.Flags().StringVarP(&format, "format", "f", formatJSON, "output format (json, cbor)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "proof output file (default: stdout)")
	if err := cmd.MarkFlagRequired("key"); err != nil {
		panic(fmt.Sprintf("failed to mark key flag as required: %v", err))
	}
	if err := cmd.MarkFlagRequired("alpha"); err != nil {
		panic(fmt.Sprintf("failed to mark alpha flag as required: %v", err))
	}
	return cmd
}

func writeProof(w io.Writer, format string, display any, binary encoding.BinaryMarshaler) error {
	if format == formatCBOR {
		data, err := binary.MarshalBinary()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(display)
}
