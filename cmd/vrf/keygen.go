package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/taurusgroup/threshold-vrf/pkg/ecvrf"
)

func newKeygenCmd(c *cli) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a secret key",
		Long: `Generate a secret key and print its public key.

The secret is written as 64 hex characters to --out, or to stdout when --out is empty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sk, err := ecvrf.GenerateKey(rand.Reader)
			if err != nil {
				return err
			}
			defer sk.Zeroize()
			data, err := sk.MarshalBinary()
			if err != nil {
				return err
			}
			encoded := hex.EncodeToString(data) + "\n"

			if out == "" {
				fmt.Fprint(cmd.OutOrStdout(), encoded)
			} else {
				if err = os.WriteFile(filepath.Clean(out), []byte(encoded), 0600); err != nil {
					return fmt.Errorf("failed to write key file: %w", err)
				}
				c.log.Info().Str("file", out).Msg("secret key written")
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "public key: %s\n", sk.Public())
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "secret key output file")
	return cmd
}
