// Command vrf generates and checks secp256k1 VRF proofs, and runs a threshold demonstration.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
