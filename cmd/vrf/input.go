package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/taurusgroup/threshold-vrf/pkg/ecvrf"
	"github.com/taurusgroup/threshold-vrf/pkg/math/curve"
)

// parseAlpha reads α as 64 hex characters, or hashes any other text to a scalar.
func parseAlpha(s string) (*curve.Scalar, error) {
	if len(s) == 2*32 {
		if data, err := hex.DecodeString(s); err == nil {
			alpha := curve.NewScalar()
			if err = alpha.UnmarshalBinary(data); err != nil {
				return nil, fmt.Errorf("invalid alpha: %w", err)
			}
			return alpha, nil
		}
	}
	return ecvrf.AlphaFromMessage([]byte(s)), nil
}

// readHexFile returns the hex decoded contents of path, ignoring surrounding whitespace.
func readHexFile(path string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	decoded, err := hex.DecodeString(string(bytes.TrimSpace(data)))
	if err != nil {
		return nil, fmt.Errorf("invalid hex in %s: %w", path, err)
	}
	return decoded, nil
}

func readSecretKey(path string) (*ecvrf.SecretKey, error) {
	data, err := readHexFile(path)
	if err != nil {
		return nil, err
	}
	var sk ecvrf.SecretKey
	if err = sk.UnmarshalBinary(data); err != nil {
		return nil, fmt.Errorf("invalid secret key: %w", err)
	}
	return &sk, nil
}
