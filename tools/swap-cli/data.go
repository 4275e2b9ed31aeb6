package main

import (
	"encoding/hex"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/mr-tron/base58"
)

// parseData accepts instruction data as 0x-prefixed hex or base58.
func parseData(s string) ([]byte, error) {
	if s == "" {
		return []byte{}, nil
	}
	if strings.HasPrefix(s, "0x") {
		b, err := hex.DecodeString(s[2:])
		if err != nil {
			return nil, ierrors.Wrapf(err, "invalid hex data %q", s)
		}
		return b, nil
	}
	b, err := base58.Decode(s)
	if err != nil {
		return nil, ierrors.Wrapf(err, "invalid base58 data %q", s)
	}
	return b, nil
}

func formatData(b []byte, asHex bool) string {
	if asHex {
		return "0x" + hex.EncodeToString(b)
	}
	return base58.Encode(b)
}
