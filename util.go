package easysig

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// padWithZeros left-pads b with zeros up to length. Longer inputs are
// returned unchanged.
func padWithZeros(b []byte, length int) []byte {
	if len(b) >= length {
		return b
	}
	padded := make([]byte, length)
	copy(padded[length-len(b):], b)
	return padded
}

// decodeHex decodes a hex string of either case, with or without 0x prefix.
func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	s = strings.TrimPrefix(s, "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return b, nil
}
