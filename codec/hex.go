// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"strings"
)

// ToHex returns the 0x-prefixed hex encoding of b.
func ToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// LoadHex decodes [s], with or without a 0x prefix. When [expectedSize] is
// not -1 the decoded length must match it.
func LoadHex(s string, expectedSize int) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return nil, err
	}
	if expectedSize != -1 && len(decoded) != expectedSize {
		return nil, ErrInvalidSize
	}
	return decoded, nil
}

// Bytes is a byte slice that travels as hex in JSON.
type Bytes []byte

func (b Bytes) String() string {
	return ToHex(b)
}

func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Bytes) UnmarshalText(text []byte) error {
	decoded, err := LoadHex(string(text), -1)
	if err != nil {
		return err
	}
	*b = decoded
	return nil
}
