// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/formatting/address"
)

const AddressLen = 33

// Address identifies a ledger account. The first byte is the type of the
// key that controls the account and the remaining 32 bytes are derived from
// that key.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// CreateAddress returns [Address] made from concatenating
// [typeID] with [id].
func CreateAddress(typeID uint8, id ids.ID) Address {
	var a Address
	a[0] = typeID
	copy(a[1:], id[:])
	return a
}

// Compare orders addresses by their raw bytes.
func (a Address) Compare(b Address) int {
	return bytes.Compare(a[:], b[:])
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Bech32 renders [a] with the human readable part [hrp].
func (a Address) Bech32(hrp string) (string, error) {
	return address.FormatBech32(hrp, a[:])
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText accepts either the 0x-prefixed hex form or a bech32 string
// of any hrp.
func (a *Address) UnmarshalText(input []byte) error {
	parsed, err := ParseAddress(string(input))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// StringToAddress decodes the hex form of an address. The input must encode
// exactly [AddressLen] bytes.
func StringToAddress(s string) (Address, error) {
	b, err := LoadHex(s, AddressLen)
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return Address(b), nil
}

// ParseBech32Address decodes [s] and checks that it carries [hrp].
func ParseBech32Address(hrp string, s string) (Address, error) {
	phrp, payload, err := address.ParseBech32(s)
	if err != nil {
		return EmptyAddress, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	if phrp != hrp {
		return EmptyAddress, fmt.Errorf("%w: expected %q but found %q", ErrIncorrectHRP, hrp, phrp)
	}
	return addressFromPayload(payload)
}

// ParseAddress decodes either textual form of an address.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") {
		return StringToAddress(s)
	}
	if _, payload, err := address.ParseBech32(s); err == nil {
		return addressFromPayload(payload)
	}
	return StringToAddress(s)
}

func addressFromPayload(payload []byte) (Address, error) {
	if len(payload) != AddressLen {
		return EmptyAddress, fmt.Errorf("%w: payload has %d bytes", ErrInvalidAddress, len(payload))
	}
	return Address(payload), nil
}
