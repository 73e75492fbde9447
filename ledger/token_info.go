// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"

	"github.com/near/borsh-go"

	"github.com/ava-labs/tokenledger/codec"
)

const tokenInfoVersion byte = 0

// TokenInfo describes the single token tracked by the ledger. Issuer never
// changes after initialization and TotalSupply only grows through Mint.
type TokenInfo struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol"`
	TotalSupply uint64        `json:"totalSupply"`
	Issuer      codec.Address `json:"issuer"`
}

// Marshal encodes t as a version byte followed by its borsh encoding.
func (t TokenInfo) Marshal() ([]byte, error) {
	b, err := borsh.Serialize(t)
	if err != nil {
		return nil, err
	}
	return append([]byte{tokenInfoVersion}, b...), nil
}

func UnmarshalTokenInfo(b []byte) (TokenInfo, error) {
	if len(b) == 0 {
		return TokenInfo{}, fmt.Errorf("%w: empty token info", ErrCorruptState)
	}
	if b[0] != tokenInfoVersion {
		return TokenInfo{}, fmt.Errorf("%w: %d", ErrUnknownVersion, b[0])
	}
	var t TokenInfo
	if err := borsh.Deserialize(&t, b[1:]); err != nil {
		return TokenInfo{}, err
	}
	return t, nil
}
