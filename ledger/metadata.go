// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/tokenledger/codec"
)

// tokenMetadataStore holds the committed TokenInfo record.
type tokenMetadataStore struct {
	info        TokenInfo
	initialized bool
}

func (m *tokenMetadataStore) Get() TokenInfo {
	return m.info
}

func (m *tokenMetadataStore) staged(p *pending) TokenInfo {
	if p.info != nil {
		return *p.info
	}
	return m.info
}

func (m *tokenMetadataStore) recordIssuerAndInitialSupply(
	p *pending,
	name string,
	symbol string,
	issuer codec.Address,
	amount uint64,
) error {
	if m.initialized || p.info != nil {
		return ErrAlreadyInitialized
	}
	p.info = &TokenInfo{
		Name:        name,
		Symbol:      symbol,
		TotalSupply: amount,
		Issuer:      issuer,
	}
	return nil
}

func (m *tokenMetadataStore) increaseTotalSupply(p *pending, amount uint64) error {
	info := m.staged(p)
	supply, err := smath.Add(info.TotalSupply, amount)
	if err != nil {
		return fmt.Errorf("%w: total supply %d cannot grow by %d", ErrOverflow, info.TotalSupply, amount)
	}
	info.TotalSupply = supply
	p.info = &info
	return nil
}

func (m *tokenMetadataStore) set(info TokenInfo) {
	m.info = info
	m.initialized = true
}
