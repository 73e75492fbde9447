// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "github.com/ava-labs/tokenledger/codec"

func (l *Ledger) TokenInfo() TokenInfo {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.metadata.Get()
}

// Balance returns the amount held by [addr], zero for unknown accounts.
func (l *Ledger) Balance(addr codec.Address) uint64 {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.balances.Get(addr)
}

func (l *Ledger) TotalSupply() uint64 {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.metadata.Get().TotalSupply
}

// Users returns every account holding a nonzero balance, ordered by
// address.
func (l *Ledger) Users() []Entry {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.balances.Entries()
}

// IsCreator reports whether [addr] is the issuer.
func (l *Ledger) IsCreator(addr codec.Address) bool {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.metadata.initialized && l.metadata.Get().Issuer == addr
}
