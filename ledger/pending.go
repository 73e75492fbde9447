// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/tokenledger/codec"
)

// pending collects the writes of one mutating operation. A zero balance
// means the entry is deleted on commit.
type pending struct {
	balances map[codec.Address]uint64
	info     *TokenInfo

	// accepted transactions to remember and expired ones to forget
	txs    []seenTx
	forget []ids.ID
}

func newPending() *pending {
	return &pending{balances: make(map[codec.Address]uint64, 2)}
}

func (p *pending) empty() bool {
	return len(p.balances) == 0 && p.info == nil && len(p.txs) == 0 && len(p.forget) == 0
}
