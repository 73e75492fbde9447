// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"

	"github.com/google/btree"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/tokenledger/codec"
)

const btreeDegree = 32

// Entry is a single nonzero account balance.
type Entry struct {
	Address codec.Address `json:"address"`
	Amount  uint64        `json:"balance"`
}

func entryLess(a, b Entry) bool {
	return a.Address.Compare(b.Address) < 0
}

// balanceLedger is the in-memory mirror of every persisted balance. An
// account without an entry holds zero.
//
// Writes are staged into a [pending] first and only reach the tree through
// set once the database batch holding them has been written.
type balanceLedger struct {
	tree *btree.BTreeG[Entry]
}

func newBalanceLedger() *balanceLedger {
	return &balanceLedger{tree: btree.NewG(btreeDegree, entryLess)}
}

func (b *balanceLedger) Get(addr codec.Address) uint64 {
	e, ok := b.tree.Get(Entry{Address: addr})
	if !ok {
		return 0
	}
	return e.Amount
}

// Entries returns every account in address order.
func (b *balanceLedger) Entries() []Entry {
	entries := make([]Entry, 0, b.tree.Len())
	b.tree.Ascend(func(e Entry) bool {
		entries = append(entries, e)
		return true
	})
	return entries
}

func (b *balanceLedger) Len() int {
	return b.tree.Len()
}

// staged returns the balance of [addr] including writes already staged in [p].
func (b *balanceLedger) staged(p *pending, addr codec.Address) uint64 {
	if amount, ok := p.balances[addr]; ok {
		return amount
	}
	return b.Get(addr)
}

func (b *balanceLedger) credit(p *pending, addr codec.Address, amount uint64) error {
	cur := b.staged(p, addr)
	next, err := smath.Add(cur, amount)
	if err != nil {
		return fmt.Errorf("%w: crediting %d to %s holding %d", ErrOverflow, amount, addr, cur)
	}
	p.balances[addr] = next
	return nil
}

func (b *balanceLedger) debit(p *pending, addr codec.Address, amount uint64) error {
	cur := b.staged(p, addr)
	if cur < amount {
		return fmt.Errorf("%w: %s holds %d but needs %d", ErrInsufficientBalance, addr, cur, amount)
	}
	p.balances[addr] = cur - amount
	return nil
}

// set applies a committed balance. Zero removes the entry.
func (b *balanceLedger) set(addr codec.Address, amount uint64) {
	if amount == 0 {
		b.tree.Delete(Entry{Address: addr})
		return
	}
	b.tree.ReplaceOrInsert(Entry{Address: addr, Amount: amount})
}
