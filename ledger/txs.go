// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"go.uber.org/zap"

	"github.com/ava-labs/tokenledger/emap"
)

var _ emap.Item = seenTx{}

// seenTx is an accepted transaction, remembered until it expires so it can
// never be applied twice.
type seenTx struct {
	id     ids.ID
	expiry int64
}

func (s seenTx) ID() ids.ID { return s.id }

func (s seenTx) Expiry() int64 { return s.expiry }

// admitTx stages [tx] to be remembered with the rest of [p] and forgets the
// transactions that expired. Assumes [l.lock] is held.
func (l *Ledger) admitTx(p *pending, tx emap.Item) error {
	p.forget = l.seen.SetMin(l.now())
	if l.seen.Contains(tx.ID()) {
		return fmt.Errorf("%w: %s", ErrDuplicateTx, tx.ID())
	}
	p.txs = append(p.txs, seenTx{id: tx.ID(), expiry: tx.Expiry()})
	return nil
}

// loadTxs restores the unexpired accepted transactions and deletes the rest.
func (l *Ledger) loadTxs() error {
	it := l.db.NewIteratorWithPrefix([]byte{txPrefix})
	defer it.Release()

	var (
		now     = l.now()
		live    []seenTx
		pruned  int
		expired = l.db.NewBatch()
	)
	for it.Next() {
		id, err := txIDFromKey(it.Key())
		if err != nil {
			return err
		}
		expiry, err := decodeExpiry(it.Value())
		if err != nil {
			return fmt.Errorf("%w: tx %s", err, id)
		}
		if expiry < now {
			if err := expired.Delete(txKey(id)); err != nil {
				return err
			}
			pruned++
			continue
		}
		live = append(live, seenTx{id: id, expiry: expiry})
	}
	if err := it.Error(); err != nil {
		return err
	}
	if pruned > 0 {
		if err := expired.Write(); err != nil {
			return fmt.Errorf("failed to prune expired transactions: %w", err)
		}
	}
	l.seen.Add(live)
	l.log.Debug("loaded accepted transactions",
		zap.Int("live", len(live)),
		zap.Int("pruned", pruned),
	)
	return nil
}
