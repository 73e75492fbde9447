// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger tracks the balances and metadata of a single fungible
// token. Every mutation is written to the database with one batch before it
// becomes visible in memory, and the sum of all balances always equals the
// total supply.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/emap"
)

// Ledger owns the token state. Mutations are serialized by a single writer
// lock and queries never observe a partially applied mutation.
type Ledger struct {
	log     logging.Logger
	db      database.Database
	metrics *metrics

	lock     sync.RWMutex
	balances *balanceLedger
	metadata *tokenMetadataStore
	seen     *emap.EMap[seenTx]

	// now returns the current unix time in milliseconds
	now func() int64
}

// Open loads the ledger persisted in [db]. A record that cannot be decoded,
// or balances that do not add up to the total supply, result in an error
// wrapping ErrCorruptState.
func Open(log logging.Logger, db database.Database, reg prometheus.Registerer) (*Ledger, error) {
	m, err := newMetrics(reg)
	if err != nil {
		return nil, err
	}
	l := &Ledger{
		log:      log,
		db:       db,
		metrics:  m,
		balances: newBalanceLedger(),
		metadata: &tokenMetadataStore{},
		seen:     emap.NewEMap[seenTx](),
		now:      func() int64 { return time.Now().UnixMilli() },
	}
	if err := l.load(); err != nil {
		return nil, err
	}
	l.updateGauges()
	if l.metadata.initialized {
		info := l.metadata.Get()
		l.log.Info("loaded ledger",
			zap.String("name", info.Name),
			zap.String("symbol", info.Symbol),
			zap.Uint64("totalSupply", info.TotalSupply),
			zap.Stringer("issuer", info.Issuer),
			zap.Int("accounts", l.balances.Len()),
		)
	}
	return l, nil
}

func (l *Ledger) load() error {
	raw, err := l.db.Get(tokenInfoKey)
	switch {
	case err == nil:
		info, err := UnmarshalTokenInfo(raw)
		if err != nil {
			return fmt.Errorf("%w: cannot decode token info: %w", ErrCorruptState, err)
		}
		l.metadata.set(info)
	case errors.Is(err, database.ErrNotFound):
	default:
		return err
	}

	it := l.db.NewIteratorWithPrefix([]byte{balancePrefix})
	defer it.Release()

	var sum uint64
	for it.Next() {
		addr, err := addressFromBalanceKey(it.Key())
		if err != nil {
			return err
		}
		amount, err := decodeBalance(it.Value())
		if err != nil {
			return fmt.Errorf("%w: account %s", err, addr)
		}
		sum, err = smath.Add(sum, amount)
		if err != nil {
			return fmt.Errorf("%w: balances overflow", ErrCorruptState)
		}
		l.balances.set(addr, amount)
	}
	if err := it.Error(); err != nil {
		return err
	}

	if !l.metadata.initialized {
		if l.balances.Len() > 0 {
			return fmt.Errorf("%w: %d balances without token info", ErrCorruptState, l.balances.Len())
		}
		return l.loadTxs()
	}
	if supply := l.metadata.Get().TotalSupply; sum != supply {
		return fmt.Errorf("%w: balances sum to %d but total supply is %d", ErrCorruptState, sum, supply)
	}
	return l.loadTxs()
}

// Initialize records the token metadata and credits [initialSupply] to
// [issuer]. It can only succeed once for a given database.
func (l *Ledger) Initialize(
	_ context.Context,
	name string,
	symbol string,
	issuer codec.Address,
	initialSupply uint64,
) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	p := newPending()
	if err := l.metadata.recordIssuerAndInitialSupply(p, name, symbol, issuer, initialSupply); err != nil {
		return err
	}
	if err := l.balances.credit(p, issuer, initialSupply); err != nil {
		return err
	}
	if err := l.commit(p); err != nil {
		return err
	}
	l.log.Info("initialized ledger",
		zap.String("name", name),
		zap.String("symbol", symbol),
		zap.Stringer("issuer", issuer),
		zap.Uint64("initialSupply", initialSupply),
	)
	return nil
}

// Initialized reports whether token metadata has been recorded.
func (l *Ledger) Initialized() bool {
	l.lock.RLock()
	defer l.lock.RUnlock()

	return l.metadata.initialized
}

// commit durably writes [p] and then applies it in memory. Nothing is
// applied if the write fails. Transactions admitted into [p] are written in
// the same batch as the state they changed. Assumes [l.lock] is held.
func (l *Ledger) commit(p *pending) error {
	if p.empty() {
		return nil
	}
	batch := l.db.NewBatch()
	for addr, amount := range p.balances {
		var err error
		if amount == 0 {
			err = batch.Delete(BalanceKey(addr))
		} else {
			err = batch.Put(BalanceKey(addr), encodeBalance(amount))
		}
		if err != nil {
			return err
		}
	}
	if p.info != nil {
		b, err := p.info.Marshal()
		if err != nil {
			return err
		}
		if err := batch.Put(tokenInfoKey, b); err != nil {
			return err
		}
	}
	for _, tx := range p.txs {
		if err := batch.Put(txKey(tx.id), encodeExpiry(tx.expiry)); err != nil {
			return err
		}
	}
	for _, id := range p.forget {
		if err := batch.Delete(txKey(id)); err != nil {
			return err
		}
	}
	if err := batch.Write(); err != nil {
		return fmt.Errorf("failed to persist ledger update: %w", err)
	}

	for addr, amount := range p.balances {
		l.balances.set(addr, amount)
	}
	if p.info != nil {
		l.metadata.set(*p.info)
	}
	l.seen.Add(p.txs)
	l.updateGauges()
	return nil
}

func (l *Ledger) updateGauges() {
	l.metrics.totalSupply.Set(float64(l.metadata.Get().TotalSupply))
	l.metrics.accounts.Set(float64(l.balances.Len()))
}
