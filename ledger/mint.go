// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"

	"go.uber.org/zap"

	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/emap"
)

// Mint creates [amount] new units owned by [to]. Only the issuer may mint.
// Growing the total supply past the uint64 range returns an error wrapping
// ErrOverflow and changes nothing.
func (l *Ledger) Mint(
	ctx context.Context,
	caller codec.Address,
	to codec.Address,
	amount uint64,
) (MintResult, error) {
	return l.MintTx(ctx, nil, caller, to, amount)
}

// MintTx is Mint on behalf of the signed transaction [tx], remembered the
// same way as in TransferTx.
func (l *Ledger) MintTx(
	_ context.Context,
	tx emap.Item,
	caller codec.Address,
	to codec.Address,
	amount uint64,
) (MintResult, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if !l.metadata.initialized {
		return MintSuccess, ErrNotInitialized
	}
	p := newPending()
	if tx != nil {
		if err := l.admitTx(p, tx); err != nil {
			return MintSuccess, err
		}
	}
	result, err := l.mint(p, caller, to, amount)
	if err != nil {
		return result, err
	}
	if err := l.commit(p); err != nil {
		return MintSuccess, err
	}
	l.metrics.mints.WithLabelValues(result.String()).Inc()
	l.log.Debug("processed mint",
		zap.Stringer("caller", caller),
		zap.Stringer("to", to),
		zap.Uint64("amount", amount),
		zap.Stringer("result", result),
	)
	return result, nil
}

// mint stages the new supply into [p]. Assumes [l.lock] is held.
func (l *Ledger) mint(p *pending, caller, to codec.Address, amount uint64) (MintResult, error) {
	if caller != l.metadata.Get().Issuer {
		return MintUnauthorized, nil
	}
	if err := l.metadata.increaseTotalSupply(p, amount); err != nil {
		return MintSuccess, err
	}
	if err := l.balances.credit(p, to, amount); err != nil {
		return MintSuccess, err
	}
	return MintSuccess, nil
}
