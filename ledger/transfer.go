// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/emap"
)

// Transfer moves [amount] from [caller] to [to]. Domain failures are
// reported through the result and leave the ledger untouched. A non-nil
// error means the update could not be persisted and nothing changed.
func (l *Ledger) Transfer(
	ctx context.Context,
	caller codec.Address,
	to codec.Address,
	amount uint64,
) (TransferResult, error) {
	return l.TransferTx(ctx, nil, caller, to, amount)
}

// TransferTx is Transfer on behalf of the signed transaction [tx]. The
// transaction is remembered until it expires, durably and in the same write
// as the transfer, so resubmitting it returns ErrDuplicateTx even after a
// restart. It is remembered whatever the result, and a failed write leaves
// it free to be retried.
func (l *Ledger) TransferTx(
	_ context.Context,
	tx emap.Item,
	caller codec.Address,
	to codec.Address,
	amount uint64,
) (TransferResult, error) {
	l.lock.Lock()
	defer l.lock.Unlock()

	if !l.metadata.initialized {
		return TransferSuccess, ErrNotInitialized
	}
	p := newPending()
	if tx != nil {
		if err := l.admitTx(p, tx); err != nil {
			return TransferSuccess, err
		}
	}
	result, err := l.transfer(p, caller, to, amount)
	if err != nil {
		return result, err
	}
	if result != TransferSuccess {
		p.balances = nil
	}
	if err := l.commit(p); err != nil {
		return TransferSuccess, err
	}
	l.metrics.transfers.WithLabelValues(result.String()).Inc()
	l.log.Debug("processed transfer",
		zap.Stringer("from", caller),
		zap.Stringer("to", to),
		zap.Uint64("amount", amount),
		zap.Stringer("result", result),
	)
	return result, nil
}

// transfer stages the balance changes into [p]. Assumes [l.lock] is held.
func (l *Ledger) transfer(p *pending, caller, to codec.Address, amount uint64) (TransferResult, error) {
	if caller == to {
		return TransferSameAccount, nil
	}
	if err := l.balances.debit(p, caller, amount); err != nil {
		if errors.Is(err, ErrInsufficientBalance) {
			return TransferInsufficientBalance, nil
		}
		return TransferSuccess, err
	}
	if err := l.balances.credit(p, to, amount); err != nil {
		return TransferSuccess, err
	}
	return TransferSuccess, nil
}
