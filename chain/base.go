// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/tokenledger/consts"
)

type Base struct {
	// Timestamp is the expiry of the transaction (inclusive), in unix
	// milliseconds aligned to a whole second. The ledger remembers the
	// transaction until then to reject replays.
	Timestamp int64 `json:"timestamp"`

	// Nonce lets a signer submit identical actions within one validity
	// window.
	Nonce uint64 `json:"nonce"`
}

// Execute checks that the transaction is acceptable at [timestamp] given a
// [validityWindow] (both in milliseconds).
func (b *Base) Execute(timestamp int64, validityWindow int64) error {
	switch {
	case b.Timestamp%consts.MillisecondsPerSecond != 0:
		return fmt.Errorf("%w: timestamp=%d", ErrMisalignedTime, b.Timestamp)
	case b.Timestamp < timestamp:
		return ErrTimestampTooLate
	case b.Timestamp > timestamp+validityWindow:
		return ErrTimestampTooEarly
	default:
		return nil
	}
}
