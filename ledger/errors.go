// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "errors"

var (
	ErrOverflow            = errors.New("amount overflows uint64")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrCorruptState        = errors.New("corrupt ledger state")
	ErrNotInitialized      = errors.New("ledger is not initialized")
	ErrAlreadyInitialized  = errors.New("ledger is already initialized")
	ErrUnknownVersion      = errors.New("unknown token info version")
	ErrDuplicateTx         = errors.New("duplicate transaction")
)
