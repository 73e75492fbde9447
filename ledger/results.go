// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"errors"
	"fmt"
)

var errUnknownResult = errors.New("unknown result")

// TransferResult is the outcome of a transfer that reached the ledger. Only
// TransferSuccess changes state.
type TransferResult uint8

const (
	TransferSuccess TransferResult = iota
	TransferSameAccount
	TransferInsufficientBalance
)

func (r TransferResult) String() string {
	switch r {
	case TransferSuccess:
		return "Success"
	case TransferSameAccount:
		return "SameAccount"
	case TransferInsufficientBalance:
		return "InsufficientBalance"
	default:
		return fmt.Sprintf("TransferResult(%d)", uint8(r))
	}
}

func (r TransferResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *TransferResult) UnmarshalText(text []byte) error {
	for _, candidate := range []TransferResult{TransferSuccess, TransferSameAccount, TransferInsufficientBalance} {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: %q", errUnknownResult, text)
}

// MintResult is the outcome of a mint that reached the ledger. Only
// MintSuccess changes state.
type MintResult uint8

const (
	MintSuccess MintResult = iota
	MintUnauthorized
)

func (r MintResult) String() string {
	switch r {
	case MintSuccess:
		return "Success"
	case MintUnauthorized:
		return "Unauthorized"
	default:
		return fmt.Sprintf("MintResult(%d)", uint8(r))
	}
}

func (r MintResult) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *MintResult) UnmarshalText(text []byte) error {
	for _, candidate := range []MintResult{MintSuccess, MintUnauthorized} {
		if candidate.String() == string(text) {
			*r = candidate
			return nil
		}
	}
	return fmt.Errorf("%w: %q", errUnknownResult, text)
}
