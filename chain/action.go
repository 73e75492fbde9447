// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/ava-labs/tokenledger/codec"
)

// Action type IDs. They are part of the signed payload and must never be
// reassigned.
const (
	TransferID uint8 = 0
	MintID     uint8 = 1
)

// Action is the ledger operation a transaction authorizes. The acting
// account is the signer of the transaction.
type Action struct {
	TypeID uint8         `json:"type"`
	To     codec.Address `json:"to"`
	Value  uint64        `json:"value"`
}

func NewTransfer(to codec.Address, value uint64) Action {
	return Action{TypeID: TransferID, To: to, Value: value}
}

func NewMint(to codec.Address, value uint64) Action {
	return Action{TypeID: MintID, To: to, Value: value}
}

func (a Action) Name() string {
	switch a.TypeID {
	case TransferID:
		return "transfer"
	case MintID:
		return "mint"
	default:
		return fmt.Sprintf("unknown(%d)", a.TypeID)
	}
}

func (a Action) verify() error {
	switch a.TypeID {
	case TransferID, MintID:
		return nil
	default:
		return fmt.Errorf("%w: type %d", ErrInvalidAction, a.TypeID)
	}
}
