// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

//go:generate go run go.uber.org/mock/mockgen -package=apitest -destination=apitest/ledger.go -mock_names=Ledger=MockLedger . Ledger

import (
	"context"

	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/emap"
	"github.com/ava-labs/tokenledger/ledger"
)

// Ledger is the token state served over the API.
type Ledger interface {
	TokenInfo() ledger.TokenInfo
	Balance(addr codec.Address) uint64
	TotalSupply() uint64
	Users() []ledger.Entry
	IsCreator(addr codec.Address) bool

	// TransferTx and MintTx return an error wrapping ledger.ErrDuplicateTx
	// when [tx] was already applied and has not expired.
	TransferTx(ctx context.Context, tx emap.Item, caller codec.Address, to codec.Address, amount uint64) (ledger.TransferResult, error)
	MintTx(ctx context.Context, tx emap.Item, caller codec.Address, to codec.Address, amount uint64) (ledger.MintResult, error)
}
