// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// Name is the JSON-RPC service name and the metrics namespace.
	Name = "ledger"

	// HRP is the human readable part of bech32 account addresses.
	HRP = "edu"

	Version = "v0.1.0"

	IDLen     = 32
	ByteLen   = 1
	Uint64Len = 8
	MaxUint64 = ^uint64(0)

	MillisecondsPerSecond = 1000
)
