// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

// Type bytes prefixed to addresses derived from a signer. IDs are assigned
// explicitly so persisted balances never change owner.
const (
	ED25519ID uint8 = 0

	ED25519Key = "ed25519"
)
