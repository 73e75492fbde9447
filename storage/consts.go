// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

// LedgerNamespace is the data directory subfolder and metrics prefix of
// the ledger database.
const LedgerNamespace = "ledgerdb"
