// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package node

import "errors"

var ErrMissingGenesis = errors.New("ledger is not initialized and no genesis was provided")
