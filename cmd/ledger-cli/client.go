// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/ava-labs/tokenledger/api/jsonrpc"
	"github.com/ava-labs/tokenledger/auth"
	"github.com/ava-labs/tokenledger/chain"
	"github.com/ava-labs/tokenledger/utils"
)

// validityWindow must not exceed the node's configured window
const validityWindow = 30 * time.Second

// requestTimeout bounds each call to the node. It never covers time spent
// at a prompt.
var requestTimeout = 30 * time.Second

func newClient(cmd *cobra.Command) (*jsonrpc.JSONRPCClient, error) {
	endpoint, err := getConfigValue(cmd, "endpoint", true)
	if err != nil {
		return nil, fmt.Errorf("failed to get endpoint: %w", err)
	}
	return jsonrpc.NewJSONRPCClient(endpoint), nil
}

func signTx(factory *auth.ED25519Factory, action chain.Action) (*chain.Transaction, error) {
	base := chain.Base{
		Timestamp: utils.UnixRMilli(-1, validityWindow.Milliseconds()),
		Nonce:     rand.Uint64(), //nolint:gosec
	}
	tx, err := chain.NewTx(base, action).Sign(factory)
	if err != nil {
		return nil, fmt.Errorf("failed to sign tx: %w", err)
	}
	return tx, nil
}
