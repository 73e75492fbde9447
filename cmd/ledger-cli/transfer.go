// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/spf13/cobra"

	"github.com/ava-labs/tokenledger/api/jsonrpc"
	"github.com/ava-labs/tokenledger/auth"
	"github.com/ava-labs/tokenledger/chain"
	"github.com/ava-labs/tokenledger/cli/prompt"
	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/consts"
	"github.com/ava-labs/tokenledger/ledger"
	"github.com/ava-labs/tokenledger/utils"
)

var errNotIssuer = errors.New("only the issuer can mint")

type txCmdResponse struct {
	TxID   ids.ID        `json:"txId"`
	To     codec.Address `json:"to"`
	Amount uint64        `json:"amount"`
	Result string        `json:"result"`
}

func (r txCmdResponse) String() string {
	return fmt.Sprintf("%s: %d to %s (txID=%s)", r.Result, r.Amount, r.To, r.TxID)
}

// txInputs collects the recipient and amount from flags, prompting for
// whichever is missing. [maxAmount] bounds the prompted amount.
func txInputs(cmd *cobra.Command, maxAmount uint64) (codec.Address, uint64, error) {
	toString, err := cmd.Flags().GetString("to")
	if err != nil {
		return codec.EmptyAddress, 0, err
	}
	var to codec.Address
	if toString != "" {
		to, err = prompt.ParseAddress(toString)
	} else {
		to, err = prompt.Address("recipient")
	}
	if err != nil {
		return codec.EmptyAddress, 0, fmt.Errorf("invalid recipient: %w", err)
	}

	amount, err := cmd.Flags().GetUint64("amount")
	if err != nil {
		return codec.EmptyAddress, 0, err
	}
	if amount == 0 {
		amount, err = prompt.Amount("amount", maxAmount)
		if err != nil {
			return codec.EmptyAddress, 0, err
		}
	}
	return to, amount, nil
}

// txClient is the part of the node API used to submit transactions.
type txClient interface {
	Balance(ctx context.Context, addr codec.Address) (uint64, error)
	IsCreator(ctx context.Context, addr codec.Address) (bool, error)
	Transfer(ctx context.Context, tx *chain.Transaction) (ids.ID, ledger.TransferResult, error)
	Mint(ctx context.Context, tx *chain.Transaction) (ids.ID, ledger.MintResult, error)
}

var _ txClient = (*jsonrpc.JSONRPCClient)(nil)

// inputsFunc returns the recipient and amount of a transaction, at most
// [maxAmount].
type inputsFunc func(maxAmount uint64) (codec.Address, uint64, error)

func cmdInputs(cmd *cobra.Command) inputsFunc {
	return func(maxAmount uint64) (codec.Address, uint64, error) {
		return txInputs(cmd, maxAmount)
	}
}

// withTimeout calls [f] with a context expiring [requestTimeout] from now.
func withTimeout(f func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	return f(ctx)
}

func submitTransfer(client txClient, factory *auth.ED25519Factory, inputs inputsFunc) (txCmdResponse, error) {
	var balance uint64
	err := withTimeout(func(ctx context.Context) error {
		var err error
		balance, err = client.Balance(ctx, factory.Address())
		return err
	})
	if err != nil {
		return txCmdResponse{}, fmt.Errorf("failed to get balance: %w", err)
	}
	utils.Outf("{{yellow}}balance:{{/}} %d\n", balance)

	to, amount, err := inputs(balance)
	if err != nil {
		return txCmdResponse{}, err
	}
	tx, err := signTx(factory, chain.NewTransfer(to, amount))
	if err != nil {
		return txCmdResponse{}, err
	}
	resp := txCmdResponse{To: to, Amount: amount}
	err = withTimeout(func(ctx context.Context) error {
		txID, result, err := client.Transfer(ctx, tx)
		resp.TxID, resp.Result = txID, result.String()
		return err
	})
	if err != nil {
		return txCmdResponse{}, fmt.Errorf("failed to submit transfer: %w", err)
	}
	return resp, nil
}

func submitMint(client txClient, factory *auth.ED25519Factory, inputs inputsFunc) (txCmdResponse, error) {
	err := withTimeout(func(ctx context.Context) error {
		return checkIssuer(ctx, client, factory.Address())
	})
	if err != nil {
		return txCmdResponse{}, err
	}

	to, amount, err := inputs(consts.MaxUint64)
	if err != nil {
		return txCmdResponse{}, err
	}
	tx, err := signTx(factory, chain.NewMint(to, amount))
	if err != nil {
		return txCmdResponse{}, err
	}
	resp := txCmdResponse{To: to, Amount: amount}
	err = withTimeout(func(ctx context.Context) error {
		txID, result, err := client.Mint(ctx, tx)
		resp.TxID, resp.Result = txID, result.String()
		return err
	})
	if err != nil {
		return txCmdResponse{}, fmt.Errorf("failed to submit mint: %w", err)
	}
	return resp, nil
}

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfer tokens from the current key to another address",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := loadKey(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		resp, err := submitTransfer(client, auth.NewED25519Factory(key), cmdInputs(cmd))
		if err != nil {
			return err
		}
		return printValue(cmd, resp)
	},
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Create new tokens (issuer only)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := loadKey(cmd)
		if err != nil {
			return err
		}
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		resp, err := submitMint(client, auth.NewED25519Factory(key), cmdInputs(cmd))
		if err != nil {
			return err
		}
		return printValue(cmd, resp)
	},
}

func checkIssuer(ctx context.Context, client txClient, addr codec.Address) error {
	isCreator, err := client.IsCreator(ctx, addr)
	if err != nil {
		return fmt.Errorf("failed to check issuer: %w", err)
	}
	if !isCreator {
		return fmt.Errorf("%w: %s", errNotIssuer, addr)
	}
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{transferCmd, mintCmd} {
		cmd.Flags().String("to", "", "Recipient address (hex or bech32)")
		cmd.Flags().Uint64("amount", 0, "Number of units")
		rootCmd.AddCommand(cmd)
	}
}
