// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ava-labs/tokenledger/auth"
	"github.com/ava-labs/tokenledger/cli/prompt"
	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/ledger"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the token name, symbol, total supply and issuer",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		info, err := client.TokenInfo(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token info: %w", err)
		}
		return printValue(cmd, infoCmdResponse(info))
	},
}

type infoCmdResponse ledger.TokenInfo

func (r infoCmdResponse) String() string {
	return fmt.Sprintf("%s (%s)\ntotal supply: %d\nissuer: %s", r.Name, r.Symbol, r.TotalSupply, r.Issuer)
}

var balanceCmd = &cobra.Command{
	Use:   "balance [address]",
	Short: "Print the balance of an address, or of the current key",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		addr, err := addressArg(cmd, args)
		if err != nil {
			return err
		}
		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		balance, err := client.Balance(ctx, addr)
		if err != nil {
			return fmt.Errorf("failed to get balance: %w", err)
		}
		return printValue(cmd, balanceCmdResponse{
			Address: addr,
			Balance: balance,
		})
	},
}

type balanceCmdResponse struct {
	Address codec.Address `json:"address"`
	Balance uint64        `json:"balance"`
}

func (r balanceCmdResponse) String() string {
	return fmt.Sprintf("%s: %d", r.Address, r.Balance)
}

// addressArg resolves the address to query: the argument if given, the
// current key if one is configured, otherwise an interactive prompt.
func addressArg(cmd *cobra.Command, args []string) (codec.Address, error) {
	if len(args) == 1 {
		return prompt.ParseAddress(args[0])
	}
	if keyString, _ := getConfigValue(cmd, "key", false); keyString != "" {
		key, err := privateKeyFromString(keyString)
		if err != nil {
			return codec.EmptyAddress, fmt.Errorf("failed to decode key: %w", err)
		}
		return auth.NewED25519Address(key.PublicKey()), nil
	}
	return prompt.Address("address")
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List every account holding tokens",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		client, err := newClient(cmd)
		if err != nil {
			return err
		}
		users, err := client.Users(ctx)
		if err != nil {
			return fmt.Errorf("failed to get users: %w", err)
		}
		return printValue(cmd, usersCmdResponse{Users: users})
	},
}

type usersCmdResponse struct {
	Users []ledger.Entry `json:"users"`
}

func (r usersCmdResponse) String() string {
	if len(r.Users) == 0 {
		return "no accounts"
	}
	lines := make([]string, len(r.Users))
	for i, u := range r.Users {
		lines[i] = fmt.Sprintf("%d) %s: %d", i, u.Address, u.Amount)
	}
	return strings.Join(lines, "\n")
}

func init() {
	rootCmd.AddCommand(infoCmd, balanceCmd, usersCmd)
}
