// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ava-labs/tokenledger/auth"
	"github.com/ava-labs/tokenledger/consts"
	"github.com/ava-labs/tokenledger/crypto/ed25519"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage keys",
}

var keyGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new key and store it in the config",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := ed25519.GeneratePrivateKey()
		if err != nil {
			return fmt.Errorf("failed to generate key: %w", err)
		}
		if err := setConfigValue("key", key.ToHex()); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		return printKey(cmd, key)
	},
}

var keySetCmd = &cobra.Command{
	Use:   "set",
	Short: "Import a hex encoded key or key file into the config",
	RunE: func(cmd *cobra.Command, _ []string) error {
		keyString, err := cmd.Flags().GetString("key")
		if err != nil {
			return fmt.Errorf("failed to get key flag: %w", err)
		}
		key, err := privateKeyFromString(keyString)
		if err != nil {
			return fmt.Errorf("failed to decode key: %w", err)
		}
		if err := setConfigValue("key", key.ToHex()); err != nil {
			return fmt.Errorf("failed to update config: %w", err)
		}
		return printKey(cmd, key)
	},
}

var keyAddressCmd = &cobra.Command{
	Use:   "address",
	Short: "Print current key address",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := loadKey(cmd)
		if err != nil {
			return err
		}
		return printKey(cmd, key)
	},
}

type keyCmdResponse struct {
	Address string `json:"address"`
	Bech32  string `json:"bech32"`
}

func (r keyCmdResponse) String() string {
	return fmt.Sprintf("%s (%s)", r.Address, r.Bech32)
}

func printKey(cmd *cobra.Command, key ed25519.PrivateKey) error {
	addr := auth.NewED25519Address(key.PublicKey())
	bech32, err := addr.Bech32(consts.HRP)
	if err != nil {
		return fmt.Errorf("failed to encode address: %w", err)
	}
	return printValue(cmd, keyCmdResponse{
		Address: addr.String(),
		Bech32:  bech32,
	})
}

func init() {
	keyCmd.AddCommand(keyGenerateCmd, keySetCmd, keyAddressCmd)
	rootCmd.AddCommand(keyCmd)
}
