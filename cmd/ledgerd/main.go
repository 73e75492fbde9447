// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ava-labs/tokenledger/config"
	"github.com/ava-labs/tokenledger/consts"
)

var v = viper.New()

var rootCmd = &cobra.Command{
	Use:          "ledgerd",
	Short:        "Token ledger daemon",
	Long:         `Serves a persistent fungible-token ledger over JSON-RPC.`,
	Version:      consts.Version,
	SilenceUsage: true,
	RunE:         run,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func init() {
	config.SetDefaults(v)

	flags := rootCmd.Flags()
	flags.String("config-file", "", "Path to a YAML config file")
	flags.String("data-dir", "", "Directory holding the ledger database and logs")
	flags.String("genesis-file", "", "JSON or YAML genesis used on first start")
	flags.String("issuer", "", "Issuer of the default token used on first start when no genesis file is set")
	flags.String("http-host", "", "Address the API listens on")
	flags.Uint16("http-port", 0, "Port the API listens on")
	flags.String("log-level", "", "Log level written to the log file")
	flags.String("log-display-level", "", "Log level written to the console")

	for key, flag := range map[string]string{
		"data-dir":          "data-dir",
		"genesis-file":      "genesis-file",
		"issuer":            "issuer",
		"http-host":         "http-host",
		"http-port":         "http-port",
		"log.level":         "log-level",
		"log.display-level": "log-display-level",
	} {
		if err := v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(err)
		}
	}
}

func main() {
	Execute()
}
