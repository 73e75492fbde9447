// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ava-labs/tokenledger/config"
	"github.com/ava-labs/tokenledger/ledger"
	"github.com/ava-labs/tokenledger/node"
)

func run(cmd *cobra.Command, _ []string) error {
	if file, _ := cmd.Flags().GetString("config-file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.LoggingConfig())
	if err != nil {
		return err
	}
	defer closeLog()

	reg := prometheus.NewRegistry()
	errs := wrappers.Errs{}
	errs.Add(
		reg.Register(collectors.NewGoCollector()),
		reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})),
	)
	if errs.Errored() {
		return errs.Err
	}

	gen, err := node.LoadGenesis(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	n, err := node.New(ctx, cfg, gen, log, reg)
	if err != nil {
		if errors.Is(err, ledger.ErrCorruptState) {
			log.Fatal("refusing to start on corrupt ledger state",
				zap.String("dataDir", cfg.DataDir),
				zap.Error(err),
			)
		}
		return err
	}

	runErr := n.Run(ctx)
	closeErr := n.Close()
	log.Info("stopped", zap.NamedError("runErr", runErr), zap.NamedError("closeErr", closeErr))
	if runErr != nil {
		return runErr
	}
	return closeErr
}
