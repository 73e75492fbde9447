// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package node assembles a running ledger daemon: storage, the ledger
// itself and the HTTP surface in front of it.
package node

import (
	"context"
	"fmt"
	"net"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ava-labs/tokenledger/api/jsonrpc"
	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/config"
	"github.com/ava-labs/tokenledger/genesis"
	"github.com/ava-labs/tokenledger/ledger"
	"github.com/ava-labs/tokenledger/server"
	"github.com/ava-labs/tokenledger/storage"
	"github.com/ava-labs/tokenledger/trace"
)

type Node struct {
	log    logging.Logger
	db     database.Database
	ledger *ledger.Ledger
	tracer trace.Tracer
	server server.Server
}

// LoadGenesis returns the genesis described by [cfg]: the genesis file when
// one is set, otherwise the default token issued to cfg.Issuer. It returns
// nil when neither is configured.
func LoadGenesis(cfg config.Config) (*genesis.Genesis, error) {
	if cfg.GenesisFile != "" {
		return genesis.Load(cfg.GenesisFile)
	}
	if cfg.Issuer == "" {
		return nil, nil
	}
	issuer, err := codec.ParseAddress(cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("invalid issuer %q: %w", cfg.Issuer, err)
	}
	return genesis.Default(issuer), nil
}

// New loads the ledger from cfg.DataDir, initializing it from [gen] on
// first start, and binds the HTTP listener. Requests are not served until
// Run is called.
func New(
	ctx context.Context,
	cfg config.Config,
	gen *genesis.Genesis,
	log logging.Logger,
	reg *prometheus.Registry,
) (*Node, error) {
	db, err := storage.New(log, cfg.Pebble, cfg.DataDir, storage.LedgerNamespace, reg)
	if err != nil {
		return nil, err
	}
	n := &Node{
		log: log,
		db:  db,
	}
	if err := n.init(ctx, cfg, gen, reg); err != nil {
		if cerr := n.Close(); cerr != nil {
			log.Warn("failed to close node after init failure", zap.Error(cerr))
		}
		return nil, err
	}
	return n, nil
}

func (n *Node) init(
	ctx context.Context,
	cfg config.Config,
	gen *genesis.Genesis,
	reg *prometheus.Registry,
) error {
	l, err := ledger.Open(n.log, n.db, reg)
	if err != nil {
		return err
	}
	n.ledger = l
	if !l.Initialized() {
		if gen == nil {
			return ErrMissingGenesis
		}
		if err := gen.InitializeState(ctx, l); err != nil {
			return fmt.Errorf("failed to initialize ledger: %w", err)
		}
	}

	n.tracer, err = trace.New(cfg.Trace)
	if err != nil {
		return err
	}

	rpcServer := jsonrpc.NewJSONRPCServer(n.log, n.tracer, l, cfg.ValidityWindow)
	rpcHandler, err := jsonrpc.NewHandler(rpcServer)
	if err != nil {
		return err
	}

	listener, err := net.Listen("tcp", cfg.ListenAddress())
	if err != nil {
		return err
	}
	n.server = server.New(
		n.log,
		listener,
		cfg.HTTP,
		cfg.AllowedOrigins,
		cfg.AllowedHosts,
		cfg.ShutdownTimeout,
	)

	errs := wrappers.Errs{}
	errs.Add(
		n.server.AddRoute(rpcHandler.Handler, rpcHandler.Path),
		n.server.AddRoute(promhttp.HandlerFor(reg, promhttp.HandlerOpts{}), MetricsEndpoint),
		n.server.AddRoute(newHealthHandler(n.log, n.db), HealthEndpoint),
	)
	if errs.Err != nil {
		_ = listener.Close()
	}
	return errs.Err
}

// URI is the base address clients should dial.
func (n *Node) URI() string {
	return "http://" + n.server.Addr().String()
}

func (n *Node) Ledger() *ledger.Ledger {
	return n.ledger
}

// Run serves requests until [ctx] is cancelled or the server fails.
func (n *Node) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n.log.Info("serving", zap.String("uri", n.URI()))
		return n.server.Dispatch()
	})
	g.Go(func() error {
		<-gctx.Done()
		return n.server.Shutdown()
	})
	return g.Wait()
}

// Close releases the tracer and the database. The server must already be
// stopped.
func (n *Node) Close() error {
	errs := wrappers.Errs{}
	if n.tracer != nil {
		errs.Add(n.tracer.Close())
	}
	errs.Add(n.db.Close())
	return errs.Err
}
