// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package node_test

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/tokenledger/api/jsonrpc"
	"github.com/ava-labs/tokenledger/auth"
	"github.com/ava-labs/tokenledger/chain"
	"github.com/ava-labs/tokenledger/config"
	"github.com/ava-labs/tokenledger/crypto/ed25519"
	"github.com/ava-labs/tokenledger/genesis"
	"github.com/ava-labs/tokenledger/ledger"
	"github.com/ava-labs/tokenledger/node"
	"github.com/ava-labs/tokenledger/utils"

	ginkgo "github.com/onsi/ginkgo/v2"
	gomega "github.com/onsi/gomega"
)

func TestE2e(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "ledger node e2e test suites")
}

type runningNode struct {
	node   *node.Node
	client *jsonrpc.JSONRPCClient
	cancel context.CancelFunc
	done   chan error
}

func start(cfg config.Config, gen *genesis.Genesis) *runningNode {
	require := require.New(ginkgo.GinkgoT())

	n, err := node.New(context.Background(), cfg, gen, logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- n.Run(ctx)
	}()

	client := jsonrpc.NewJSONRPCClient(n.URI())
	gomega.Eventually(func() bool {
		ok, err := client.Ping(context.Background())
		return err == nil && ok
	}).WithTimeout(5 * time.Second).Should(gomega.BeTrue())

	return &runningNode{
		node:   n,
		client: client,
		cancel: cancel,
		done:   done,
	}
}

func (r *runningNode) stop() {
	require := require.New(ginkgo.GinkgoT())

	r.cancel()
	gomega.Eventually(r.done).WithTimeout(5 * time.Second).Should(gomega.Receive(gomega.BeNil()))
	require.NoError(r.node.Close())
}

var _ = ginkgo.Describe("[Ledger]", func() {
	var (
		cfg    config.Config
		issuer *auth.ED25519Factory
		alice  *auth.ED25519Factory
		n      *runningNode
		nonce  uint64
	)

	sign := func(factory *auth.ED25519Factory, action chain.Action) *chain.Transaction {
		nonce++
		base := chain.Base{
			Timestamp: utils.UnixRMilli(-1, cfg.ValidityWindow.Milliseconds()),
			Nonce:     nonce,
		}
		tx, err := chain.NewTx(base, action).Sign(factory)
		require.NoError(ginkgo.GinkgoT(), err)
		return tx
	}

	ginkgo.BeforeEach(func() {
		require := require.New(ginkgo.GinkgoT())

		cfg = config.NewDefaultConfig()
		cfg.DataDir = ginkgo.GinkgoT().TempDir()
		cfg.HTTPPort = 0

		issuerKey, err := ed25519.GeneratePrivateKey()
		require.NoError(err)
		aliceKey, err := ed25519.GeneratePrivateKey()
		require.NoError(err)
		issuer = auth.NewED25519Factory(issuerKey)
		alice = auth.NewED25519Factory(aliceKey)

		n = start(cfg, genesis.Default(issuer.Address()))
	})

	ginkgo.AfterEach(func() {
		if n != nil {
			n.stop()
			n = nil
		}
	})

	ginkgo.It("serves the genesis token", func() {
		require := require.New(ginkgo.GinkgoT())
		ctx := context.Background()

		info, err := n.client.TokenInfo(ctx)
		require.NoError(err)
		require.Equal(ledger.TokenInfo{
			Name:        "EduCoin",
			Symbol:      "EDU",
			TotalSupply: 1_000_000,
			Issuer:      issuer.Address(),
		}, info)

		isCreator, err := n.client.IsCreator(ctx, issuer.Address())
		require.NoError(err)
		require.True(isCreator)
		isCreator, err = n.client.IsCreator(ctx, alice.Address())
		require.NoError(err)
		require.False(isCreator)

		users, err := n.client.Users(ctx)
		require.NoError(err)
		require.Equal([]ledger.Entry{{Address: issuer.Address(), Amount: 1_000_000}}, users)
	})

	ginkgo.It("transfers and mints", func() {
		require := require.New(ginkgo.GinkgoT())
		ctx := context.Background()

		_, transferResult, err := n.client.Transfer(ctx, sign(issuer, chain.NewTransfer(alice.Address(), 250)))
		require.NoError(err)
		require.Equal(ledger.TransferSuccess, transferResult)

		_, transferResult, err = n.client.Transfer(ctx, sign(alice, chain.NewTransfer(issuer.Address(), 251)))
		require.NoError(err)
		require.Equal(ledger.TransferInsufficientBalance, transferResult)

		_, transferResult, err = n.client.Transfer(ctx, sign(alice, chain.NewTransfer(alice.Address(), 1)))
		require.NoError(err)
		require.Equal(ledger.TransferSameAccount, transferResult)

		_, mintResult, err := n.client.Mint(ctx, sign(alice, chain.NewMint(alice.Address(), 10)))
		require.NoError(err)
		require.Equal(ledger.MintUnauthorized, mintResult)

		_, mintResult, err = n.client.Mint(ctx, sign(issuer, chain.NewMint(alice.Address(), 10)))
		require.NoError(err)
		require.Equal(ledger.MintSuccess, mintResult)

		balance, err := n.client.Balance(ctx, alice.Address())
		require.NoError(err)
		require.Equal(uint64(260), balance)

		supply, err := n.client.TotalSupply(ctx)
		require.NoError(err)
		require.Equal(uint64(1_000_010), supply)

		// Moving the whole balance away removes the account.
		_, transferResult, err = n.client.Transfer(ctx, sign(alice, chain.NewTransfer(issuer.Address(), 260)))
		require.NoError(err)
		require.Equal(ledger.TransferSuccess, transferResult)

		users, err := n.client.Users(ctx)
		require.NoError(err)
		require.Equal([]ledger.Entry{{Address: issuer.Address(), Amount: 1_000_010}}, users)
	})

	ginkgo.It("rejects replayed transactions", func() {
		require := require.New(ginkgo.GinkgoT())
		ctx := context.Background()

		tx := sign(issuer, chain.NewTransfer(alice.Address(), 1))
		_, _, err := n.client.Transfer(ctx, tx)
		require.NoError(err)
		_, _, err = n.client.Transfer(ctx, tx)
		require.ErrorContains(err, ledger.ErrDuplicateTx.Error())

		balance, err := n.client.Balance(ctx, alice.Address())
		require.NoError(err)
		require.Equal(uint64(1), balance)
	})

	ginkgo.It("rejects a transaction replayed after a restart", func() {
		require := require.New(ginkgo.GinkgoT())
		ctx := context.Background()

		tx := sign(issuer, chain.NewTransfer(alice.Address(), 100))
		_, transferResult, err := n.client.Transfer(ctx, tx)
		require.NoError(err)
		require.Equal(ledger.TransferSuccess, transferResult)

		// A rejected transaction is remembered too.
		refused := sign(alice, chain.NewTransfer(issuer.Address(), 101))
		_, transferResult, err = n.client.Transfer(ctx, refused)
		require.NoError(err)
		require.Equal(ledger.TransferInsufficientBalance, transferResult)

		n.stop()
		n = start(cfg, nil)

		_, _, err = n.client.Transfer(ctx, tx)
		require.ErrorContains(err, ledger.ErrDuplicateTx.Error())
		_, _, err = n.client.Transfer(ctx, refused)
		require.ErrorContains(err, ledger.ErrDuplicateTx.Error())

		balance, err := n.client.Balance(ctx, alice.Address())
		require.NoError(err)
		require.Equal(uint64(100), balance)
		balance, err = n.client.Balance(ctx, issuer.Address())
		require.NoError(err)
		require.Equal(uint64(999_900), balance)
	})

	ginkgo.It("reloads state after a restart", func() {
		require := require.New(ginkgo.GinkgoT())
		ctx := context.Background()

		_, transferResult, err := n.client.Transfer(ctx, sign(issuer, chain.NewTransfer(alice.Address(), 400)))
		require.NoError(err)
		require.Equal(ledger.TransferSuccess, transferResult)

		n.stop()
		n = start(cfg, nil)

		balance, err := n.client.Balance(ctx, alice.Address())
		require.NoError(err)
		require.Equal(uint64(400), balance)
		balance, err = n.client.Balance(ctx, issuer.Address())
		require.NoError(err)
		require.Equal(uint64(999_600), balance)

		isCreator, err := n.client.IsCreator(ctx, issuer.Address())
		require.NoError(err)
		require.True(isCreator)
	})

	ginkgo.It("exposes metrics and health", func() {
		require := require.New(ginkgo.GinkgoT())

		for endpoint, expected := range map[string]string{
			node.MetricsEndpoint: "ledger_total_supply 1e+06",
			node.HealthEndpoint:  `"healthy":true`,
		} {
			resp, err := http.Get(n.node.URI() + endpoint)
			require.NoError(err)
			body, err := io.ReadAll(resp.Body)
			require.NoError(err)
			require.NoError(resp.Body.Close())
			require.Equal(http.StatusOK, resp.StatusCode)
			require.Contains(string(body), expected)
		}
	})
})
