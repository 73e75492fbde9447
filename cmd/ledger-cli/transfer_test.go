// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"context"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/tokenledger/auth"
	"github.com/ava-labs/tokenledger/chain"
	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/crypto/ed25519"
	"github.com/ava-labs/tokenledger/ledger"
)

var recipient = codec.CreateAddress(auth.ED25519ID, ids.ID{'r'})

// fakeClient fails every call made with an expired context.
type fakeClient struct {
	balance   uint64
	isCreator bool
	submitted []*chain.Transaction
}

func (f *fakeClient) Balance(ctx context.Context, _ codec.Address) (uint64, error) {
	return f.balance, ctx.Err()
}

func (f *fakeClient) IsCreator(ctx context.Context, _ codec.Address) (bool, error) {
	return f.isCreator, ctx.Err()
}

func (f *fakeClient) Transfer(ctx context.Context, tx *chain.Transaction) (ids.ID, ledger.TransferResult, error) {
	if err := ctx.Err(); err != nil {
		return ids.Empty, ledger.TransferSuccess, err
	}
	f.submitted = append(f.submitted, tx)
	return tx.ID(), ledger.TransferSuccess, nil
}

func (f *fakeClient) Mint(ctx context.Context, tx *chain.Transaction) (ids.ID, ledger.MintResult, error) {
	if err := ctx.Err(); err != nil {
		return ids.Empty, ledger.MintSuccess, err
	}
	f.submitted = append(f.submitted, tx)
	return tx.ID(), ledger.MintSuccess, nil
}

func newTestFactory(t *testing.T) *auth.ED25519Factory {
	key, err := ed25519.GeneratePrivateKey()
	require.NoError(t, err)
	return auth.NewED25519Factory(key)
}

// slowInputs answers after outlasting the request timeout, like a user
// taking their time at the prompt.
func slowInputs(t *testing.T, amount uint64) inputsFunc {
	return func(maxAmount uint64) (codec.Address, uint64, error) {
		require.LessOrEqual(t, amount, maxAmount)
		time.Sleep(3 * requestTimeout)
		return recipient, amount, nil
	}
}

func shortTimeout(t *testing.T) {
	prev := requestTimeout
	requestTimeout = 50 * time.Millisecond
	t.Cleanup(func() { requestTimeout = prev })
}

func TestSubmitTransferAfterSlowPrompt(t *testing.T) {
	require := require.New(t)
	shortTimeout(t)

	client := &fakeClient{balance: 100}
	resp, err := submitTransfer(client, newTestFactory(t), slowInputs(t, 40))
	require.NoError(err)
	require.Len(client.submitted, 1)
	require.Equal(client.submitted[0].ID(), resp.TxID)
	require.Equal(recipient, resp.To)
	require.Equal(uint64(40), resp.Amount)
	require.Equal(ledger.TransferSuccess.String(), resp.Result)
}

func TestSubmitMintAfterSlowPrompt(t *testing.T) {
	require := require.New(t)
	shortTimeout(t)

	client := &fakeClient{isCreator: true}
	resp, err := submitMint(client, newTestFactory(t), slowInputs(t, 500))
	require.NoError(err)
	require.Len(client.submitted, 1)
	require.Equal(ledger.MintSuccess.String(), resp.Result)
}

func TestSubmitMintRequiresIssuer(t *testing.T) {
	require := require.New(t)

	client := &fakeClient{}
	_, err := submitMint(client, newTestFactory(t), func(uint64) (codec.Address, uint64, error) {
		require.FailNow("prompted a caller who cannot mint")
		return codec.EmptyAddress, 0, nil
	})
	require.ErrorIs(err, errNotIssuer)
	require.Empty(client.submitted)
}
