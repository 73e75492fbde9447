// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc

import (
	"context"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/rpc"

	"github.com/ava-labs/tokenledger/api"
	"github.com/ava-labs/tokenledger/chain"
	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/ledger"
)

type JSONRPCClient struct {
	requester rpc.EndpointRequester
}

// NewJSONRPCClient returns a client for the node listening at [uri].
func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += Endpoint
	return &JSONRPCClient{requester: rpc.NewEndpointRequester(uri)}
}

func (cli *JSONRPCClient) Ping(ctx context.Context) (bool, error) {
	resp := new(PingReply)
	err := cli.requester.SendRequest(ctx,
		api.Name+".ping",
		nil,
		resp,
	)
	return resp.Success, err
}

func (cli *JSONRPCClient) TokenInfo(ctx context.Context) (ledger.TokenInfo, error) {
	resp := new(TokenInfoReply)
	err := cli.requester.SendRequest(
		ctx,
		api.Name+".tokenInfo",
		nil,
		resp,
	)
	return ledger.TokenInfo{
		Name:        resp.Name,
		Symbol:      resp.Symbol,
		TotalSupply: resp.TotalSupply,
		Issuer:      resp.Issuer,
	}, err
}

func (cli *JSONRPCClient) Balance(ctx context.Context, addr codec.Address) (uint64, error) {
	resp := new(BalanceReply)
	err := cli.requester.SendRequest(
		ctx,
		api.Name+".balance",
		&AddressArgs{Address: addr},
		resp,
	)
	return resp.Amount, err
}

func (cli *JSONRPCClient) TotalSupply(ctx context.Context) (uint64, error) {
	resp := new(TotalSupplyReply)
	err := cli.requester.SendRequest(
		ctx,
		api.Name+".totalSupply",
		nil,
		resp,
	)
	return resp.Amount, err
}

func (cli *JSONRPCClient) Users(ctx context.Context) ([]ledger.Entry, error) {
	resp := new(UsersReply)
	err := cli.requester.SendRequest(
		ctx,
		api.Name+".users",
		nil,
		resp,
	)
	return resp.Users, err
}

func (cli *JSONRPCClient) IsCreator(ctx context.Context, addr codec.Address) (bool, error) {
	resp := new(IsCreatorReply)
	err := cli.requester.SendRequest(
		ctx,
		api.Name+".isCreator",
		&AddressArgs{Address: addr},
		resp,
	)
	return resp.IsCreator, err
}

// Transfer submits a signed transaction carrying a transfer action.
func (cli *JSONRPCClient) Transfer(ctx context.Context, tx *chain.Transaction) (ids.ID, ledger.TransferResult, error) {
	resp := new(TransferReply)
	err := cli.requester.SendRequest(
		ctx,
		api.Name+".transfer",
		&SubmitTxArgs{Tx: tx.Bytes()},
		resp,
	)
	return resp.TxID, resp.Result, err
}

// Mint submits a signed transaction carrying a mint action.
func (cli *JSONRPCClient) Mint(ctx context.Context, tx *chain.Transaction) (ids.ID, ledger.MintResult, error) {
	resp := new(MintReply)
	err := cli.requester.SendRequest(
		ctx,
		api.Name+".mint",
		&SubmitTxArgs{Tx: tx.Bytes()},
		resp,
	)
	return resp.TxID, resp.Result, err
}
