// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package jsonrpc

import (
	"fmt"
	"net/http"
	"time"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/tokenledger/api"
	"github.com/ava-labs/tokenledger/chain"
	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/ledger"
	"github.com/ava-labs/tokenledger/trace"
)

const Endpoint = "/ledgerapi"

// NewHandler returns the JSON-RPC service mounted at [Endpoint].
func NewHandler(server *JSONRPCServer) (api.Handler, error) {
	handler, err := api.NewJSONRPCHandler(api.Name, server)
	if err != nil {
		return api.Handler{}, err
	}
	return api.Handler{
		Path:    Endpoint,
		Handler: handler,
	}, nil
}

type JSONRPCServer struct {
	log    logging.Logger
	tracer trace.Tracer
	ledger api.Ledger

	// validityWindow bounds how far in the future a transaction may expire,
	// in milliseconds
	validityWindow int64

	// now returns the current unix time in milliseconds
	now func() int64
}

func NewJSONRPCServer(
	log logging.Logger,
	tracer trace.Tracer,
	l api.Ledger,
	validityWindow time.Duration,
) *JSONRPCServer {
	return &JSONRPCServer{
		log:            log,
		tracer:         tracer,
		ledger:         l,
		validityWindow: validityWindow.Milliseconds(),
		now:            func() int64 { return time.Now().UnixMilli() },
	}
}

type PingReply struct {
	Success bool `json:"success"`
}

func (j *JSONRPCServer) Ping(_ *http.Request, _ *struct{}, reply *PingReply) error {
	j.log.Info("ping")
	reply.Success = true
	return nil
}

type TokenInfoReply struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol"`
	TotalSupply uint64        `json:"totalSupply"`
	Issuer      codec.Address `json:"issuer"`
}

func (j *JSONRPCServer) TokenInfo(req *http.Request, _ *struct{}, reply *TokenInfoReply) error {
	_, span := j.tracer.Start(req.Context(), "JSONRPCServer.TokenInfo")
	defer span.End()

	info := j.ledger.TokenInfo()
	reply.Name = info.Name
	reply.Symbol = info.Symbol
	reply.TotalSupply = info.TotalSupply
	reply.Issuer = info.Issuer
	return nil
}

type AddressArgs struct {
	Address codec.Address `json:"address"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *AddressArgs, reply *BalanceReply) error {
	_, span := j.tracer.Start(req.Context(), "JSONRPCServer.Balance")
	defer span.End()

	reply.Amount = j.ledger.Balance(args.Address)
	return nil
}

type TotalSupplyReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) TotalSupply(req *http.Request, _ *struct{}, reply *TotalSupplyReply) error {
	_, span := j.tracer.Start(req.Context(), "JSONRPCServer.TotalSupply")
	defer span.End()

	reply.Amount = j.ledger.TotalSupply()
	return nil
}

type UsersReply struct {
	Users []ledger.Entry `json:"users"`
}

func (j *JSONRPCServer) Users(req *http.Request, _ *struct{}, reply *UsersReply) error {
	_, span := j.tracer.Start(req.Context(), "JSONRPCServer.Users")
	defer span.End()

	reply.Users = j.ledger.Users()
	return nil
}

type IsCreatorReply struct {
	IsCreator bool `json:"isCreator"`
}

func (j *JSONRPCServer) IsCreator(req *http.Request, args *AddressArgs, reply *IsCreatorReply) error {
	_, span := j.tracer.Start(req.Context(), "JSONRPCServer.IsCreator")
	defer span.End()

	reply.IsCreator = j.ledger.IsCreator(args.Address)
	return nil
}

type SubmitTxArgs struct {
	Tx codec.Bytes `json:"tx"`
}

type TransferReply struct {
	TxID   ids.ID                `json:"txId"`
	Result ledger.TransferResult `json:"result"`
}

func (j *JSONRPCServer) Transfer(req *http.Request, args *SubmitTxArgs, reply *TransferReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.Transfer")
	defer span.End()

	tx, err := j.admit(args.Tx, chain.TransferID)
	if err != nil {
		return err
	}
	result, err := j.ledger.TransferTx(ctx, tx, tx.Sender(), tx.Action.To, tx.Action.Value)
	if err != nil {
		j.log.Error("transfer failed",
			zap.Stringer("txID", tx.ID()),
			zap.Error(err),
		)
		return err
	}
	reply.TxID = tx.ID()
	reply.Result = result
	return nil
}

type MintReply struct {
	TxID   ids.ID            `json:"txId"`
	Result ledger.MintResult `json:"result"`
}

func (j *JSONRPCServer) Mint(req *http.Request, args *SubmitTxArgs, reply *MintReply) error {
	ctx, span := j.tracer.Start(req.Context(), "JSONRPCServer.Mint")
	defer span.End()

	tx, err := j.admit(args.Tx, chain.MintID)
	if err != nil {
		return err
	}
	result, err := j.ledger.MintTx(ctx, tx, tx.Sender(), tx.Action.To, tx.Action.Value)
	if err != nil {
		j.log.Error("mint failed",
			zap.Stringer("txID", tx.ID()),
			zap.Error(err),
		)
		return err
	}
	reply.TxID = tx.ID()
	reply.Result = result
	return nil
}

// admit decodes and authenticates a signed transaction carrying an action
// of [typeID] that has not expired. The ledger rejects it if it was already
// applied.
func (j *JSONRPCServer) admit(b []byte, typeID uint8) (*chain.Transaction, error) {
	tx, err := chain.UnmarshalTx(b)
	if err != nil {
		return nil, fmt.Errorf("%w: unable to unmarshal on public service", err)
	}
	if tx.Action.TypeID != typeID {
		return nil, fmt.Errorf("%w: got %s", chain.ErrUnexpectedAction, tx.Action.Name())
	}
	if err := tx.Base.Execute(j.now(), j.validityWindow); err != nil {
		return nil, err
	}
	return tx, nil
}
