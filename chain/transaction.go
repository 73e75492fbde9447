// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"bytes"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"

	"github.com/ava-labs/tokenledger/auth"
	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/emap"
	"github.com/ava-labs/tokenledger/utils"
)

var _ emap.Item = (*Transaction)(nil)

// Transaction is a signed request to apply one Action on behalf of the
// signer.
type Transaction struct {
	Base   Base          `json:"base"`
	Action Action        `json:"action"`
	Auth   *auth.ED25519 `json:"auth"`

	bytes []byte
	id    ids.ID
}

// unsignedTx is the signed payload.
type unsignedTx struct {
	Base   Base
	Action Action
}

// signedTx is the wire encoding of a Transaction.
type signedTx struct {
	Base   Base
	Action Action
	Auth   auth.ED25519
}

func NewTx(base Base, action Action) *Transaction {
	return &Transaction{
		Base:   base,
		Action: action,
	}
}

func (t *Transaction) Digest() ([]byte, error) {
	return borsh.Serialize(unsignedTx{Base: t.Base, Action: t.Action})
}

// Sign authorizes t with [factory] and returns the transaction reloaded
// from its encoding.
func (t *Transaction) Sign(factory *auth.ED25519Factory) (*Transaction, error) {
	msg, err := t.Digest()
	if err != nil {
		return nil, err
	}
	a := factory.Sign(msg)
	b, err := borsh.Serialize(signedTx{Base: t.Base, Action: t.Action, Auth: *a})
	if err != nil {
		return nil, err
	}
	return UnmarshalTx(b)
}

func (t *Transaction) Bytes() []byte { return t.bytes }

func (t *Transaction) ID() ids.ID { return t.id }

func (t *Transaction) Expiry() int64 { return t.Base.Timestamp }

// Sender is the account authorized by the signature.
func (t *Transaction) Sender() codec.Address { return t.Auth.Address() }

// UnmarshalTx decodes a signed transaction and verifies its signature. Only
// the canonical encoding is accepted so every transaction has exactly one ID.
func UnmarshalTx(b []byte) (*Transaction, error) {
	var w signedTx
	if err := borsh.Deserialize(&w, b); err != nil {
		return nil, fmt.Errorf("failed to decode transaction: %w", err)
	}
	canonical, err := borsh.Serialize(w)
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(canonical, b) {
		return nil, ErrNonCanonicalTx
	}
	if err := w.Action.verify(); err != nil {
		return nil, err
	}

	tx := &Transaction{
		Base:   w.Base,
		Action: w.Action,
		Auth:   &w.Auth,
		bytes:  canonical,
		id:     utils.ToID(canonical),
	}
	msg, err := tx.Digest()
	if err != nil {
		return nil, err
	}
	if err := tx.Auth.Verify(msg); err != nil {
		return nil, err
	}
	return tx, nil
}
