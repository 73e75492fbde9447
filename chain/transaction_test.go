// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/tokenledger/auth"
	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/crypto/ed25519"
)

const now = int64(1_700_000_000_000)

func newFactory(t *testing.T) *auth.ED25519Factory {
	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(t, err)
	return auth.NewED25519Factory(priv)
}

func TestSignAndUnmarshal(t *testing.T) {
	require := require.New(t)
	factory := newFactory(t)
	to := codec.CreateAddress(auth.ED25519ID, ids.GenerateTestID())

	tx, err := NewTx(Base{Timestamp: now + 10_000, Nonce: 7}, NewTransfer(to, 400)).Sign(factory)
	require.NoError(err)
	require.Equal(factory.Address(), tx.Sender())
	require.NotEqual(ids.Empty, tx.ID())

	parsed, err := UnmarshalTx(tx.Bytes())
	require.NoError(err)
	require.Equal(tx.ID(), parsed.ID())
	require.Equal(NewTransfer(to, 400), parsed.Action)
	require.Equal(tx.Base, parsed.Base)
	require.Equal("transfer", parsed.Action.Name())
}

func TestUnmarshalRejectsTampering(t *testing.T) {
	require := require.New(t)
	factory := newFactory(t)
	to := codec.CreateAddress(auth.ED25519ID, ids.GenerateTestID())

	tx, err := NewTx(Base{Timestamp: now}, NewMint(to, 500)).Sign(factory)
	require.NoError(err)

	// Flip a byte of the value, which is covered by the signature.
	b := append([]byte{}, tx.Bytes()...)
	b[8+8+1+codec.AddressLen] ^= 0x1
	_, err = UnmarshalTx(b)
	require.ErrorIs(err, auth.ErrInvalidSignature)

	// Trailing bytes would give the same transaction a second ID.
	_, err = UnmarshalTx(append(append([]byte{}, tx.Bytes()...), 0))
	require.Error(err)

	_, err = UnmarshalTx(tx.Bytes()[:10])
	require.Error(err)
}

func TestUnmarshalRejectsUnknownAction(t *testing.T) {
	require := require.New(t)
	factory := newFactory(t)

	_, err := NewTx(Base{Timestamp: now}, Action{TypeID: 9}).Sign(factory)
	require.ErrorIs(err, ErrInvalidAction)
}

func TestBaseExecute(t *testing.T) {
	window := int64(60_000)
	tests := []struct {
		name        string
		timestamp   int64
		expectedErr error
	}{
		{
			name:      "at now",
			timestamp: now,
		},
		{
			name:      "end of window",
			timestamp: now + window,
		},
		{
			name:        "expired",
			timestamp:   now - 1_000,
			expectedErr: ErrTimestampTooLate,
		},
		{
			name:        "beyond window",
			timestamp:   now + window + 1_000,
			expectedErr: ErrTimestampTooEarly,
		},
		{
			name:        "misaligned",
			timestamp:   now + 1,
			expectedErr: ErrMisalignedTime,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Base{Timestamp: tt.timestamp}
			require.ErrorIs(t, b.Execute(now, window), tt.expectedErr)
		})
	}
}
