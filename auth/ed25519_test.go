// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package auth

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/tokenledger/crypto/ed25519"
)

func TestED25519SignVerify(t *testing.T) {
	require := require.New(t)

	priv, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	factory := NewED25519Factory(priv)

	msg := []byte("digest")
	a := factory.Sign(msg)
	require.NoError(a.Verify(msg))
	require.ErrorIs(a.Verify([]byte("other digest")), ErrInvalidSignature)
	require.Equal(factory.Address(), a.Address())
}

func TestED25519AddressDerivation(t *testing.T) {
	require := require.New(t)

	p1, err := ed25519.GeneratePrivateKey()
	require.NoError(err)
	p2, err := ed25519.GeneratePrivateKey()
	require.NoError(err)

	a1 := NewED25519Address(p1.PublicKey())
	require.Equal(ED25519ID, a1[0])
	require.Equal(a1, NewED25519Address(p1.PublicKey()))
	require.NotEqual(a1, NewED25519Address(p2.PublicKey()))
}
