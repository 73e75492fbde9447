// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava-labs/tokenledger/crypto/ed25519"
)

func TestPrivateKeyFromString(t *testing.T) {
	require := require.New(t)

	key, err := ed25519.GeneratePrivateKey()
	require.NoError(err)

	parsed, err := privateKeyFromString(key.ToHex())
	require.NoError(err)
	require.Equal(key, parsed)

	file := filepath.Join(t.TempDir(), "key")
	require.NoError(os.WriteFile(file, key[:], 0o600))
	parsed, err = privateKeyFromString(file)
	require.NoError(err)
	require.Equal(key, parsed)

	_, err = privateKeyFromString("0x1234")
	require.ErrorIs(err, ed25519.ErrInvalidPrivateKey)

	_, err = privateKeyFromString(filepath.Join(t.TempDir(), "missing"))
	require.Error(err)
}
