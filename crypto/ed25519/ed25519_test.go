// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var TestPrivateKey = PrivateKey(
	[PrivateKeyLen]byte{
		32, 241, 118, 222, 210, 13, 164, 128, 3, 18,
		109, 215, 176, 215, 168, 171, 194, 181, 4, 11,
		253, 199, 173, 240, 107, 148, 127, 190, 48, 164,
		12, 48, 115, 50, 124, 153, 59, 53, 196, 150, 168,
		143, 151, 235, 222, 128, 136, 161, 9, 40, 139, 85,
		182, 153, 68, 135, 62, 166, 45, 235, 251, 246, 69, 7,
	},
)

func TestGeneratePrivateKeyDifferent(t *testing.T) {
	require := require.New(t)

	seen := map[PrivateKey]struct{}{}
	for i := 0; i < 10; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		require.NotEqual(EmptyPrivateKey, priv)
		require.NotContains(seen, priv)
		seen[priv] = struct{}{}
	}
}

func TestPublicKeyIsSuffix(t *testing.T) {
	require := require.New(t)
	pub := TestPrivateKey.PublicKey()
	require.Equal(TestPrivateKey[PrivateKeySeedLen:], pub[:])
}

func TestSignVerify(t *testing.T) {
	require := require.New(t)
	msg := []byte("transfer 10 EDU")

	sig := Sign(msg, TestPrivateKey)
	require.True(Verify(msg, TestPrivateKey.PublicKey(), sig))
	require.False(Verify([]byte("transfer 11 EDU"), TestPrivateKey.PublicKey(), sig))

	other, err := GeneratePrivateKey()
	require.NoError(err)
	require.False(Verify(msg, other.PublicKey(), sig))
}

func TestHexRoundTrip(t *testing.T) {
	require := require.New(t)

	parsed, err := HexToKey("0x" + TestPrivateKey.ToHex())
	require.NoError(err)
	require.Equal(TestPrivateKey, parsed)

	_, err = HexToKey("0x0102")
	require.ErrorIs(err, ErrInvalidPrivateKey)
}

func TestSaveLoadKey(t *testing.T) {
	require := require.New(t)
	filename := filepath.Join(t.TempDir(), "key.pk")

	require.NoError(TestPrivateKey.Save(filename))
	loaded, err := LoadKey(filename)
	require.NoError(err)
	require.Equal(TestPrivateKey, loaded)

	_, err = LoadKey(filepath.Join(t.TempDir(), "missing.pk"))
	require.Error(err)
}
