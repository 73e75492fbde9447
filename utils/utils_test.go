// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSubDirectory(t *testing.T) {
	require := require.New(t)
	root := t.TempDir()

	p, err := InitSubDirectory(root, "ledgerdb")
	require.NoError(err)
	require.Equal(filepath.Join(root, "ledgerdb"), p)
	require.DirExists(p)

	// Idempotent
	_, err = InitSubDirectory(root, "ledgerdb")
	require.NoError(err)
}

func TestUnixRMilli(t *testing.T) {
	require := require.New(t)
	require.Equal(int64(12_000), UnixRMilli(10_500, 2_000))
	require.Equal(int64(10_000), UnixRMilli(10_999, 0))
}

func TestToID(t *testing.T) {
	require := require.New(t)
	require.Equal(ToID([]byte("a")), ToID([]byte("a")))
	require.NotEqual(ToID([]byte("a")), ToID([]byte("b")))
}
