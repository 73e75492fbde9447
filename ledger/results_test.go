// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultsText(t *testing.T) {
	require := require.New(t)

	b, err := json.Marshal(TransferInsufficientBalance)
	require.NoError(err)
	require.JSONEq(`"InsufficientBalance"`, string(b))

	var tr TransferResult
	require.NoError(json.Unmarshal([]byte(`"SameAccount"`), &tr))
	require.Equal(TransferSameAccount, tr)
	require.ErrorIs(tr.UnmarshalText([]byte("Nope")), errUnknownResult)

	var mr MintResult
	require.NoError(json.Unmarshal([]byte(`"Unauthorized"`), &mr))
	require.Equal(MintUnauthorized, mr)
	require.Equal("MintResult(9)", MintResult(9).String())
}
