// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"encoding/binary"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/tokenledger/codec"
	"github.com/ava-labs/tokenledger/consts"
)

// Key layout:
//
//	0x0/address -> balance (big endian uint64, never zero)
//	0x1         -> token info
//	0x2/txID    -> expiry of an accepted transaction (big endian unix ms)
const (
	balancePrefix   byte = 0x0
	tokenInfoPrefix byte = 0x1
	txPrefix        byte = 0x2

	balanceKeyLen = consts.ByteLen + codec.AddressLen
	txKeyLen      = consts.ByteLen + consts.IDLen
)

var tokenInfoKey = []byte{tokenInfoPrefix}

// BalanceKey returns the database key holding the balance of [addr].
func BalanceKey(addr codec.Address) []byte {
	k := make([]byte, balanceKeyLen)
	k[0] = balancePrefix
	copy(k[1:], addr[:])
	return k
}

func addressFromBalanceKey(k []byte) (codec.Address, error) {
	if len(k) != balanceKeyLen || k[0] != balancePrefix {
		return codec.EmptyAddress, fmt.Errorf("%w: malformed balance key %x", ErrCorruptState, k)
	}
	return codec.Address(k[1:]), nil
}

func encodeBalance(amount uint64) []byte {
	return binary.BigEndian.AppendUint64(nil, amount)
}

// decodeBalance rejects zero because zero balances are never stored.
func decodeBalance(v []byte) (uint64, error) {
	if len(v) != consts.Uint64Len {
		return 0, fmt.Errorf("%w: balance has %d bytes", ErrCorruptState, len(v))
	}
	amount := binary.BigEndian.Uint64(v)
	if amount == 0 {
		return 0, fmt.Errorf("%w: stored zero balance", ErrCorruptState)
	}
	return amount, nil
}

func txKey(id ids.ID) []byte {
	k := make([]byte, txKeyLen)
	k[0] = txPrefix
	copy(k[1:], id[:])
	return k
}

func txIDFromKey(k []byte) (ids.ID, error) {
	if len(k) != txKeyLen || k[0] != txPrefix {
		return ids.Empty, fmt.Errorf("%w: malformed tx key %x", ErrCorruptState, k)
	}
	return ids.ID(k[1:]), nil
}

func encodeExpiry(expiry int64) []byte {
	return binary.BigEndian.AppendUint64(nil, uint64(expiry))
}

func decodeExpiry(v []byte) (int64, error) {
	if len(v) != consts.Uint64Len {
		return 0, fmt.Errorf("%w: tx expiry has %d bytes", ErrCorruptState, len(v))
	}
	return int64(binary.BigEndian.Uint64(v)), nil
}
