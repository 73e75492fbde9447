// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"slices"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
)

var _ database.Iterator = (*iterator)(nil)

type iterator struct {
	db   *Database
	iter *pebble.Iterator

	started  bool
	released bool
	err      error
	key      []byte
	value    []byte
}

func (it *iterator) Next() bool {
	it.db.lock.RLock()
	closed := it.db.closed
	it.db.lock.RUnlock()
	if closed {
		it.err = database.ErrClosed
	}
	if it.released || it.err != nil {
		it.key, it.value = nil, nil
		return false
	}

	var valid bool
	if !it.started {
		it.started = true
		valid = it.iter.First()
	} else {
		valid = it.iter.Next()
	}
	if !valid {
		it.key, it.value = nil, nil
		it.err = it.iter.Error()
		return false
	}
	it.key = slices.Clone(it.iter.Key())
	it.value = slices.Clone(it.iter.Value())
	return true
}

func (it *iterator) Error() error {
	return it.err
}

func (it *iterator) Key() []byte {
	return it.key
}

func (it *iterator) Value() []byte {
	return it.value
}

func (it *iterator) Release() {
	if it.released {
		return
	}
	it.released = true
	it.key, it.value = nil, nil
	if err := it.iter.Close(); err != nil && it.err == nil {
		it.err = err
	}
}
