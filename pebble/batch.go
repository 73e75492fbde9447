// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"slices"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"
)

var _ database.Batch = (*batch)(nil)

type batchOp struct {
	key    []byte
	value  []byte
	delete bool
}

// batch commits all of its writes atomically. Operations are also kept in
// insertion order so they can be replayed onto another writer.
type batch struct {
	db    *Database
	batch *pebble.Batch
	ops   []batchOp
	size  int
}

func (b *batch) Put(key, value []byte) error {
	if err := b.batch.Set(key, value, nil); err != nil {
		return err
	}
	b.ops = append(b.ops, batchOp{key: slices.Clone(key), value: slices.Clone(value)})
	b.size += len(key) + len(value)
	return nil
}

func (b *batch) Delete(key []byte) error {
	if err := b.batch.Delete(key, nil); err != nil {
		return err
	}
	b.ops = append(b.ops, batchOp{key: slices.Clone(key), delete: true})
	b.size += len(key)
	return nil
}

func (b *batch) Size() int {
	return b.size
}

func (b *batch) Write() error {
	b.db.lock.RLock()
	defer b.db.lock.RUnlock()

	if b.db.closed {
		return database.ErrClosed
	}
	start := time.Now()
	err := b.batch.Commit(b.db.writeOptions)
	b.db.metrics.writeLatency.Observe(float64(time.Since(start)))
	return err
}

func (b *batch) Reset() {
	b.batch.Reset()
	b.ops = b.ops[:0]
	b.size = 0
}

func (b *batch) Replay(w database.KeyValueWriterDeleter) error {
	for _, op := range b.ops {
		var err error
		if op.delete {
			err = w.Delete(op.key)
		} else {
			err = w.Put(op.key, op.value)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (b *batch) Inner() database.Batch {
	return b
}
