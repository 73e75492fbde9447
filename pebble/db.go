// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/avalanchego/utils/units"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

var _ database.Database = (*Database)(nil)

type Config struct {
	CacheSize                   int64  `json:"cacheSize"                   mapstructure:"cache-size"`
	BytesPerSync                int    `json:"bytesPerSync"                mapstructure:"bytes-per-sync"`
	WALBytesPerSync             int    `json:"walBytesPerSync"             mapstructure:"wal-bytes-per-sync"`
	MemTableStopWritesThreshold int    `json:"memTableStopWritesThreshold" mapstructure:"mem-table-stop-writes-threshold"`
	MemTableSize                uint64 `json:"memTableSize"                mapstructure:"mem-table-size"`
	MaxOpenFiles                int    `json:"maxOpenFiles"                mapstructure:"max-open-files"`
	ConcurrentCompactions       int    `json:"concurrentCompactions"       mapstructure:"concurrent-compactions"`
	// Sync forces every write to reach stable storage before it returns.
	Sync bool `json:"sync" mapstructure:"sync"`
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:                   256 * units.MiB,
		BytesPerSync:                units.MiB,
		WALBytesPerSync:             0,
		MemTableStopWritesThreshold: 8,
		MemTableSize:                16 * units.MiB,
		MaxOpenFiles:                4_096,
		ConcurrentCompactions:       1,
		Sync:                        true,
	}
}

// Database exposes a pebble instance through the avalanchego database
// interface.
type Database struct {
	lock   sync.RWMutex
	closed bool

	db           *pebble.DB
	writeOptions *pebble.WriteOptions
	metrics      *metrics
}

// New opens (or creates) the database stored at [file]. Pebble's messages go
// to [log] and metrics are registered on [reg].
func New(log logging.Logger, file string, cfg Config, reg prometheus.Registerer) (*Database, error) {
	d := &Database{
		writeOptions: &pebble.WriteOptions{Sync: cfg.Sync},
	}
	m, err := newMetrics(reg, d)
	if err != nil {
		return nil, err
	}
	d.metrics = m

	cache := pebble.NewCache(cfg.CacheSize)
	defer cache.Unref()
	opts := d.options(log, cfg, cache)
	db, err := pebble.Open(file, opts)
	if err != nil {
		return nil, err
	}

	d.lock.Lock()
	d.db = db
	d.lock.Unlock()
	return d, nil
}

func (d *Database) options(log logging.Logger, cfg Config, cache *pebble.Cache) *pebble.Options {
	return &pebble.Options{
		Cache:                       cache,
		BytesPerSync:                cfg.BytesPerSync,
		WALBytesPerSync:             cfg.WALBytesPerSync,
		Comparer:                    pebble.DefaultComparer,
		MemTableStopWritesThreshold: cfg.MemTableStopWritesThreshold,
		MemTableSize:                cfg.MemTableSize,
		MaxOpenFiles:                cfg.MaxOpenFiles,
		MaxConcurrentCompactions:    func() int { return cfg.ConcurrentCompactions },
		Logger:                      logger{log: log},
		EventListener: &pebble.EventListener{
			CompactionBegin: d.onCompactionBegin,
			CompactionEnd:   d.onCompactionEnd,
			WriteStallBegin: d.onWriteStallBegin,
			WriteStallEnd:   d.onWriteStallEnd,
		},
	}
}

func (db *Database) Has(key []byte) (bool, error) {
	_, err := db.Get(key)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, database.ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (db *Database) Get(key []byte) ([]byte, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return nil, database.ErrClosed
	}
	start := time.Now()
	data, closer, err := db.db.Get(key)
	db.metrics.getLatency.Observe(float64(time.Since(start)))
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, database.ErrNotFound
		}
		return nil, err
	}
	// pebble owns [data] until [closer] is closed
	value := slices.Clone(data)
	return value, closer.Close()
}

func (db *Database) Put(key []byte, value []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Set(key, value, db.writeOptions)
}

func (db *Database) Delete(key []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	return db.db.Delete(key, db.writeOptions)
}

func (db *Database) NewBatch() database.Batch {
	return &batch{
		db:    db,
		batch: db.db.NewBatch(),
	}
}

func (db *Database) NewIterator() database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, nil)
}

func (db *Database) NewIteratorWithStart(start []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(start, nil)
}

func (db *Database) NewIteratorWithPrefix(prefix []byte) database.Iterator {
	return db.NewIteratorWithStartAndPrefix(nil, prefix)
}

func (db *Database) NewIteratorWithStartAndPrefix(start, prefix []byte) database.Iterator {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return &database.IteratorError{Err: database.ErrClosed}
	}
	it, err := db.db.NewIter(iterOptions(start, prefix))
	if err != nil {
		return &database.IteratorError{Err: err}
	}
	return &iterator{db: db, iter: it}
}

func (db *Database) Compact(start []byte, limit []byte) error {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return database.ErrClosed
	}
	if limit == nil {
		// pebble requires an explicit upper bound, so compact up to and
		// including the last key.
		it, err := db.db.NewIter(&pebble.IterOptions{})
		if err != nil {
			return err
		}
		if it.Last() {
			limit = append(slices.Clone(it.Key()), 0)
		}
		if err := it.Close(); err != nil {
			return err
		}
		if limit == nil {
			return nil
		}
	}
	if start != nil && bytes.Compare(start, limit) >= 0 {
		return nil
	}
	return db.db.Compact(start, limit, true)
}

func (db *Database) HealthCheck(context.Context) (interface{}, error) {
	db.lock.RLock()
	defer db.lock.RUnlock()

	if db.closed {
		return nil, database.ErrClosed
	}
	return nil, nil
}

func (db *Database) Close() error {
	db.lock.Lock()
	if db.closed {
		db.lock.Unlock()
		return database.ErrClosed
	}
	db.closed = true
	db.lock.Unlock()

	return db.db.Close()
}

func iterOptions(start, prefix []byte) *pebble.IterOptions {
	opts := &pebble.IterOptions{
		LowerBound: prefix,
		UpperBound: prefixUpperBound(prefix),
	}
	if bytes.Compare(start, prefix) > 0 {
		opts.LowerBound = start
	}
	return opts
}

// prefixUpperBound returns the smallest key greater than every key starting
// with [prefix], or nil when no such key exists.
func prefixUpperBound(prefix []byte) []byte {
	upper := slices.Clone(prefix)
	for i := len(upper) - 1; i >= 0; i-- {
		if upper[i] != 0xff {
			upper[i]++
			return upper[:i+1]
		}
	}
	return nil
}
