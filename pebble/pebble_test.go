// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func newTestDatabase(t testing.TB, dir string) *Database {
	db, err := New(logging.NoLog{}, dir, NewDefaultConfig(), prometheus.NewRegistry())
	require.NoError(t, err)
	return db
}

func TestGetPutDelete(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t, t.TempDir())
	defer func() {
		require.NoError(db.Close())
	}()

	_, err := db.Get([]byte("k"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(db.Put([]byte("k"), []byte("v")))
	v, err := db.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)

	has, err := db.Has([]byte("k"))
	require.NoError(err)
	require.True(has)

	require.NoError(db.Delete([]byte("k")))
	has, err = db.Has([]byte("k"))
	require.NoError(err)
	require.False(has)
}

func TestBatchAtomicAndReplay(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t, t.TempDir())
	defer func() {
		require.NoError(db.Close())
	}()

	require.NoError(db.Put([]byte("gone"), []byte{1}))

	b := db.NewBatch()
	require.NoError(b.Put([]byte("a"), []byte{1}))
	require.NoError(b.Put([]byte("b"), []byte{2}))
	require.NoError(b.Delete([]byte("gone")))
	require.Equal(1+1+1+1+4, b.Size())

	// Nothing is visible until the batch is written.
	_, err := db.Get([]byte("a"))
	require.ErrorIs(err, database.ErrNotFound)

	require.NoError(b.Write())
	v, err := db.Get([]byte("b"))
	require.NoError(err)
	require.Equal([]byte{2}, v)
	_, err = db.Get([]byte("gone"))
	require.ErrorIs(err, database.ErrNotFound)

	other := newTestDatabase(t, t.TempDir())
	defer func() {
		require.NoError(other.Close())
	}()
	require.NoError(other.Put([]byte("gone"), []byte{1}))
	require.NoError(b.Replay(other))
	v, err = other.Get([]byte("a"))
	require.NoError(err)
	require.Equal([]byte{1}, v)
	_, err = other.Get([]byte("gone"))
	require.ErrorIs(err, database.ErrNotFound)

	b.Reset()
	require.Zero(b.Size())
}

func TestIteratorPrefixAndStart(t *testing.T) {
	require := require.New(t)
	db := newTestDatabase(t, t.TempDir())
	defer func() {
		require.NoError(db.Close())
	}()

	for _, k := range []string{"a1", "b1", "b2", "b3", "c1"} {
		require.NoError(db.Put([]byte(k), []byte(k)))
	}

	collect := func(it database.Iterator) []string {
		defer it.Release()
		keys := []string{}
		for it.Next() {
			keys = append(keys, string(it.Key()))
			require.Equal(it.Key(), it.Value())
		}
		require.NoError(it.Error())
		return keys
	}

	require.Equal([]string{"a1", "b1", "b2", "b3", "c1"}, collect(db.NewIterator()))
	require.Equal([]string{"b1", "b2", "b3"}, collect(db.NewIteratorWithPrefix([]byte("b"))))
	require.Equal([]string{"b2", "b3", "c1"}, collect(db.NewIteratorWithStart([]byte("b2"))))
	require.Equal([]string{"b3"}, collect(db.NewIteratorWithStartAndPrefix([]byte("b3"), []byte("b"))))
}

func TestPrefixUpperBound(t *testing.T) {
	require := require.New(t)
	require.Equal([]byte{0x01}, prefixUpperBound([]byte{0x00}))
	require.Equal([]byte{0x02}, prefixUpperBound([]byte{0x01, 0xff}))
	require.Nil(prefixUpperBound([]byte{0xff, 0xff}))
	require.Nil(prefixUpperBound(nil))
}

func TestReopenKeepsData(t *testing.T) {
	require := require.New(t)
	dir := t.TempDir()

	db := newTestDatabase(t, dir)
	require.NoError(db.Put([]byte("k"), []byte("v")))
	require.NoError(db.Compact(nil, nil))
	require.NoError(db.Close())
	require.ErrorIs(db.Close(), database.ErrClosed)

	_, err := db.Get([]byte("k"))
	require.ErrorIs(err, database.ErrClosed)
	_, err = db.HealthCheck(context.Background())
	require.ErrorIs(err, database.ErrClosed)

	db = newTestDatabase(t, dir)
	v, err := db.Get([]byte("k"))
	require.NoError(err)
	require.Equal([]byte("v"), v)
	require.NoError(db.Close())
}

const batchSize = 150_000

func randBytes() []byte {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		panic(err)
	}
	return b
}

func BenchmarkBatchInsertion(b *testing.B) {
	for _, sync := range []bool{false, true} {
		b.Run(fmt.Sprintf("sync=%t", sync), func(b *testing.B) {
			b.StopTimer()
			cfg := NewDefaultConfig()
			cfg.Sync = sync
			db, err := New(logging.NoLog{}, b.TempDir(), cfg, prometheus.NewRegistry())
			if err != nil {
				b.Fatal(err)
			}

			keys := make([][]byte, batchSize)
			for i := 0; i < batchSize; i++ {
				keys[i] = randBytes()
			}

			b.StartTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				batch := db.NewBatch()
				for j := 0; j < batchSize; j++ {
					if err := batch.Put(keys[j], randBytes()); err != nil {
						b.Fatal(err)
					}
				}
				if err := batch.Write(); err != nil {
					b.Fatal(err)
				}
			}
			b.StopTimer()

			if err := db.Close(); err != nil {
				b.Fatal(err)
			}
		})
	}
}
