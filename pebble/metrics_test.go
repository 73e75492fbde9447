// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	families, err := reg.Gather()
	require.NoError(t, err)
	byName := make(map[string]*dto.MetricFamily, len(families))
	for _, f := range families {
		byName[f.GetName()] = f
	}
	return byName
}

func TestStatsReadAtScrape(t *testing.T) {
	require := require.New(t)
	reg := prometheus.NewRegistry()
	db, err := New(logging.NoLog{}, t.TempDir(), NewDefaultConfig(), reg)
	require.NoError(err)

	for i := 0; i < 100; i++ {
		require.NoError(db.Put(randBytes(), randBytes()))
	}
	require.NoError(db.db.Flush())

	families := gather(t, reg)
	for _, name := range []string{
		"pebble_disk_usage_bytes",
		"pebble_read_amplification",
		"pebble_l0_files",
		"pebble_memtable_size_bytes",
		"pebble_tombstone_count",
		"pebble_obsolete_table_size_bytes",
		"pebble_zombie_table_size_bytes",
		"pebble_wal_files",
		"pebble_flushes",
		"pebble_block_cache_hits",
		"pebble_block_cache_misses",
	} {
		require.Contains(families, name)
	}
	require.Len(stats, 11)
	flushes, ok := families["pebble_flushes"]
	require.True(ok)
	require.Equal(dto.MetricType_COUNTER, flushes.GetType())
	require.GreaterOrEqual(flushes.GetMetric()[0].GetCounter().GetValue(), 1.0)

	usage, ok := families["pebble_disk_usage_bytes"]
	require.True(ok)
	require.Positive(usage.GetMetric()[0].GetGauge().GetValue())

	// A closed database is no longer scraped.
	require.NoError(db.Close())
	families = gather(t, reg)
	require.NotContains(families, "pebble_flushes")
	require.Contains(families, "pebble_read_latency_count")
}
