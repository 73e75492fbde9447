// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"time"

	"github.com/ava-labs/avalanchego/utils/metric"
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/cockroachdb/pebble"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pebble"

type metrics struct {
	stallStart time.Time
	writeStall metric.Averager

	getLatency   metric.Averager
	writeLatency metric.Averager

	// compactions is labeled by the level compacted from: "l0" or "l1+"
	compactions       *prometheus.CounterVec
	activeCompactions prometheus.Gauge
}

func newMetrics(r prometheus.Registerer, db *Database) (*metrics, error) {
	m := &metrics{
		compactions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "compactions",
			Help:      "number of compactions started",
		}, []string{"level"}),
		activeCompactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_compactions",
			Help:      "number of running compactions",
		}),
	}
	var err error
	if m.writeStall, err = metric.NewAverager("pebble_write_stall", "time spent stalled waiting for disk writes", r); err != nil {
		return nil, err
	}
	if m.getLatency, err = metric.NewAverager("pebble_read_latency", "time spent on a get", r); err != nil {
		return nil, err
	}
	if m.writeLatency, err = metric.NewAverager("pebble_batch_write_latency", "time spent committing a batch", r); err != nil {
		return nil, err
	}

	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.compactions),
		r.Register(m.activeCompactions),
		r.Register(&statsCollector{db: db}),
	)
	return m, errs.Err
}

// stat is a value read from pebble's own metrics on every scrape.
type stat struct {
	desc      *prometheus.Desc
	valueType prometheus.ValueType
	value     func(*pebble.Metrics) float64
}

func newStat(name, help string, valueType prometheus.ValueType, value func(*pebble.Metrics) float64) stat {
	return stat{
		desc:      prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, nil),
		valueType: valueType,
		value:     value,
	}
}

var stats = []stat{
	newStat("disk_usage_bytes", "bytes used on disk by tables and WAL", prometheus.GaugeValue,
		func(m *pebble.Metrics) float64 { return float64(m.DiskSpaceUsage()) }),
	newStat("read_amplification", "number of sublevels a read may visit", prometheus.GaugeValue,
		func(m *pebble.Metrics) float64 { return float64(m.ReadAmp()) }),
	newStat("l0_files", "number of tables in level 0", prometheus.GaugeValue,
		func(m *pebble.Metrics) float64 { return float64(m.Levels[0].NumFiles) }),
	newStat("memtable_size_bytes", "bytes allocated by memtables", prometheus.GaugeValue,
		func(m *pebble.Metrics) float64 { return float64(m.MemTable.Size) }),
	newStat("tombstone_count", "approximate count of internal tombstones", prometheus.GaugeValue,
		func(m *pebble.Metrics) float64 { return float64(m.Keys.TombstoneCount) }),
	newStat("obsolete_table_size_bytes", "bytes in tables no longer referenced", prometheus.GaugeValue,
		func(m *pebble.Metrics) float64 { return float64(m.Table.ObsoleteSize) }),
	newStat("zombie_table_size_bytes", "bytes in unreferenced tables still held by iterators", prometheus.GaugeValue,
		func(m *pebble.Metrics) float64 { return float64(m.Table.ZombieSize) }),
	newStat("wal_files", "number of live WAL files", prometheus.GaugeValue,
		func(m *pebble.Metrics) float64 { return float64(m.WAL.Files) }),
	newStat("flushes", "number of memtable flushes", prometheus.CounterValue,
		func(m *pebble.Metrics) float64 { return float64(m.Flush.Count) }),
	newStat("block_cache_hits", "block cache hits", prometheus.CounterValue,
		func(m *pebble.Metrics) float64 { return float64(m.BlockCache.Hits) }),
	newStat("block_cache_misses", "block cache misses", prometheus.CounterValue,
		func(m *pebble.Metrics) float64 { return float64(m.BlockCache.Misses) }),
}

// statsCollector reports [stats] at scrape time. A closed database reports
// nothing.
type statsCollector struct {
	db *Database
}

func (*statsCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, s := range stats {
		ch <- s.desc
	}
}

func (c *statsCollector) Collect(ch chan<- prometheus.Metric) {
	c.db.lock.RLock()
	if c.db.closed || c.db.db == nil {
		c.db.lock.RUnlock()
		return
	}
	m := c.db.db.Metrics()
	c.db.lock.RUnlock()

	for _, s := range stats {
		ch <- prometheus.MustNewConstMetric(s.desc, s.valueType, s.value(m))
	}
}

func (db *Database) onCompactionBegin(info pebble.CompactionInfo) {
	db.metrics.activeCompactions.Inc()
	level := "l1+"
	if len(info.Input) > 0 && info.Input[0].Level == 0 {
		level = "l0"
	}
	db.metrics.compactions.WithLabelValues(level).Inc()
}

func (db *Database) onCompactionEnd(pebble.CompactionInfo) {
	db.metrics.activeCompactions.Dec()
}

func (db *Database) onWriteStallBegin(pebble.WriteStallBeginInfo) {
	db.metrics.stallStart = time.Now()
}

func (db *Database) onWriteStallEnd() {
	db.metrics.writeStall.Observe(float64(time.Since(db.metrics.stallStart)))
}
