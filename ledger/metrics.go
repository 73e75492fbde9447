// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/tokenledger/consts"
)

const resultLabel = "result"

type metrics struct {
	transfers   *prometheus.CounterVec
	mints       *prometheus.CounterVec
	totalSupply prometheus.Gauge
	accounts    prometheus.Gauge
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "transfers",
			Help:      "number of transfers by result",
		}, []string{resultLabel}),
		mints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: consts.Name,
			Name:      "mints",
			Help:      "number of mints by result",
		}, []string{resultLabel}),
		totalSupply: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: consts.Name,
			Name:      "total_supply",
			Help:      "current total supply",
		}),
		accounts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: consts.Name,
			Name:      "accounts",
			Help:      "number of accounts holding a nonzero balance",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.transfers),
		r.Register(m.mints),
		r.Register(m.totalSupply),
		r.Register(m.accounts),
	)
	return m, errs.Err
}
