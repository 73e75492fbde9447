// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/tokenledger/pebble"
	"github.com/ava-labs/tokenledger/utils"
)

// New opens the pebble database kept under [dataDir]/[namespace] and
// registers its metrics on [reg] prefixed by [namespace].
func New(
	log logging.Logger,
	cfg pebble.Config,
	dataDir string,
	namespace string,
	reg prometheus.Registerer,
) (database.Database, error) {
	path, err := utils.InitSubDirectory(dataDir, namespace)
	if err != nil {
		return nil, err
	}

	db, err := pebble.New(log, path, cfg, prometheus.WrapRegistererWithPrefix(namespace+"_", reg))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s at %s: %w", namespace, path, err)
	}
	return db, nil
}
