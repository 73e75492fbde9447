// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/ava-labs/tokenledger/consts"
)

// newLogger returns the daemon logger and the function flushing and closing
// its rotating log file.
func newLogger(cfg logging.Config) (logging.Logger, func(), error) {
	factory := logging.NewFactory(cfg)
	log, err := factory.Make(consts.Name)
	if err != nil {
		factory.Close()
		return nil, nil, err
	}
	return log, factory.Close, nil
}
