// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/cockroachdb/pebble"
)

var _ pebble.Logger = logger{}

// logger sends pebble's messages to [log]. Informational messages are logged
// at debug level.
type logger struct {
	log logging.Logger
}

func (l logger) Infof(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...))
}

func (l logger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...))
}

// Fatalf panics after logging, as pebble does not expect it to return.
func (l logger) Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log.Fatal(msg)
	panic(msg)
}
