// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingLogger struct {
	logging.NoLog
	debug, errs, fatal []string
}

func (r *recordingLogger) Debug(msg string, _ ...zap.Field) { r.debug = append(r.debug, msg) }

func (r *recordingLogger) Error(msg string, _ ...zap.Field) { r.errs = append(r.errs, msg) }

func (r *recordingLogger) Fatal(msg string, _ ...zap.Field) { r.fatal = append(r.fatal, msg) }

func TestLoggerLevels(t *testing.T) {
	require := require.New(t)
	rec := &recordingLogger{}
	l := logger{log: rec}

	l.Infof("replayed %d WAL records", 3)
	l.Errorf("background error: %s", "disk full")
	require.Equal([]string{"replayed 3 WAL records"}, rec.debug)
	require.Equal([]string{"background error: disk full"}, rec.errs)

	require.PanicsWithValue("corrupt manifest 7", func() {
		l.Fatalf("corrupt manifest %d", 7)
	})
	require.Equal([]string{"corrupt manifest 7"}, rec.fatal)
}

func TestOptionsLogThroughLogger(t *testing.T) {
	require := require.New(t)
	rec := &recordingLogger{}
	d := &Database{}

	opts := d.options(rec, NewDefaultConfig(), nil)
	opts.Logger.Infof("opened %s", "ledger")
	require.Equal([]string{"opened ledger"}, rec.debug)
}
