// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package trace

import "go.opentelemetry.io/otel/trace/noop"

var _ Tracer = (*noOpTracer)(nil)

// noOpTracer is an implementation of Tracer that does nothing.
type noOpTracer struct {
	noop.Tracer
}

func newNoOpTracer() *noOpTracer {
	return &noOpTracer{}
}

func (noOpTracer) Close() error {
	return nil
}
