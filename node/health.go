// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package node

import (
	"encoding/json"
	"net/http"

	"github.com/ava-labs/avalanchego/api/health"
	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"
)

const (
	HealthEndpoint  = "/ext/health"
	MetricsEndpoint = "/ext/metrics"
)

type healthReply struct {
	Healthy bool   `json:"healthy"`
	Details any    `json:"details,omitempty"`
	Error   string `json:"error,omitempty"`
}

// newHealthHandler reports the result of [checker] as JSON. Unhealthy
// results are served with 503.
func newHealthHandler(log logging.Logger, checker health.Checker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		details, err := checker.HealthCheck(r.Context())
		reply := healthReply{
			Healthy: err == nil,
			Details: details,
		}
		code := http.StatusOK
		if err != nil {
			reply.Error = err.Error()
			code = http.StatusServiceUnavailable
			log.Warn("health check failed", zap.Error(err))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(reply)
	})
}
