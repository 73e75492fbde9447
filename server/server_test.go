// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package server

import (
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/stretchr/testify/require"
)

func TestServerRoutes(t *testing.T) {
	require := require.New(t)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(err)
	s := New(logging.NoLog{}, listener, NewDefaultHTTPConfig(), []string{"*"}, []string{"localhost"}, time.Second)

	hello := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hello"))
	})
	require.NoError(s.AddRoute(hello, "/hello"))
	require.ErrorIs(s.AddRoute(hello, "/hello"), errAlreadyReserved)

	done := make(chan error, 1)
	go func() {
		done <- s.Dispatch()
	}()

	resp, err := http.Get("http://" + s.Addr().String() + "/hello")
	require.NoError(err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Equal("hello", string(body))

	resp, err = http.Get("http://" + s.Addr().String() + "/missing")
	require.NoError(err)
	require.NoError(resp.Body.Close())
	require.Equal(http.StatusNotFound, resp.StatusCode)

	require.NoError(s.Shutdown())
	require.NoError(<-done)
}

func TestFilterInvalidHosts(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	tests := []struct {
		name         string
		allowedHosts []string
		host         string
		expectedCode int
	}{
		{
			name:         "allowed name",
			allowedHosts: []string{"localhost"},
			host:         "LocalHost:9650",
			expectedCode: http.StatusOK,
		},
		{
			name:         "ip always allowed",
			allowedHosts: []string{"localhost"},
			host:         "10.0.0.1:9650",
			expectedCode: http.StatusOK,
		},
		{
			name:         "unknown name",
			allowedHosts: []string{"localhost"},
			host:         "evil.example",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "wildcard",
			allowedHosts: []string{"*"},
			host:         "evil.example",
			expectedCode: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Host = tt.host
			filterInvalidHosts(ok, tt.allowedHosts).ServeHTTP(rec, req)
			require.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}
