package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-feed-reader/internal/config"
	"github.com/MKhiriev/go-feed-reader/internal/logger"
	"github.com/MKhiriev/go-feed-reader/internal/stubapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServerConfig() config.ServerHTTP {
	return config.ServerHTTP{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: time.Second}
}

func TestNewServer_Validation(t *testing.T) {
	ok := http.NewServeMux()

	_, err := NewServer(nil, testServerConfig(), logger.Nop())
	assert.ErrorIs(t, err, errNilHandler)

	_, err = NewServer(ok, config.ServerHTTP{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	srv, err := NewServer(ok, testServerConfig(), nil)
	require.NoError(t, err)
	assert.NotNil(t, srv)
}

func TestServe_StubRoutesAndGracefulShutdown(t *testing.T) {
	h, err := stubapi.NewHandler(config.NewClientConfig(config.Defaults()).Stub, logger.Nop())
	require.NoError(t, err)

	srv, err := NewServer(h.Init(), testServerConfig(), logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/version/")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "dev")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServe_ListenerFailure(t *testing.T) {
	srv, err := NewServer(http.NewServeMux(), testServerConfig(), logger.Nop())
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	require.NoError(t, ln.Close())

	err = srv.Serve(context.Background(), ln)
	assert.Error(t, err)
}

func TestRun_InvalidAddress(t *testing.T) {
	srv, err := NewServer(http.NewServeMux(), config.ServerHTTP{
		HTTPAddress:     "256.0.0.1:http-nope",
		ShutdownTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	err = srv.Run(context.Background())
	assert.Error(t, err)
}

func TestRun_CancelledContext(t *testing.T) {
	srv, err := NewServer(http.NewServeMux(), testServerConfig(), logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, srv.Run(ctx))
}
