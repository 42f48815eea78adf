package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the stub server.
//
// Both methods block until ctx is cancelled or the listener fails, then
// shut down gracefully before returning.
type Server interface {
	// Run listens on the configured address and serves requests.
	Run(ctx context.Context) error

	// Serve accepts connections on ln, which the server then owns.
	Serve(ctx context.Context, ln net.Listener) error
}
