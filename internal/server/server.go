package server

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/go-feed-reader/internal/config"
	"github.com/MKhiriev/go-feed-reader/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

// NewServer builds a [Server] serving handler on cfg.HTTPAddress.
func NewServer(handler http.Handler, cfg config.ServerHTTP, log *logger.Logger) (Server, error) {
	if handler == nil {
		return nil, errNilHandler
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	log = logger.OrNop(log).Component("server")
	log.Info().Msg("creating new server...")

	return &server{
		httpServer: newHTTPServer(handler, cfg, log),
		logger:     log,
	}, nil
}

func (s *server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.httpServer.server.Addr, err)
	}

	return s.Serve(ctx, ln)
}

func (s *server) Serve(ctx context.Context, ln net.Listener) error {
	served := make(chan error, 1)

	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")
	go func() {
		served <- s.httpServer.serve(ln)
	}()

	select {
	case err := <-served:
		if err != nil {
			return fmt.Errorf("HTTP server Serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	if err := s.httpServer.shutdown(); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	if err := <-served; err != nil {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
