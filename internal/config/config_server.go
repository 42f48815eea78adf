package config

import (
	"fmt"
	"time"
)

// ServerHTTP holds the listener settings of the stub server.
type ServerHTTP struct {
	HTTPAddress     string
	ShutdownTimeout time.Duration
}

// ServerConfig is the stub server view of [StructuredConfig]. The account
// and token settings are shared with the in-process stub of the reader.
type ServerConfig struct {
	Server ServerHTTP
	Stub   ClientStub
}

// GetServerConfig builds and validates the stub server config view.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := NewServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

// NewServerConfig maps the fields of cfg relevant to the stub server.
func NewServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		Server: ServerHTTP{
			HTTPAddress:     cfg.Server.HTTPAddress,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
		},
		Stub: NewClientConfig(cfg).Stub,
	}
}
