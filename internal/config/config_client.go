package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings of the shared API client.
type ClientAdapter struct {
	// HTTPAddress is the feed server address; empty selects the stub backend.
	HTTPAddress string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
}

// UsesStub reports whether requests are served by the in-process stub
// backend instead of a remote server.
func (a ClientAdapter) UsesStub() bool {
	return a.HTTPAddress == ""
}

// ClientFeed holds settings of the feed feature.
type ClientFeed struct {
	// CacheTTL is how long a loaded feed is reused. Zero disables caching.
	CacheTTL time.Duration
}

// ClientStub holds the account and token settings of the stub backend.
type ClientStub struct {
	Login         string
	Password      string
	Name          string
	Version       string
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ClientConfig is the top-level reader configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains shared client address and timeout.
	Adapter ClientAdapter
	// Feed contains feed feature settings.
	Feed ClientFeed
	// Stub contains stub backend settings; only consulted when
	// Adapter.UsesStub reports true.
	Stub ClientStub
}

// GetClientConfig builds and validates the reader config view from the
// merged structured configuration. args are the command-line arguments
// without the program name.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps the fields of cfg relevant to the reader.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Feed: ClientFeed{CacheTTL: cfg.Feed.CacheTTL},
		Stub: ClientStub{
			Login:         cfg.Stub.Login,
			Password:      cfg.Stub.Password,
			Name:          cfg.Stub.Name,
			Version:       cfg.App.Version,
			TokenSignKey:  cfg.Stub.TokenSignKey,
			TokenIssuer:   cfg.Stub.TokenIssuer,
			TokenDuration: cfg.Stub.TokenDuration,
		},
	}
}
