package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the command-line flags in args (without the program
// name).
//
// Flags:
//
//	-listen stub server listen address host:port
//	-a feed server address, host:port or URL; empty uses the stub backend
//	-request-timeout request timeout (e.g. "15s")
//	-cache-ttl feed cache TTL (e.g. "1m"); 0 disables the cache
//	-stub-login stub account login
//	-stub-password stub account password
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var (
		listenAddress  string
		address        string
		requestTimeout time.Duration
		cacheTTL       time.Duration
		stubLogin      string
		stubPassword   string
		jsonConfigPath string
	)

	fs := flag.NewFlagSet("go-feed-reader", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&listenAddress, "listen", "", "Stub server listen address host:port")
	fs.StringVar(&address, "a", "", "Feed server address host:port or URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.DurationVar(&cacheTTL, "cache-ttl", 0, "Feed cache TTL (e.g., 1m)")
	fs.StringVar(&stubLogin, "stub-login", "", "Stub backend account login")
	fs.StringVar(&stubPassword, "stub-password", "", "Stub backend account password")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{HTTPAddress: listenAddress},
		Adapter: Adapter{
			HTTPAddress:    address,
			RequestTimeout: requestTimeout,
		},
		Feed: Feed{CacheTTL: cacheTTL},
		Stub: Stub{
			Login:    stubLogin,
			Password: stubPassword,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
