// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultServerAddress   = "localhost:8080"
	defaultShutdownTimeout = 5 * time.Second

	defaultRequestTimeout = 15 * time.Second
	defaultFeedCacheTTL   = time.Minute

	defaultStubLogin         = "demo"
	defaultStubPassword      = "demo"
	defaultStubName          = "Demo Reader"
	defaultStubTokenSignKey  = "stub-token-sign-key"
	defaultStubTokenIssuer   = "go-feed-reader-stub"
	defaultStubTokenDuration = time.Hour
)

// Defaults returns the built-in configuration: stub backend, 15s request
// timeout, a stub server on localhost:8080, one-minute feed cache and the demo/demo stub account.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{Version: "dev"},
		Server: Server{
			HTTPAddress:     defaultServerAddress,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			RequestTimeout: defaultRequestTimeout,
		},
		Feed: Feed{CacheTTL: defaultFeedCacheTTL},
		Stub: Stub{
			Login:         defaultStubLogin,
			Password:      defaultStubPassword,
			Name:          defaultStubName,
			TokenSignKey:  defaultStubTokenSignKey,
			TokenIssuer:   defaultStubTokenIssuer,
			TokenDuration: defaultStubTokenDuration,
		},
	}
}
