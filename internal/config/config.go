// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for
// go-feed-reader. It is populated by merging defaults, environment variables,
// command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and shutdown timeout of the standalone
	// stub server (cmd/stubserver).
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the shared API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Feed holds settings of the feed feature.
	Feed Feed `envPrefix:"FEED_"`

	// Stub holds the account and token settings of the in-process stub
	// backend used when Adapter.HTTPAddress is empty.
	Stub Stub `envPrefix:"STUB_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is reported by the stub backend's version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings of the standalone stub server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, in "host:port"
	// format (e.g. "localhost:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// ShutdownTimeout bounds the graceful shutdown of in-flight requests.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds configuration of the shared API client.
type Adapter struct {
	// HTTPAddress is the base address of the feed server, either "host:port"
	// or a full URL. Empty selects the in-process stub backend.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request
	// (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Feed holds configuration of the feed feature.
type Feed struct {
	// CacheTTL is how long a loaded feed is served from memory before the
	// server is asked again. Zero disables caching.
	// Env: FEED_CACHE_TTL
	CacheTTL time.Duration `env:"CACHE_TTL"`
}

// Stub holds the fixed account and token parameters of the stub backend.
type Stub struct {
	// Login and Password form the single account the stub accepts.
	// Env: STUB_LOGIN, STUB_PASSWORD
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`

	// Name is the display name returned on login.
	// Env: STUB_NAME
	Name string `env:"NAME"`

	// TokenSignKey signs issued JWT tokens.
	// Env: STUB_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: STUB_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens (e.g. "1h").
	// Env: STUB_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`
}

// GetStructuredConfig loads and merges the configuration from all sources in
// the following priority order (later sources override non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the result fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
