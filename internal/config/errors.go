package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive shutdown timeout of the stub server.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid shared client settings
	// (for example, a zero or negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidFeedConfigs indicates invalid feed settings
	// (for example, a negative cache TTL).
	ErrInvalidFeedConfigs = errors.New("invalid feed configuration")
	// ErrInvalidStubConfigs indicates the stub backend was selected but its
	// account or token settings are incomplete.
	ErrInvalidStubConfigs = errors.New("invalid stub configuration")
)
