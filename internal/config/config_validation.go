// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks the merged [StructuredConfig] before it is used at startup.
// Field-level rules live on [ClientConfig]; here only values no view could
// accept are rejected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}
	if cfg.Feed.CacheTTL < 0 {
		return ErrInvalidFeedConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Feed.CacheTTL < 0 {
		return ErrInvalidFeedConfigs
	}

	if cfg.Adapter.UsesStub() {
		s := cfg.Stub
		if s.Login == "" || s.Password == "" || s.TokenSignKey == "" || s.TokenIssuer == "" || s.TokenDuration <= 0 {
			return ErrInvalidStubConfigs
		}
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.ShutdownTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	s := cfg.Stub
	if s.Login == "" || s.Password == "" || s.TokenSignKey == "" || s.TokenIssuer == "" || s.TokenDuration <= 0 {
		return ErrInvalidStubConfigs
	}

	return nil
}
