package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return NewClientConfig(Defaults())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name:    "zero timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "negative cache ttl",
			mutate:  func(cfg *ClientConfig) { cfg.Feed.CacheTTL = -time.Second },
			wantErr: ErrInvalidFeedConfigs,
		},
		{
			name:   "zero cache ttl disables cache",
			mutate: func(cfg *ClientConfig) { cfg.Feed.CacheTTL = 0 },
		},
		{
			name:    "stub without sign key",
			mutate:  func(cfg *ClientConfig) { cfg.Stub.TokenSignKey = "" },
			wantErr: ErrInvalidStubConfigs,
		},
		{
			name: "remote server ignores stub settings",
			mutate: func(cfg *ClientConfig) {
				cfg.Adapter.HTTPAddress = "localhost:8080"
				cfg.Stub = ClientStub{}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	src := Defaults()
	src.App.Version = "1.2.3"
	src.Adapter.HTTPAddress = "https://feeds.example.com"

	cfg := NewClientConfig(src)

	assert.Equal(t, "https://feeds.example.com", cfg.Adapter.HTTPAddress)
	assert.False(t, cfg.Adapter.UsesStub())
	assert.Equal(t, "1.2.3", cfg.Stub.Version)
	assert.Equal(t, src.Stub.TokenDuration, cfg.Stub.TokenDuration)
}
