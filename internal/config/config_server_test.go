package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ServerConfig)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(cfg *ServerConfig) {},
		},
		{
			name:    "empty address",
			mutate:  func(cfg *ServerConfig) { cfg.Server.HTTPAddress = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero shutdown timeout",
			mutate:  func(cfg *ServerConfig) { cfg.Server.ShutdownTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "stub without password",
			mutate:  func(cfg *ServerConfig) { cfg.Stub.Password = "" },
			wantErr: ErrInvalidStubConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewServerConfig(Defaults())
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

func TestGetServerConfig_ListenFlag(t *testing.T) {
	cfg, err := GetServerConfig([]string{"-listen", "127.0.0.1:9999"})

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.HTTPAddress)
	assert.Equal(t, defaultShutdownTimeout, cfg.Server.ShutdownTimeout)
	assert.Equal(t, defaultStubLogin, cfg.Stub.Login)
}

func TestGetServerConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:7070")
	t.Setenv("SERVER_SHUTDOWN_TIMEOUT", "10s")

	cfg, err := GetServerConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
}
