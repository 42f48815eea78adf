package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-listen", "0.0.0.0:8080",
		"-a", "localhost:8080",
		"-request-timeout", "30s",
		"-cache-ttl", "2m",
		"-stub-login", "alice",
		"-stub-password", "secret",
		"-config", "/etc/reader.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Feed.CacheTTL)
	assert.Equal(t, "alice", cfg.Stub.Login)
	assert.Equal(t, "secret", cfg.Stub.Password)
	assert.Equal(t, "/etc/reader.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := ParseFlags(nil)

	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_ShortConfigAlias(t *testing.T) {
	cfg, err := ParseFlags([]string{"-c", "reader.json"})

	require.NoError(t, err)
	assert.Equal(t, "reader.json", cfg.JSONFilePath)
}

func TestParseFlags_InvalidDuration(t *testing.T) {
	_, err := ParseFlags([]string{"-request-timeout", "soon"})
	assert.Error(t, err)
}
