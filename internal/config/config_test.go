package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RIDESHARE_LOG_LEVEL", "")
	t.Setenv("RIDESHARE_LOG_FORMAT", "")
	t.Setenv("RIDESHARE_SERVICE_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "rideshare", cfg.Service.Name)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RIDESHARE_LOG_LEVEL", "debug")
	t.Setenv("RIDESHARE_LOG_FORMAT", "text")
	t.Setenv("RIDESHARE_SERVICE_NAME", "fare-demo")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "fare-demo", cfg.Service.Name)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_RejectsUnknownLevel(t *testing.T) {
	t.Setenv("RIDESHARE_LOG_LEVEL", "verbose")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
