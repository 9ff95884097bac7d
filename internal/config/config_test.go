package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/couchcryptid/earth-data-report/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.OutputDir)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Zero(t, cfg.Seed)
	assert.True(t, cfg.ChartEnabled)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("OUTPUT_DIR", "/tmp/reports")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("SEED", "42")
	t.Setenv("CHART_ENABLED", "false")
	t.Setenv("METRICS_ADDR", ":9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.EqualValues(t, 42, cfg.Seed)
	assert.False(t, cfg.ChartEnabled)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_LEVEL")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "yaml")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_InvalidSeed(t *testing.T) {
	t.Setenv("SEED", "not-a-number")

	_, err := config.Load()
	require.Error(t, err)
}
