package config

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promo-ads/internal/config/configs"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "localhost:5432", cfg.Psql.Addr.Host)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Redis.CatalogTTL)
	assert.Equal(t, 10*time.Second, cfg.Wizard.SubmitTimeout)
	assert.Equal(t, time.Hour, cfg.Worker.Interval)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "WARN")
	t.Setenv("LOG_FORMAT", "yaml")
	t.Setenv("PSQL_MAX_CONNS", "12")
	t.Setenv("REDIS_ADDRESS", "redis://localhost:6379/0")
	t.Setenv("WIZARD_SUBMIT_TIMEOUT", "3s")
	t.Setenv("WORKER_INTERVAL", "15m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelWarn, cfg.Log.SlogLevel())
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.Equal(t, int32(12), cfg.Psql.MaxConns)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.Addr)
	assert.Equal(t, 3*time.Second, cfg.Wizard.SubmitTimeout)
	assert.Equal(t, 15*time.Minute, cfg.Worker.Interval)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("WORKER_INTERVAL", "soon")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoggerHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(configs.Logger{Level: "warn", Format: "JSON"}.Handler(&buf))

	logger.Info("dropped")
	logger.Warn("kept", slog.String("campaign_id", "c1"))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"campaign_id":"c1"`)
}
