package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "0 3 * * *", cfg.ReaperCronSpec)
	assert.Equal(t, 2, cfg.ReaperMaxAgeDays)

	// Optional integrations default to off.
	assert.Empty(t, cfg.RedisAddr)
	assert.Empty(t, cfg.MPAccessToken)
	assert.Empty(t, cfg.S3Bucket)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REAPER_MAX_AGE_DAYS", "5")
	t.Setenv("REAPER_CRON", "@hourly")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5, cfg.ReaperMaxAgeDays)
	assert.Equal(t, "@hourly", cfg.ReaperCronSpec)
}

func TestGetEnvIntBadValue(t *testing.T) {
	t.Setenv("REAPER_MAX_AGE_DAYS", "soon")

	cfg := Load()
	assert.Equal(t, 2, cfg.ReaperMaxAgeDays)
}
