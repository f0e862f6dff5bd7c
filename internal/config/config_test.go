package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.App.Port)
	assert.Equal(t, "./timeslots.db", cfg.Database.Path)
	assert.Equal(t, 250, cfg.Database.BusyTimeoutMS)
	assert.Equal(t, 5, cfg.Retry.MaxAttempts)
	assert.Equal(t, 20*time.Millisecond, cfg.Retry.BaseDelay)
	assert.Equal(t, int64(1), cfg.Slack.AdminUserID)
	assert.Equal(t, "@daily", cfg.Materializer.CronSpec)
	assert.Equal(t, 4, cfg.Materializer.WeeksAhead)
	assert.False(t, cfg.HTTP.APIEnabled)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("DATABASE_PATH", ":memory:")
	t.Setenv("RETRY_BASE_DELAY", "5ms")
	t.Setenv("SLACK_SIGNING_SECRET", "shh")
	t.Setenv("SLACK_ADMIN_USER_ID", "42")
	t.Setenv("HTTP_API_ENABLED", "true")
	t.Setenv("MATERIALIZER_WEEKS_AHEAD", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 5*time.Millisecond, cfg.Retry.BaseDelay)
	assert.Equal(t, "shh", cfg.Slack.SigningSecret)
	assert.Equal(t, int64(42), cfg.Slack.AdminUserID)
	assert.True(t, cfg.HTTP.APIEnabled)
	assert.Equal(t, 8, cfg.Materializer.WeeksAhead)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("RETRY_MAX_ATTEMPTS", "0")

	_, err := Load()
	require.EqualError(t, err, "invalid config: retry.max_attempts must be positive")
}
