package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8000", cfg.HTTPPort)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPServer)
	assert.Equal(t, 587, cfg.SMTPPort)
	assert.Equal(t, 2, cfg.NotificationWorkers)
	assert.Equal(t, 64, cfg.NotificationQueueSize)
	assert.Equal(t, 3, cfg.NotificationMaxAttempts)
	assert.Equal(t, "@every 1m", cfg.NotificationRetrySchedule)
	assert.Equal(t, 5*time.Minute, cfg.NotificationStaleAfter)
	assert.InDelta(t, 5.0, cfg.RateLimitPerSecond, 0)
	assert.False(t, cfg.Debug)
	assert.Equal(t, DefaultSecretKey, cfg.SecretKey)
}

func TestLoadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("DEBUG", "true")
	t.Setenv("NOTIFICATION_STALE_AFTER", "90s")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 465, cfg.SMTPPort)
	assert.Equal(t, "admin@example.com", cfg.AdminEmail)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 90*time.Second, cfg.NotificationStaleAfter)
}

func TestLoadConfig_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SMTP_USERNAME=tours@example.com\nNOTIFICATION_WORKERS=4\n"), 0o600))
	t.Cleanup(func() {
		_ = os.Unsetenv("SMTP_USERNAME")
		_ = os.Unsetenv("NOTIFICATION_WORKERS")
	})

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "tours@example.com", cfg.SMTPUsername)
	assert.Equal(t, 4, cfg.NotificationWorkers)
}

func TestLoadConfig_ReportsEveryBadVariable(t *testing.T) {
	t.Setenv("SMTP_PORT", "submission")
	t.Setenv("DEBUG", "sometimes")
	t.Setenv("NOTIFICATION_MAX_ATTEMPTS", "0")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP_PORT")
	assert.Contains(t, err.Error(), "DEBUG")
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	t.Setenv("NOTIFICATION_MAX_ATTEMPTS", "0")
	t.Setenv("RATE_LIMIT_PER_SECOND", "-1")

	_, err := LoadConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTIFICATION_MAX_ATTEMPTS")
	assert.Contains(t, err.Error(), "RATE_LIMIT_PER_SECOND")
}
